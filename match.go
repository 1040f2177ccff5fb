package pagecheck

import (
	"fmt"
	"regexp"
	"strings"
)

// A ConsoleMatcher reports whether captured console entries satisfy a
// condition. The string return is a human-readable description for error
// messages.
type ConsoleMatcher func(entries []LogEntry) (ok bool, description string)

// Message matches if any entry's text contains substr.
func Message(substr string) ConsoleMatcher {
	return func(entries []LogEntry) (bool, string) {
		desc := fmt.Sprintf("console message containing %q", substr)
		for _, e := range entries {
			if strings.Contains(e.Text, substr) {
				return true, desc
			}
		}
		return false, desc
	}
}

// MessageRegexp matches if any entry's text matches the regular expression.
// The pattern is compiled once; an invalid pattern causes a panic.
func MessageRegexp(pattern string) ConsoleMatcher {
	re := regexp.MustCompile(pattern)
	return func(entries []LogEntry) (bool, string) {
		desc := fmt.Sprintf("console message matching regexp %q", pattern)
		for _, e := range entries {
			if re.MatchString(e.Text) {
				return true, desc
			}
		}
		return false, desc
	}
}

// OfType matches if an entry of the given type contains substr.
// An empty substr matches any entry of that type.
func OfType(typ, substr string) ConsoleMatcher {
	return func(entries []LogEntry) (bool, string) {
		desc := fmt.Sprintf("console %s containing %q", typ, substr)
		for _, e := range entries {
			if e.Type == typ && strings.Contains(e.Text, substr) {
				return true, desc
			}
		}
		return false, desc
	}
}

// Count matches once at least n entries of type typ have been captured.
// An empty typ counts every entry.
func Count(typ string, n int) ConsoleMatcher {
	return func(entries []LogEntry) (bool, string) {
		got := 0
		for _, e := range entries {
			if typ == "" || e.Type == typ {
				got++
			}
		}
		what := "console entries"
		if typ != "" {
			what = "console " + typ + " entries"
		}
		return got >= n, fmt.Sprintf("at least %d %s (actual: %d)", n, what, got)
	}
}

// NoErrors matches when no entry has type "error".
func NoErrors() ConsoleMatcher {
	return Not(OfType("error", ""))
}

// Not inverts a matcher.
func Not(m ConsoleMatcher) ConsoleMatcher {
	return func(entries []LogEntry) (bool, string) {
		ok, desc := m(entries)
		return !ok, "NOT(" + desc + ")"
	}
}

// All matches when every provided matcher matches. Evaluation stops at the
// first matcher that fails, and the description lists those evaluated.
func All(matchers ...ConsoleMatcher) ConsoleMatcher {
	return combine("all of", false, matchers)
}

// Any matches when at least one provided matcher matches. Evaluation stops
// at the first matcher that succeeds.
func Any(matchers ...ConsoleMatcher) ConsoleMatcher {
	return combine("any of", true, matchers)
}

// combine evaluates matchers in order until one returns decisive, the
// short-circuit result for the combinator.
func combine(label string, decisive bool, matchers []ConsoleMatcher) ConsoleMatcher {
	return func(entries []LogEntry) (bool, string) {
		descs := make([]string, 0, len(matchers))
		result := !decisive
		for _, m := range matchers {
			ok, desc := m(entries)
			descs = append(descs, desc)
			if ok == decisive {
				result = decisive
				break
			}
		}
		return result, label + ": " + strings.Join(descs, ", ")
	}
}
