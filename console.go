package pagecheck

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"
)

// ConsoleMessage is a console message as delivered by a browser backend.
// Type uses the DevTools vocabulary: "log", "debug", "info", "error",
// "warning", and so on.
type ConsoleMessage struct {
	Type string
	Text string
}

// ConsoleSource is a browser page that can report console messages.
// Listeners may be invoked from any goroutine.
type ConsoleSource interface {
	OnConsole(func(ConsoleMessage))
}

// LogEntry is a captured console message.
type LogEntry struct {
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Text)
}

// ConsoleLog accumulates console messages in arrival order.
// It only grows; nothing is deduplicated or evicted.
type ConsoleLog struct {
	mu      sync.Mutex
	entries []LogEntry
	stopped bool
	now     func() time.Time
}

// CaptureConsole subscribes to src and returns the log that receives its
// messages. The caller owns the log; call Stop to stop recording.
func CaptureConsole(src ConsoleSource) *ConsoleLog {
	l := &ConsoleLog{now: time.Now}
	src.OnConsole(l.record)
	return l
}

func (l *ConsoleLog) record(msg ConsoleMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.entries = append(l.entries, LogEntry{
		Type:      msg.Type,
		Text:      msg.Text,
		Timestamp: l.now(),
	})
}

// Stop drops every message that arrives after it returns.
// Entries already captured are kept.
func (l *ConsoleLog) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
}

// Entries returns a copy of the captured entries, oldest first.
func (l *ConsoleLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

// Len returns the number of captured entries.
func (l *ConsoleLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Filter returns the captured entries whose type is one of types.
func (l *ConsoleLog) Filter(types ...string) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries() {
		if slices.Contains(types, e.Type) {
			out = append(out, e)
		}
	}
	return out
}

// String renders one "[type] text" line per entry.
func (l *ConsoleLog) String() string {
	return formatEntries(l.Entries())
}

// Condition turns m into a Condition evaluated against the entries
// captured so far.
func (l *ConsoleLog) Condition(m ConsoleMatcher) Condition {
	return func() (bool, error) {
		ok, _ := m(l.Entries())
		return ok, nil
	}
}

// WaitFor polls the log until m matches. On timeout it calls t.Fatal with
// the matcher description and the most recent entries.
func (l *ConsoleLog) WaitFor(t testing.TB, m ConsoleMatcher, wopts ...WaitOption) {
	t.Helper()
	wo := resolveWait(defaultTimeout, defaultPollInterval, nil, wopts)
	l.waitFor(t, m, wo)
}

const failureEntryHistory = 10

func (l *ConsoleLog) waitFor(t testing.TB, m ConsoleMatcher, wo waitOptions) {
	t.Helper()

	var lastDesc string
	cond := func() (bool, error) {
		ok, desc := m(l.Entries())
		lastDesc = desc
		return ok, nil
	}
	if err := poll(cond, wo); err != nil {
		entries := l.Entries()
		shown := entries
		if len(shown) > failureEntryHistory {
			shown = shown[len(shown)-failureEntryHistory:]
		}
		t.Fatalf("pagecheck: wait-for-console: %v\n    waiting for: %s\n    recent console entries (%d of %d):\n%s",
			describeWaitErr(err, wo), lastDesc, len(shown), len(entries), indent(formatEntries(shown)))
	}
}

func describeWaitErr(err error, wo waitOptions) string {
	if errors.Is(err, ErrTimeoutExceeded) {
		return fmt.Sprintf("timed out after %v", wo.timeout)
	}
	return err.Error()
}

func formatEntries(entries []LogEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func indent(s string) string {
	if s == "" {
		return "    (none)"
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
