package pagecheck

import (
	"strings"
	"time"
)

// stampLayout is ISO 8601 in UTC with millisecond precision, the form
// browsers print for Date.prototype.toISOString.
const stampLayout = "2006-01-02T15:04:05.000Z"

var stampReplacer = strings.NewReplacer(":", "-", ".", "-")

// screenshotName returns "<base>-<timestamp>.png" with the colons and dots
// of the timestamp replaced by dashes.
func screenshotName(base string, at time.Time) string {
	stamp := stampReplacer.Replace(at.UTC().Format(stampLayout))
	return sanitizeName(base) + "-" + stamp + ".png"
}

// sanitizeName replaces characters that are not filesystem-safe.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	// Keep room for the timestamp suffix within common file name limits.
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
