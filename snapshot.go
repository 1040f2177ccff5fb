package pagecheck

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const updateEnv = "PAGECHECK_UPDATE"

// SnapshotOption configures a single MatchSnapshot call.
type SnapshotOption func(*snapshotOptions)

type snapshotOptions struct {
	types []string
}

// SnapshotTypes limits the snapshot to entries of the given console types,
// for example SnapshotTypes("error", "warning") to ignore chatty logging.
func SnapshotTypes(types ...string) SnapshotOption {
	return func(o *snapshotOptions) {
		o.types = append(o.types, types...)
	}
}

// MatchSnapshot compares the captured console output against a golden file
// stored in testdata/<sanitized-test-name>-<hash>/<sanitized-name>.console.txt.
//
// Each entry is written as "[type] text". Timestamps are left out, and
// continuation lines of multi-line messages are indented by two spaces.
//
// Set PAGECHECK_UPDATE=1 to create or update golden files.
func (l *ConsoleLog) MatchSnapshot(t testing.TB, name string, sopts ...SnapshotOption) {
	t.Helper()

	var so snapshotOptions
	for _, o := range sopts {
		o(&so)
	}

	entries := l.Entries()
	if len(so.types) > 0 {
		entries = slices.DeleteFunc(entries, func(e LogEntry) bool {
			return !slices.Contains(so.types, e.Type)
		})
	}

	dir := snapshotDir(t)
	path := filepath.Join(dir, sanitizeName(name)+".console.txt")
	content := renderSnapshot(entries)

	if shouldUpdate() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("pagecheck: snapshot: failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("pagecheck: snapshot: failed to write golden file: %v", err)
		}
		return
	}

	golden, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("pagecheck: snapshot: golden file not found: %s\nRun with %s=1 to create it.\n\nActual console:\n%s", path, updateEnv, content)
		}
		t.Fatalf("pagecheck: snapshot: failed to read golden file: %v", err)
	}

	if string(golden) != content {
		t.Fatalf("pagecheck: snapshot: mismatch for %q\nGolden file: %s\nRun with %s=1 to update.\n\n--- golden ---\n%s\n--- actual ---\n%s",
			name, path, updateEnv, string(golden), content)
	}
}

// snapshotDir returns testdata/<sanitized-test-name>-<hash>/ for the
// current test. The hash keeps names distinct after sanitizing.
func snapshotDir(t testing.TB) string {
	t.Helper()

	fullName := t.Name()
	h := sha256.Sum256([]byte(fullName))
	return filepath.Join("testdata", sanitizeName(fullName)+"-"+hex.EncodeToString(h[:4]))
}

// renderSnapshot writes one "[type] text" block per entry. Trailing
// whitespace and blank continuation lines are dropped so that golden files
// survive editors and CRLF line endings. An empty log renders as a single
// newline.
func renderSnapshot(entries []LogEntry) string {
	var b strings.Builder
	for _, e := range entries {
		lines := strings.Split(strings.ReplaceAll(e.Text, "\r\n", "\n"), "\n")
		for len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}
		b.WriteString(strings.TrimRight("["+e.Type+"] "+lines[0], " \t\r"))
		b.WriteByte('\n')
		for _, line := range lines[1:] {
			line = strings.TrimRight(line, " \t\r")
			if line == "" {
				b.WriteByte('\n')
				continue
			}
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	if b.Len() == 0 {
		return "\n"
	}
	return b.String()
}

func shouldUpdate() bool {
	switch strings.ToLower(os.Getenv(updateEnv)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
