package pagecheck_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cboone/pagecheck"
	"github.com/cboone/pagecheck/internal/fakepage"
)

const (
	waitForTimeoutHelperEnv   = "PAGECHECK_WAITFOR_TIMEOUT_HELPER"
	conditionErrorHelperEnv   = "PAGECHECK_CONDITION_ERROR_HELPER"
	failureDiagnosticsDirEnv  = "PAGECHECK_FAILURE_DIAGNOSTICS_DIR"
	noFailureScreenshotDirEnv = "PAGECHECK_NO_FAILURE_SCREENSHOT_DIR"
)

func TestAttachCapturesConsole(t *testing.T) {
	fake := fakepage.New()
	page := pagecheck.Attach(t, fake)

	fake.Emit("log", "hello")
	fake.Emit("warning", "careful")

	require.Equal(t, 2, page.Console().Len())
	assert.Equal(t, "[log] hello\n[warning] careful\n", page.Console().String())
}

func TestAttachWaitFor(t *testing.T) {
	fake := fakepage.New()
	page := pagecheck.Attach(t, fake, pagecheck.WithInterval(10*time.Millisecond))

	start := time.Now()
	page.WaitFor(pagecheck.Check(func() bool {
		return time.Since(start) > 50*time.Millisecond
	}))
}

func TestAttachWaitForConsole(t *testing.T) {
	fake := fakepage.New()
	page := pagecheck.Attach(t, fake,
		pagecheck.WithTimeout(2*time.Second),
		pagecheck.WithInterval(10*time.Millisecond),
	)

	go func() {
		time.Sleep(30 * time.Millisecond)
		fake.Emit("log", "app ready")
	}()

	page.WaitForConsole(pagecheck.All(pagecheck.Message("ready"), pagecheck.NoErrors()))
}

func TestAttachScreenshot(t *testing.T) {
	dir := t.TempDir()
	fake := fakepage.New()
	page := pagecheck.Attach(t, fake, pagecheck.WithScreenshotDir(dir))

	name := page.Screenshot("home")
	assert.Regexp(t, screenshotNameRe, name)
	assert.Equal(t, []string{filepath.Join(dir, name)}, fake.Screenshots())
}

func TestAttachStopsCaptureOnCleanup(t *testing.T) {
	fake := fakepage.New()
	var log *pagecheck.ConsoleLog

	t.Run("attached", func(t *testing.T) {
		page := pagecheck.Attach(t, fake)
		log = page.Console()
		fake.Emit("log", "during")
	})

	fake.Emit("log", "after")
	require.Equal(t, 1, log.Len())
	assert.Equal(t, "during", log.Entries()[0].Text)
}

func TestAttachNoScreenshotWhenPassing(t *testing.T) {
	dir := t.TempDir()
	fake := fakepage.New()

	t.Run("passing", func(t *testing.T) {
		pagecheck.Attach(t, fake, pagecheck.WithScreenshotDir(dir))
		fake.Emit("error", "ignored")
	})

	assert.Empty(t, fake.Screenshots())
}

func TestWaitForTimeout(t *testing.T) {
	if os.Getenv(waitForTimeoutHelperEnv) == "1" {
		pagecheck.WaitFor(t, pagecheck.Check(func() bool { return false }),
			pagecheck.WithinTimeout(150*time.Millisecond),
			pagecheck.WithPollInterval(20*time.Millisecond),
		)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "^TestWaitForTimeout$")
	cmd.Env = append(os.Environ(), waitForTimeoutHelperEnv+"=1")
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "expected subprocess to fail, output:\n%s", out)
	assert.Contains(t, string(out), "pagecheck: wait-for: timed out after 150ms (poll interval 20ms)")
}

func TestWaitForConditionError(t *testing.T) {
	if os.Getenv(conditionErrorHelperEnv) == "1" {
		pagecheck.WaitFor(t, func() (bool, error) {
			return false, errors.New("page crashed")
		})
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "^TestWaitForConditionError$")
	cmd.Env = append(os.Environ(), conditionErrorHelperEnv+"=1")
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "expected subprocess to fail, output:\n%s", out)
	assert.Contains(t, string(out), "pagecheck: poll: condition: page crashed")
}

func TestAttachFailureDiagnostics(t *testing.T) {
	if dir := os.Getenv(failureDiagnosticsDirEnv); dir != "" {
		fake := fakepage.New()
		page := pagecheck.Attach(t, fake, pagecheck.WithScreenshotDir(dir))
		fake.Emit("log", "booting")
		fake.Emit("error", "boom")
		page.WaitForConsole(pagecheck.Message("never"),
			pagecheck.WithinTimeout(100*time.Millisecond),
			pagecheck.WithPollInterval(20*time.Millisecond),
		)
		return
	}

	dir := t.TempDir()
	cmd := exec.Command(os.Args[0], "-test.run", "^TestAttachFailureDiagnostics$")
	cmd.Env = append(os.Environ(), failureDiagnosticsDirEnv+"="+dir)
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "expected subprocess to fail, output:\n%s", out)

	output := string(out)
	assert.Contains(t, output, "pagecheck: wait-for-console: timed out after 100ms")
	assert.Contains(t, output, `waiting for: console message containing "never"`)
	assert.Contains(t, output, "recent console entries (2 of 2):")
	assert.Contains(t, output, "[error] boom")
	assert.Contains(t, output, "pagecheck: console output (2 entries):")
	assert.Regexp(t, regexp.MustCompile(`pagecheck: failure screenshot: failure-TestAttachFailureDiagnostics-[0-9TZ-]+\.png`), output)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Regexp(t, `^failure-TestAttachFailureDiagnostics-`, files[0].Name())
}

func TestAttachFailureScreenshotsDisabled(t *testing.T) {
	if dir := os.Getenv(noFailureScreenshotDirEnv); dir != "" {
		pagecheck.Attach(t, fakepage.New(),
			pagecheck.WithScreenshotDir(dir),
			pagecheck.WithFailureScreenshots(false),
		)
		t.Fatal("forced failure")
	}

	dir := t.TempDir()
	cmd := exec.Command(os.Args[0], "-test.run", "^TestAttachFailureScreenshotsDisabled$")
	cmd.Env = append(os.Environ(), noFailureScreenshotDirEnv+"="+dir)
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "expected subprocess to fail, output:\n%s", out)
	assert.Contains(t, string(out), "pagecheck: console output (0 entries):")
	assert.NotContains(t, string(out), "failure screenshot")

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}
