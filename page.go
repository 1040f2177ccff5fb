package pagecheck

import (
	"os"
	"testing"
)

// Session is a live browser page: a source of console messages that can
// also take screenshots. The backend packages rodpage, pwpage and cdppage
// provide implementations.
type Session interface {
	ConsoleSource
	Screenshotter
}

// Page binds a Session to a test. It is created with Attach and cleaned
// up automatically via t.Cleanup.
type Page struct {
	t       testing.TB
	session Session
	console *ConsoleLog
	opts    options
}

// Attach starts capturing the session's console output and returns a
// handle whose helpers report failures through t.
//
// If the test has failed by the time cleanup runs, Attach saves a
// screenshot named after the test and logs the captured console.
// The browser itself is left open; closing it is up to the caller.
func Attach(t testing.TB, s Session, userOpts ...Option) *Page {
	t.Helper()

	opts := defaultOptions()
	for _, o := range userOpts {
		o(&opts)
	}
	if opts.logger == nil {
		opts.logger = discardLogger
	}

	p := &Page{
		t:       t,
		session: s,
		console: CaptureConsole(s),
		opts:    opts,
	}

	t.Cleanup(func() {
		defer p.console.Stop()
		if !t.Failed() {
			return
		}
		p.reportFailure()
	})

	return p
}

// Console returns the log capturing this page's console output.
func (p *Page) Console() *ConsoleLog {
	return p.console
}

// WaitFor polls cond until it returns true or the timeout expires.
// On timeout or condition error it calls t.Fatal.
func (p *Page) WaitFor(cond Condition, wopts ...WaitOption) {
	p.t.Helper()
	waitFor(p.t, cond, p.waitOptions(wopts))
}

// WaitForConsole polls the captured console output until m matches.
// On timeout it calls t.Fatal with the most recent entries.
func (p *Page) WaitForConsole(m ConsoleMatcher, wopts ...WaitOption) {
	p.t.Helper()
	p.console.waitFor(p.t, m, p.waitOptions(wopts))
}

// Screenshot saves a full-page screenshot named "<base>-<timestamp>.png"
// and returns the file name. It calls t.Fatal if the capture fails.
func (p *Page) Screenshot(base string) string {
	p.t.Helper()
	name, err := Screenshot(p.session, base, p.screenshotOptions()...)
	if err != nil {
		p.t.Fatalf("%v", err)
	}
	return name
}

func (p *Page) waitOptions(wopts []WaitOption) waitOptions {
	return resolveWait(p.opts.timeout, p.opts.pollInterval, p.opts.logger, wopts)
}

func (p *Page) screenshotOptions() []ScreenshotOption {
	return []ScreenshotOption{
		WithDir(p.opts.screenshotDir),
		WithScreenshotLogger(p.opts.logger),
	}
}

// reportFailure runs during cleanup of a failed test. Errors are logged,
// not fatal, since the test has already failed.
func (p *Page) reportFailure() {
	if p.opts.failureScreenshots {
		name, err := Screenshot(p.session, "failure-"+p.t.Name(), append(p.screenshotOptions(), WithOutput(os.Stderr))...)
		if err != nil {
			p.t.Logf("pagecheck: failure screenshot: %v", err)
		} else {
			p.t.Logf("pagecheck: failure screenshot: %s", name)
		}
	}

	entries := p.console.Entries()
	p.t.Logf("pagecheck: console output (%d entries):\n%s", len(entries), indent(formatEntries(entries)))
}
