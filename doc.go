// Package pagecheck provides helpers for browser-driven end-to-end tests.
//
// pagecheck polls for conditions with a cumulative timeout, captures a
// page's console output, and saves timestamped full-page screenshots. It
// works with any browser library through two small interfaces,
// [ConsoleSource] and [Screenshotter]; the rodpage, pwpage and cdppage
// packages adapt go-rod, playwright-go and chromedp pages.
//
// # Quick Start
//
//	func TestHome(t *testing.T) {
//		page := pagecheck.Attach(t, rodpage.New(rodPage))
//		page.WaitForConsole(pagecheck.Message("ready"))
//		page.Screenshot("home")
//	}
//
// The browser is not launched or closed by pagecheck. [Attach] only adds
// console capture and failure diagnostics, which run from t.Cleanup.
//
// # Polling
//
// [Poll] evaluates a [Condition] until it returns true or the timeout
// elapses, sleeping for the poll interval between evaluations. The first
// evaluation always happens, so a zero timeout means "check once".
//
// Wait behavior:
//
//   - Defaults: 5s timeout, 100ms poll interval
//   - Per-page overrides: [WithTimeout], [WithInterval]
//   - Per-call overrides: [WithinTimeout], [WithPollInterval]
//   - Negative timeout or poll values are rejected with [ErrNegativeDuration]
//   - A condition error stops polling and is returned immediately
//   - No limit on a single evaluation; only the total is bounded
//
// On timeout Poll returns [ErrTimeoutExceeded]. [WaitFor], [Page.WaitFor]
// and [Page.WaitForConsole] turn failures into t.Fatal.
//
// # Console Capture
//
// [CaptureConsole] subscribes to a page and returns a [ConsoleLog] that
// grows in arrival order for as long as the page emits messages, or until
// [ConsoleLog.Stop]. Each [LogEntry] carries the message type, its text and
// the capture time. Matchers such as [Message], [OfType], [Count] and
// [NoErrors] combine with [Not], [All] and [Any].
//
// # Screenshots
//
// [Screenshot] writes <base>-<timestamp>.png, where the timestamp is the
// UTC ISO 8601 capture time with colons and dots replaced by dashes, prints
// "Screenshot saved: <name>" to standard output and returns the name.
//
// # Snapshots
//
// [ConsoleLog.MatchSnapshot] compares console output with golden files
// under testdata. Set PAGECHECK_UPDATE=1 to create or update them.
// [SnapshotTypes] keeps only selected console types, for example errors
// and warnings.
package pagecheck
