package pagecheck

import (
	"io"
	"log/slog"
	"os"
	"time"
)

const (
	defaultTimeout      = 5 * time.Second
	defaultPollInterval = 100 * time.Millisecond
)

var discardLogger = slog.New(slog.DiscardHandler)

type options struct {
	timeout            time.Duration
	pollInterval       time.Duration
	screenshotDir      string
	failureScreenshots bool
	logger             *slog.Logger
}

// Option configures a Page created by Attach.
type Option func(*options)

// WithTimeout sets the default timeout for Page.WaitFor and
// Page.WaitForConsole.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithInterval sets the default polling interval for Page.WaitFor and
// Page.WaitForConsole.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollInterval = d
	}
}

// WithScreenshotDir sets the directory Page.Screenshot and failure
// screenshots are written to. Defaults to the working directory.
func WithScreenshotDir(dir string) Option {
	return func(o *options) {
		o.screenshotDir = dir
	}
}

// WithFailureScreenshots controls whether a screenshot is saved during
// cleanup of a failed test. Enabled by default.
func WithFailureScreenshots(enabled bool) Option {
	return func(o *options) {
		o.failureScreenshots = enabled
	}
}

// WithLogger sets the structured logger used by the Page and the
// operations it runs.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		timeout:            defaultTimeout,
		pollInterval:       defaultPollInterval,
		failureScreenshots: true,
		logger:             discardLogger,
	}
}

// WaitOption configures a single Poll or WaitFor call.
type WaitOption func(*waitOptions)

type waitOptions struct {
	timeout      time.Duration
	pollInterval time.Duration
	logger       *slog.Logger
}

// WithinTimeout overrides the total time a single call keeps retrying.
// Zero is honored: the condition is evaluated exactly once.
// Negative values are rejected.
func WithinTimeout(d time.Duration) WaitOption {
	return func(o *waitOptions) {
		o.timeout = d
	}
}

// WithPollInterval overrides the pause between evaluations for a single
// call. Zero re-evaluates without pausing. Negative values are rejected.
func WithPollInterval(d time.Duration) WaitOption {
	return func(o *waitOptions) {
		o.pollInterval = d
	}
}

// WithWaitLogger sets the logger for a single call.
func WithWaitLogger(l *slog.Logger) WaitOption {
	return func(o *waitOptions) {
		o.logger = l
	}
}

// resolveWait applies wopts on top of the given defaults.
func resolveWait(timeout, pollInterval time.Duration, logger *slog.Logger, wopts []WaitOption) waitOptions {
	wo := waitOptions{
		timeout:      timeout,
		pollInterval: pollInterval,
		logger:       logger,
	}
	for _, o := range wopts {
		o(&wo)
	}
	if wo.logger == nil {
		wo.logger = discardLogger
	}
	return wo
}

// ScreenshotOption configures a single Screenshot call.
type ScreenshotOption func(*screenshotOptions)

type screenshotOptions struct {
	dir    string
	output io.Writer
	now    func() time.Time
	logger *slog.Logger
}

// WithDir sets the directory the screenshot is written to.
// The returned name stays relative to it.
func WithDir(dir string) ScreenshotOption {
	return func(o *screenshotOptions) {
		o.dir = dir
	}
}

// WithOutput sets where the confirmation line is printed.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) ScreenshotOption {
	return func(o *screenshotOptions) {
		o.output = w
	}
}

// WithClock sets the time source used for the file name timestamp.
func WithClock(now func() time.Time) ScreenshotOption {
	return func(o *screenshotOptions) {
		o.now = now
	}
}

// WithScreenshotLogger sets the logger for a single Screenshot call.
func WithScreenshotLogger(l *slog.Logger) ScreenshotOption {
	return func(o *screenshotOptions) {
		o.logger = l
	}
}

func defaultScreenshotOptions() screenshotOptions {
	return screenshotOptions{
		output: os.Stdout,
		now:    time.Now,
		logger: discardLogger,
	}
}
