package pagecheck

import (
	"fmt"
	"os"
	"path/filepath"
)

// Screenshotter is a browser page that can save a full-page PNG
// screenshot to a path.
type Screenshotter interface {
	Screenshot(path string) error
}

// Screenshot asks s to write a full-page screenshot named
// "<base>-<timestamp>.png", prints a confirmation line and returns the
// file name.
//
// The timestamp is the UTC capture time in ISO 8601 form with colons and
// dots replaced by dashes, for example home-2026-10-16T04-22-01-123Z.png.
// The file goes to the working directory unless WithDir is given.
//
// The base is made filesystem-safe first: every character outside
// [A-Za-z0-9.-] becomes an underscore, so "checkout/step 2" is saved as
// checkout_step_2-<timestamp>.png. Match on the returned name rather than
// on base.
func Screenshot(s Screenshotter, base string, sopts ...ScreenshotOption) (string, error) {
	so := defaultScreenshotOptions()
	for _, o := range sopts {
		o(&so)
	}

	if base == "" {
		return "", &Error{Op: "screenshot", Err: ErrEmptyName}
	}

	name := screenshotName(base, so.now())
	path := name
	if so.dir != "" {
		if err := os.MkdirAll(so.dir, 0o755); err != nil {
			return "", &Error{Op: "screenshot", Err: fmt.Errorf("failed to create directory: %w", err)}
		}
		path = filepath.Join(so.dir, name)
	}

	if err := s.Screenshot(path); err != nil {
		so.logger.Warn("screenshot failed", "path", path, "err", err)
		return "", &Error{Op: "screenshot", Err: err}
	}

	so.logger.Info("screenshot saved", "path", path)
	fmt.Fprintf(so.output, "Screenshot saved: %s\n", name)
	return name, nil
}
