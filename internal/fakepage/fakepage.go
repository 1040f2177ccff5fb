// Package fakepage provides an in-memory browser page for testing the
// pagecheck package without a browser. It is internal to pagecheck.
package fakepage

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"sync"

	"github.com/cboone/pagecheck"
)

// Page records console listeners and screenshot requests.
type Page struct {
	mu        sync.Mutex
	listeners []func(pagecheck.ConsoleMessage)
	shots     []string
	shotErr   error
}

// New returns an empty Page.
func New() *Page {
	return &Page{}
}

// OnConsole registers fn to receive every message passed to Emit.
func (p *Page) OnConsole(fn func(pagecheck.ConsoleMessage)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Emit delivers a console message to all registered listeners, in
// registration order, on the calling goroutine.
func (p *Page) Emit(typ, text string) {
	p.mu.Lock()
	listeners := append([]func(pagecheck.ConsoleMessage){}, p.listeners...)
	p.mu.Unlock()

	msg := pagecheck.ConsoleMessage{Type: typ, Text: text}
	for _, fn := range listeners {
		fn(msg)
	}
}

// FailScreenshots makes every following Screenshot call return err.
// A nil err restores normal behavior.
func (p *Page) FailScreenshots(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shotErr = err
}

// Screenshot writes a 1x1 PNG to path and records the path.
func (p *Page) Screenshot(path string) error {
	p.mu.Lock()
	err := p.shotErr
	p.mu.Unlock()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	p.mu.Lock()
	p.shots = append(p.shots, path)
	p.mu.Unlock()
	return nil
}

// Screenshots returns the paths of successful Screenshot calls.
func (p *Page) Screenshots() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.shots...)
}
