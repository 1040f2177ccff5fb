// Package rodpage adapts a go-rod page to pagecheck.Session.
package rodpage

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/cboone/pagecheck"
)

// Page wraps an open *rod.Page.
type Page struct {
	page *rod.Page
}

// New wraps page. The caller keeps ownership of the page and its browser.
func New(page *rod.Page) *Page {
	return &Page{page: page}
}

// Rod returns the wrapped page.
func (p *Page) Rod() *rod.Page {
	return p.page
}

// OnConsole delivers Runtime.consoleAPICalled events to fn until the
// page's context is done.
func (p *Page) OnConsole(fn func(pagecheck.ConsoleMessage)) {
	wait := p.page.EachEvent(func(e *proto.RuntimeConsoleAPICalled) {
		fn(pagecheck.ConsoleMessage{
			Type: string(e.Type),
			Text: formatArgs(e.Args),
		})
	})
	go wait()
}

// Screenshot captures the full page as PNG and writes it to path.
func (p *Page) Screenshot(path string) error {
	data, err := p.page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// formatArgs renders console arguments the way DevTools prints them on
// one line: strings verbatim, everything else by value or description.
func formatArgs(args []*proto.RuntimeRemoteObject) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, formatArg(arg))
	}
	return strings.Join(parts, " ")
}

func formatArg(arg *proto.RuntimeRemoteObject) string {
	switch {
	case arg.Type == proto.RuntimeRemoteObjectTypeString:
		return arg.Value.Str()
	case arg.Type == proto.RuntimeRemoteObjectTypeUndefined:
		return "undefined"
	case arg.UnserializableValue != "":
		return string(arg.UnserializableValue)
	case arg.Description != "":
		return arg.Description
	case !arg.Value.Nil():
		return arg.Value.JSON("", "")
	default:
		return string(arg.Type)
	}
}
