// Package cdppage adapts a chromedp browser context to pagecheck.Session.
package cdppage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/cboone/pagecheck"
)

// Page wraps a context created by chromedp.NewContext.
type Page struct {
	ctx context.Context
}

// New wraps ctx, which must carry a chromedp target. The caller keeps
// ownership of the context and cancels it to close the tab.
func New(ctx context.Context) *Page {
	return &Page{ctx: ctx}
}

// Context returns the wrapped chromedp context.
func (p *Page) Context() context.Context {
	return p.ctx
}

// OnConsole delivers Runtime.consoleAPICalled events to fn.
// chromedp stops delivering once the target is gone.
func (p *Page) OnConsole(fn func(pagecheck.ConsoleMessage)) {
	chromedp.ListenTarget(p.ctx, func(ev interface{}) {
		e, ok := ev.(*runtime.EventConsoleAPICalled)
		if !ok {
			return
		}
		fn(pagecheck.ConsoleMessage{
			Type: string(e.Type),
			Text: formatArgs(e.Args),
		})
	})
}

// Screenshot captures the full page and writes it to path.
// Quality 100 makes chromedp encode PNG.
func (p *Page) Screenshot(path string) error {
	var buf []byte
	if err := chromedp.Run(p.ctx, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatArgs(args []*runtime.RemoteObject) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, formatArg(arg))
	}
	return strings.Join(parts, " ")
}

func formatArg(arg *runtime.RemoteObject) string {
	raw := []byte(arg.Value)
	switch {
	case arg.Type == runtime.TypeString:
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	case arg.Type == runtime.TypeUndefined:
		return "undefined"
	case arg.UnserializableValue != "":
		return string(arg.UnserializableValue)
	case arg.Description != "":
		return arg.Description
	case len(raw) > 0:
		return string(raw)
	default:
		return string(arg.Type)
	}
}
