// Package pwpage adapts a playwright-go page to pagecheck.Session.
package pwpage

import (
	"github.com/playwright-community/playwright-go"

	"github.com/cboone/pagecheck"
)

// Page wraps an open playwright.Page.
type Page struct {
	page playwright.Page
}

// New wraps page. The caller keeps ownership of the page and its browser.
func New(page playwright.Page) *Page {
	return &Page{page: page}
}

// Playwright returns the wrapped page.
func (p *Page) Playwright() playwright.Page {
	return p.page
}

// OnConsole delivers the page's console events to fn.
func (p *Page) OnConsole(fn func(pagecheck.ConsoleMessage)) {
	p.page.OnConsole(func(msg playwright.ConsoleMessage) {
		fn(pagecheck.ConsoleMessage{
			Type: msg.Type(),
			Text: msg.Text(),
		})
	})
}

// Screenshot lets Playwright write a full-page PNG to path.
func (p *Page) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}
