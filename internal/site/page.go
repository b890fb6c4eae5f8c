package site

import (
	"fmt"
	"strings"
)

// Page identifies one of the three panels of the site.
type Page string

const (
	Home      Page = "home"
	Portfolio Page = "portfolio"
	Contact   Page = "contact"
)

// Pages lists every page in navigation order.
var Pages = []Page{Home, Portfolio, Contact}

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool {
	switch p {
	case Home, Portfolio, Contact:
		return true
	default:
		return false
	}
}

func (p Page) String() string { return string(p) }

// Path returns the canonical URL path for the page.
func (p Page) Path() string {
	if p == Home {
		return "/"
	}
	return "/" + string(p)
}

// PanelID is the element id of the page's content panel.
func (p Page) PanelID() string { return "panel-" + string(p) }

// ButtonID is the element id of the page's nav button.
func (p Page) ButtonID() string { return "nav-" + string(p) }

// ParsePage converts a page name into a Page.
func ParsePage(s string) (Page, error) {
	p := Page(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("site: unknown page %q", s)
	}
	return p, nil
}

// PageForPath maps a request path to its page.
func PageForPath(path string) (Page, bool) {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return Home, true
	}
	p := Page(strings.TrimPrefix(path, "/"))
	if p == Home || !p.Valid() {
		return "", false
	}
	return p, true
}

func mustValid(p Page) {
	if !p.Valid() {
		panic(fmt.Sprintf("site: unknown page %q", string(p)))
	}
}
