package nav

import "github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"

// Item represents a top-level navigation button.
type Item struct {
	Page  site.Page
	Label string
	Icon  string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Page   site.Page
	ID     string
	Href   string
	Label  string
	Icon   string
	Active bool
	Style  site.StyleSet

	// Styles applied by the browser script when switching without a reload.
	ActiveStyle   site.StyleSet
	InactiveStyle site.StyleSet
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition, one button per page.
var Main = []Item{
	{Page: site.Home, Label: "Home", Icon: "🏠"},
	{Page: site.Portfolio, Label: "Portfolio", Icon: "💍"},
	{Page: site.Contact, Label: "Contact", Icon: "📞"},
}

// Build renders navigation items with the button state held by doc.
func Build(doc *site.Document) []RenderedItem {
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		b := doc.Button(it.Page)
		items = append(items, RenderedItem{
			Page:          it.Page,
			ID:            it.Page.ButtonID(),
			Href:          it.Page.Path(),
			Label:         it.Label,
			Icon:          it.Icon,
			Active:        b.Active,
			Style:         b.Style,
			ActiveStyle:   site.StyleFor(it.Page, true),
			InactiveStyle: site.StyleFor(it.Page, false),
		})
	}
	return items
}

// Label returns the nav label of p.
func Label(p site.Page) string {
	for _, it := range Main {
		if it.Page == p {
			return it.Label
		}
	}
	return string(p)
}

// Breadcrumbs builds breadcrumb entries for the current page.
// Home is always first; other pages add themselves as the active crumb.
func Breadcrumbs(current site.Page) []Crumb {
	crumbs := []Crumb{{Href: site.Home.Path(), Label: Label(site.Home), Active: current == site.Home}}
	if current == site.Home || !current.Valid() {
		return crumbs
	}
	return append(crumbs, Crumb{Href: current.Path(), Label: Label(current), Active: true})
}
