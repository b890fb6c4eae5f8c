package handlers

import (
	"html/template"

	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/content"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/nav"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/seo"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"
)

// RootID is the id of the element the document shell mounts into.
const RootID = "app"

// PageData is the view model for the single-page layout.
type PageData struct {
	Lang    string
	Site    content.Site
	SEO     seo.Meta
	JSONLD  []template.JS
	RootID  string
	Current site.Page

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	Panels      []PanelView
}

// PanelView is one content panel with its visibility.
type PanelView struct {
	Page    site.Page
	ID      string
	Visible bool
	Content content.Panel
}

// Inputs gathers what BuildPageData needs beyond the document state.
type Inputs struct {
	Site    content.Site
	Panels  map[site.Page]content.Panel
	BaseURL string
}

// BuildPageData reads the switcher state held by doc into a view model.
func BuildPageData(doc *site.Document, current site.Page, in Inputs) PageData {
	panels := make([]PanelView, 0, len(site.Pages))
	for _, p := range doc.Panels() {
		panels = append(panels, PanelView{
			Page:    p.Page,
			ID:      p.Page.PanelID(),
			Visible: p.Visible,
			Content: in.Panels[p.Page],
		})
	}

	crumbs := nav.Breadcrumbs(current)
	canonical := seo.AbsoluteURL(in.BaseURL, current.Path())
	return PageData{
		Lang:        "en",
		Site:        in.Site,
		SEO:         buildMeta(in.Site, in.Panels[current], canonical),
		JSONLD:      buildJSONLD(in.Site, current, crumbs, in.BaseURL),
		RootID:      RootID,
		Current:     current,
		Path:        current.Path(),
		Nav:         nav.Build(doc),
		Breadcrumbs: crumbs,
		Panels:      panels,
	}
}

func buildMeta(s content.Site, panel content.Panel, canonical string) seo.Meta {
	title := panel.SEO.Title
	if title == "" {
		title = panel.Title
		if s.Name != "" {
			title = panel.Title + " – " + s.Name
		}
	}
	description := panel.SEO.Description
	if description == "" {
		description = panel.Summary
	}
	return seo.NewMeta(s.Name, title, description, canonical)
}

func buildJSONLD(s content.Site, current site.Page, crumbs []nav.Crumb, baseURL string) []template.JS {
	home := seo.AbsoluteURL(baseURL, site.Home.Path())
	payloads := []map[string]any{
		seo.Business(s.Name, home, s.Telephone, s.Email),
	}
	if current == site.Home {
		payloads = append(payloads, seo.WebSite(s.Name, home))
	} else {
		items := make([]seo.BreadcrumbItem, 0, len(crumbs))
		for _, c := range crumbs {
			items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: seo.AbsoluteURL(baseURL, c.Href)})
		}
		payloads = append(payloads, seo.BreadcrumbList(items))
	}
	out := make([]template.JS, 0, len(payloads))
	for _, p := range payloads {
		if raw := seo.JSON(p); raw != "" {
			out = append(out, template.JS(raw))
		}
	}
	return out
}
