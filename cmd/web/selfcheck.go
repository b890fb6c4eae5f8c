package main

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/handlers"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"
)

// selfCheck renders the initial document and verifies the root element, every
// panel and every nav button are present, with only the home panel visible.
func (s *server) selfCheck() error {
	body, err := s.renderPage(site.Home, s.cfg.SiteURL)
	if err != nil {
		return fmt.Errorf("self-check render: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("self-check parse: %w", err)
	}
	root := doc.Find("#" + handlers.RootID)
	if root.Length() != 1 {
		return fmt.Errorf("self-check: #%s: %w", handlers.RootID, site.ErrNoRoot)
	}
	var visible []string
	for _, p := range site.Pages {
		panel := root.Find("#" + p.PanelID())
		if panel.Length() != 1 {
			return fmt.Errorf("self-check: missing panel #%s", p.PanelID())
		}
		if _, hidden := panel.Attr("hidden"); !hidden {
			visible = append(visible, p.String())
		}
		if root.Find("#"+p.ButtonID()).Length() != 1 {
			return fmt.Errorf("self-check: missing nav button #%s", p.ButtonID())
		}
	}
	if len(visible) != 1 || visible[0] != site.Home.String() {
		return fmt.Errorf("self-check: initial visible panels %v, want [home]", visible)
	}
	return nil
}
