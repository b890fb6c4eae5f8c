package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/content"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"
)

func testInputs() Inputs {
	return Inputs{
		Site: content.Site{Name: "Studio", Telephone: "+91 1"},
		Panels: map[site.Page]content.Panel{
			site.Home:      {Page: site.Home, Title: "Capturing Forever", SEO: content.SEO{Title: "Studio Home", Description: "Films"}},
			site.Portfolio: {Page: site.Portfolio, Title: "Our Portfolio", Summary: "Moments"},
			site.Contact:   {Page: site.Contact, Title: "Get In Touch"},
		},
		BaseURL: "https://example.com",
	}
}

func navigated(t *testing.T, p site.Page) *site.Document {
	t.Helper()
	doc := site.NewDocument(RootID)
	sw := site.NewSwitcher(doc)
	require.NoError(t, sw.Initialize())
	sw.Navigate(p)
	return doc
}

func TestBuildPageDataPanels(t *testing.T) {
	t.Parallel()

	data := BuildPageData(navigated(t, site.Portfolio), site.Portfolio, testInputs())

	require.Equal(t, RootID, data.RootID)
	require.Len(t, data.Panels, 3)
	visible := 0
	for _, p := range data.Panels {
		if p.Visible {
			visible++
			require.Equal(t, site.Portfolio, p.Page)
			require.Equal(t, "Our Portfolio", p.Content.Title)
		}
	}
	require.Equal(t, 1, visible)
	require.Equal(t, "/portfolio", data.Path)
}

func TestBuildPageDataMeta(t *testing.T) {
	t.Parallel()

	home := BuildPageData(navigated(t, site.Home), site.Home, testInputs())
	require.Equal(t, "Studio Home", home.SEO.Title)
	require.Equal(t, "https://example.com/", home.SEO.Canonical)
	require.Len(t, home.JSONLD, 2)
	require.Contains(t, string(home.JSONLD[1]), `"WebSite"`)

	portfolio := BuildPageData(navigated(t, site.Portfolio), site.Portfolio, testInputs())
	require.Equal(t, "Our Portfolio – Studio", portfolio.SEO.Title)
	require.Equal(t, "Moments", portfolio.SEO.Description)
	require.True(t, strings.Contains(string(portfolio.JSONLD[1]), "https://example.com/portfolio"))
}
