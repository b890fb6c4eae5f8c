package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"
)

func TestBuildReflectsCurrentPage(t *testing.T) {
	t.Parallel()

	doc := site.NewDocument("app")
	sw := site.NewSwitcher(doc)
	require.NoError(t, sw.Initialize())
	sw.Navigate(site.Contact)

	items := Build(doc)
	require.Len(t, items, 3)

	var active []site.Page
	for _, it := range items {
		if it.Active {
			active = append(active, it.Page)
			require.Equal(t, it.ActiveStyle, it.Style)
		} else {
			require.Equal(t, it.InactiveStyle, it.Style)
		}
		require.Equal(t, it.Page.Path(), it.Href)
		require.Equal(t, it.Page.ButtonID(), it.ID)
	}
	require.Equal(t, []site.Page{site.Contact}, active)
}

func TestBuildBeforeInitializeIsInactive(t *testing.T) {
	t.Parallel()

	for _, it := range Build(site.NewDocument("app")) {
		require.False(t, it.Active)
		require.Empty(t, it.Style.Glow)
	}
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	home := Breadcrumbs(site.Home)
	require.Len(t, home, 1)
	require.True(t, home[0].Active)

	crumbs := Breadcrumbs(site.Portfolio)
	require.Len(t, crumbs, 2)
	require.Equal(t, "/", crumbs[0].Href)
	require.False(t, crumbs[0].Active)
	require.Equal(t, "/portfolio", crumbs[1].Href)
	require.Equal(t, "Portfolio", crumbs[1].Label)
	require.True(t, crumbs[1].Active)
}
