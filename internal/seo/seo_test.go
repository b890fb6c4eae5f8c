package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://example.com/portfolio", AbsoluteURL("https://example.com/", "/portfolio"))
	require.Equal(t, "https://example.com/", AbsoluteURL("https://example.com", "/"))
	require.Equal(t, "/contact", AbsoluteURL("", "/contact"))
}

func TestNewMetaMirrorsSocialFields(t *testing.T) {
	t.Parallel()

	m := NewMeta("Studio", "Portfolio", "Films", "https://example.com/portfolio")
	require.Equal(t, "Portfolio", m.OG.Title)
	require.Equal(t, "Films", m.OG.Description)
	require.Equal(t, "https://example.com/portfolio", m.OG.URL)
	require.Equal(t, "Studio", m.OG.SiteName)
}

func TestBreadcrumbListPositions(t *testing.T) {
	t.Parallel()

	raw := JSON(BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://example.com/"},
		{Name: "Contact", Item: "https://example.com/contact"},
	}))

	var decoded struct {
		Type  string `json:"@type"`
		Items []struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Equal(t, "BreadcrumbList", decoded.Type)
	require.Len(t, decoded.Items, 2)
	require.Equal(t, 2, decoded.Items[1].Position)
	require.Equal(t, "Contact", decoded.Items[1].Name)
}

func TestBusinessOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	m := Business("Studio", "", "+910000000000", "")
	require.Equal(t, "ProfessionalService", m["@type"])
	require.Equal(t, "+910000000000", m["telephone"])
	require.NotContains(t, m, "url")
	require.NotContains(t, m, "email")
}
