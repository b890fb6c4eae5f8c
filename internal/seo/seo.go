package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// NewMeta fills the social card fields from title and description.
func NewMeta(siteName, title, description, canonical string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			URL:         canonical,
			SiteName:    siteName,
		},
		Twitter: Twitter{Card: "summary_large_image"},
	}
}

// AbsoluteURL joins base and path. An empty base yields path unchanged.
func AbsoluteURL(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
