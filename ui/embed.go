// Package ui embeds the templates, panel content and static assets of the site.
package ui

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed templates/*.tmpl content/*.md content/*.yaml static/*
var files embed.FS

// FS returns the embedded tree, or the on-disk directory dir when dir is non-empty.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return files
}
