// Package content loads the copy shown in each panel from markdown files with
// YAML front matter.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"
)

// ErrNotFound is returned when no content file exists for a page.
var ErrNotFound = errors.New("content: not found")

const siteFile = "site.yaml"

// Panel is the copy of one page's panel.
type Panel struct {
	Page     site.Page
	Title    string
	Eyebrow  string
	Summary  string
	Body     template.HTML
	CTAs     []CTA
	Cards    []Card
	Stats    []Stat
	Banner   *Banner
	Channels []Channel
	Details  []Detail
	Social   []Link
	Form     *Form
	Note     string
	SEO      SEO
}

// CTA is a secondary control that navigates to a fixed page.
type CTA struct {
	Label   string
	Icon    string
	Variant string // "primary" or "secondary"
	Target  site.Page
}

// Href is the canonical path of the CTA target.
func (c CTA) Href() string { return c.Target.Path() }

type Card struct {
	Icon     string
	Title    string
	Subtitle string
	Text     string
	Media    string
	Color    string
	Tags     []string
}

type Stat struct {
	Value string
	Label string
}

type Banner struct {
	Icon    string
	Title   string
	Message string
	CTA     *CTA
}

// Channel is a static contact affordance such as a tel: or mailto: link.
// Href is trusted so that tel: links survive template escaping.
type Channel struct {
	Kind     string
	Icon     string
	Title    string
	Display  string
	Href     template.URL
	Note     string
	External bool
}

type Detail struct {
	Icon  string
	Title string
	Lines []string
}

type Link struct {
	Label string
	Href  string
}

// Form describes the message form. It has no submit handler.
type Form struct {
	Icon     string
	Title    string
	Subtitle string
	Fields   []Field
	Submit   string
}

type Field struct {
	Type        string
	Placeholder string
	Rows        int
}

type SEO struct {
	Title       string
	Description string
}

// Site holds copy shared by every page.
type Site struct {
	Name      string   `yaml:"name"`
	Tagline   string   `yaml:"tagline"`
	Icon      string   `yaml:"icon"`
	Telephone string   `yaml:"telephone"`
	Email     string   `yaml:"email"`
	Footer    []string `yaml:"footer"`
}

// Loader reads and caches content from an fs.FS.
type Loader struct {
	src    fs.FS
	md     goldmark.Markdown
	policy *bluemonday.Policy
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[site.Page]cacheEntry
}

type cacheEntry struct {
	panel   Panel
	expires time.Time
}

// NewLoader returns a loader over src. A ttl of zero disables caching.
func NewLoader(src fs.FS, ttl time.Duration) *Loader {
	return &Loader{
		src: src,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
		ttl:    ttl,
		cache:  map[site.Page]cacheEntry{},
	}
}

// Panel returns the copy for p.
func (l *Loader) Panel(p site.Page) (Panel, error) {
	if !p.Valid() {
		return Panel{}, ErrNotFound
	}
	if panel, ok := l.cached(p); ok {
		return panel, nil
	}
	panel, err := l.readPanel(p)
	if err != nil {
		return Panel{}, err
	}
	l.store(p, panel)
	return panel, nil
}

// Panels returns the copy for every page, keyed by page.
func (l *Loader) Panels() (map[site.Page]Panel, error) {
	out := make(map[site.Page]Panel, len(site.Pages))
	for _, p := range site.Pages {
		panel, err := l.Panel(p)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", p, err)
		}
		out[p] = panel
	}
	return out, nil
}

// Site returns the shared site copy.
func (l *Loader) Site() (Site, error) {
	raw, err := fs.ReadFile(l.src, siteFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Site{}, ErrNotFound
		}
		return Site{}, err
	}
	var s Site
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Site{}, fmt.Errorf("content: parse %s: %w", siteFile, err)
	}
	return s, nil
}

func (l *Loader) readPanel(p site.Page) (Panel, error) {
	file := string(p) + ".md"
	data, err := fs.ReadFile(l.src, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Panel{}, ErrNotFound
		}
		return Panel{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Panel{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}
	panel, err := front.panel(p)
	if err != nil {
		return Panel{}, fmt.Errorf("content: %s: %w", file, err)
	}
	if strings.TrimSpace(body) != "" {
		var buf bytes.Buffer
		if err := l.md.Convert([]byte(body), &buf); err != nil {
			return Panel{}, fmt.Errorf("content: render %s: %w", file, err)
		}
		panel.Body = template.HTML(l.policy.SanitizeBytes(buf.Bytes()))
	}
	return panel, nil
}

func (l *Loader) cached(p site.Page) (Panel, bool) {
	if l.ttl <= 0 {
		return Panel{}, false
	}
	l.mu.RLock()
	entry, ok := l.cache[p]
	l.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return Panel{}, false
	}
	return entry.panel, true
}

func (l *Loader) store(p site.Page, panel Panel) {
	if l.ttl <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache[p] = cacheEntry{panel: panel, expires: time.Now().Add(l.ttl)}
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}
