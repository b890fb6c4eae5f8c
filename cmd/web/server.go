package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/config"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/content"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/handlers"
	mw "github.com/abhaypratapsingh7704866570/abhayvideography/internal/middleware"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"
)

const templatesGlob = "templates/*.tmpl"

type server struct {
	cfg     config.Config
	logger  *zap.Logger
	root    fs.FS
	static  fs.FS
	content *content.Loader
	// tmplCache is nil in dev mode, where templates are reparsed per request.
	tmplCache *template.Template
}

// newServer wires content and templates from root and verifies the rendered shell.
func newServer(cfg config.Config, logger *zap.Logger, root fs.FS) (*server, error) {
	contentFS, err := fs.Sub(root, "content")
	if err != nil {
		return nil, fmt.Errorf("content fs: %w", err)
	}
	static, err := fs.Sub(root, "static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}
	s := &server{
		cfg:     cfg,
		logger:  logger,
		root:    root,
		static:  static,
		content: content.NewLoader(contentFS, cfg.CacheTTL()),
	}
	if !cfg.Dev {
		// Parse templates once in production
		t, err := s.parseTemplates()
		if err != nil {
			return nil, fmt.Errorf("parse templates: %w", err)
		}
		s.tmplCache = t
	}
	if err := s.selfCheck(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RedirectSlashes)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(s.static)))
	r.Get("/sitemap.xml", s.sitemapHandler)
	r.Get("/robots.txt", s.robotsHandler)

	for _, p := range site.Pages {
		r.Get(p.Path(), s.pageHandler(p))
	}
	return r
}

func (s *server) parseTemplates() (*template.Template, error) {
	t, err := template.New("_root").ParseFS(s.root, templatesGlob)
	if err != nil {
		return nil, err
	}
	if t.Lookup("base") == nil {
		return nil, fmt.Errorf("no base layout in %s", templatesGlob)
	}
	return t, nil
}

func (s *server) templates() (*template.Template, error) {
	if s.cfg.Dev || s.tmplCache == nil {
		return s.parseTemplates()
	}
	return s.tmplCache, nil
}

// pageData drives a fresh switcher to target and reads the result into a view model.
func (s *server) pageData(target site.Page, baseURL string) (handlers.PageData, error) {
	doc := site.NewDocument(handlers.RootID)
	sw := site.NewSwitcher(doc)
	if err := sw.Initialize(); err != nil {
		return handlers.PageData{}, err
	}
	sw.Navigate(target)

	panels, err := s.content.Panels()
	if err != nil {
		return handlers.PageData{}, err
	}
	siteCopy, err := s.content.Site()
	if err != nil {
		return handlers.PageData{}, fmt.Errorf("site content: %w", err)
	}
	return handlers.BuildPageData(doc, sw.Current(), handlers.Inputs{
		Site:    siteCopy,
		Panels:  panels,
		BaseURL: baseURL,
	}), nil
}

// renderPage executes the base layout for target into a buffer.
func (s *server) renderPage(target site.Page, baseURL string) ([]byte, error) {
	data, err := s.pageData(target, baseURL)
	if err != nil {
		return nil, err
	}
	t, err := s.templates()
	if err != nil {
		return nil, fmt.Errorf("template parse: %w", err)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("template exec: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *server) pageHandler(p site.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := s.renderPage(p, s.baseURL(r))
		if err != nil {
			mw.LoggerFrom(r.Context()).Error("render page", zap.String("page", p.String()), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(body)
	}
}

// baseURL prefers the configured site URL and otherwise derives one from the request.
func (s *server) baseURL(r *http.Request) string {
	if u := strings.TrimSpace(s.cfg.SiteURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
