package main

import (
	"encoding/xml"
	"net/http"

	"go.uber.org/zap"

	mw "github.com/abhaypratapsingh7704866570/abhayvideography/internal/middleware"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/seo"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/site"
)

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (s *server) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	base := s.baseURL(r)
	set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range site.Pages {
		set.URLs = append(set.URLs, sitemapURL{Loc: seo.AbsoluteURL(base, p.Path())})
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		mw.LoggerFrom(r.Context()).Error("sitemap", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

func (s *server) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nAllow: /\nSitemap: " + seo.AbsoluteURL(s.baseURL(r), "/sitemap.xml") + "\n"))
}
