// Package web provides a local preview server for a multi-language
// documentation site: an index page listing the site's languages and
// the site pages themselves with the language navigation injected.
package web

import (
	"context"
	"net/http"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(addr, siteDir string, model *SiteModel, configProvider ConfigProvider) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", createIndexHandler(model))
	mux.Handle("/site/", http.StripPrefix("/site/", createSitePageHandler(siteDir, configProvider)))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	return &Server{
		httpServer: httpServer,
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
