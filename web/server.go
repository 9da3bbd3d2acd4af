// Package web serves the local lookup UI. Every state transition is computed
// server-side; the page script only forwards keystrokes and clicks.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"aimlookup/loader"
	"aimlookup/lookup"
	"aimlookup/viewer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Tasks are the per-variant loading tasks. Each is started by the caller.
type Tasks struct {
	Lookup  *loader.Task[*loader.LookupData]
	Equity  *loader.Task[*loader.EquityData]
	Records *loader.Task[*loader.RecordsData]
}

type Options struct {
	CollapseWords int
	Logger        *zap.Logger
}

type Server struct {
	tasks  Tasks
	opts   Options
	logger *zap.Logger
	router chi.Router
}

// variantData is the ready state shared by the lookup and equity variants.
type variantData struct {
	index    *lookup.Index
	resolver *lookup.Resolver
}

func NewServer(tasks Tasks, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CollapseWords <= 0 {
		opts.CollapseWords = viewer.DefaultCollapseWords
	}
	server := &Server{tasks: tasks, opts: opts, logger: opts.Logger}

	static, _ := fs.Sub(staticFS, "static")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(server.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", server.handleLookupPage)
	r.Get("/equity", server.handleEquityPage)
	r.Get("/records", server.handleRecordsPage)
	r.Get("/records/view", server.handleRecordsView)
	r.Get("/healthz", handleHealthz)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Route("/api/{variant}", func(r chi.Router) {
		r.Get("/status", server.handleAPIStatus)
		r.Get("/suggest", server.handleAPISuggest)
		r.Get("/resolve", server.handleAPIResolve)
	})
	server.router = r

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLookupPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "lookup.html", lookupPage(s.tasks.Lookup.Status()))
}

func (s *Server) handleEquityPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "lookup.html", equityPage(s.tasks.Equity.Status()))
}

func (s *Server) handleRecordsPage(w http.ResponseWriter, r *http.Request) {
	page, ok := s.recordsPage(w, r)
	if !ok {
		return
	}
	s.render(w, "records.html", page)
}

// handleRecordsView renders only the record and pager markup so the page can
// swap it in on every search keystroke.
func (s *Server) handleRecordsView(w http.ResponseWriter, r *http.Request) {
	page, ok := s.recordsPage(w, r)
	if !ok {
		return
	}
	if !page.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, page.Status)
		return
	}

	tmpl, err := template.ParseFS(templateFS, "templates/records.html")
	if err != nil {
		s.fail(w, fmt.Errorf("parse template records.html: %w", err))
		return
	}
	var body strings.Builder
	if err := tmpl.ExecuteTemplate(&body, "record-view", page); err != nil {
		s.fail(w, fmt.Errorf("render record view: %w", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body.String()))
}

func (s *Server) recordsPage(w http.ResponseWriter, r *http.Request) (recordsPageView, bool) {
	query := r.URL.Query().Get("q")
	index := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("i")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid record index", http.StatusBadRequest)
			return recordsPageView{}, false
		}
		index = parsed
	}

	status := s.tasks.Records.Status()
	var view viewer.View
	if data, ok := s.tasks.Records.Value(); ok {
		pager := viewer.NewPager(data.Details)
		pager.Search(query)
		pager.Seek(index)
		view = viewer.Build(pager, query, s.opts.CollapseWords)
	}
	return newRecordsPage(status, view), true
}

func (s *Server) handleAPIStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := s.status(chi.URLParam(r, "variant"))
	if !ok {
		http.Error(w, "unknown variant", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleAPISuggest(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readyVariant(w, chi.URLParam(r, "variant"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, data.index.Suggest(r.URL.Query().Get("q")))
}

func (s *Server) handleAPIResolve(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readyVariant(w, chi.URLParam(r, "variant"))
	if !ok {
		return
	}
	result := data.resolver.Resolve(r.URL.Query().Get("name"))

	tmpl, err := template.ParseFS(templateFS, "templates/result.html")
	if err != nil {
		s.fail(w, fmt.Errorf("parse template result.html: %w", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "result", result); err != nil {
		s.logger.Error("render result fragment", zap.Error(err))
	}
}

func (s *Server) status(variant string) (loader.Status, bool) {
	switch variant {
	case VariantLookup:
		return s.tasks.Lookup.Status(), true
	case VariantEquity:
		return s.tasks.Equity.Status(), true
	case VariantRecords:
		return s.tasks.Records.Status(), true
	default:
		return loader.Status{}, false
	}
}

// readyVariant writes 404 for variants without suggestions and 503 while the
// variant's dataset is not ready.
func (s *Server) readyVariant(w http.ResponseWriter, variant string) (variantData, bool) {
	switch variant {
	case VariantLookup:
		if data, ok := s.tasks.Lookup.Value(); ok {
			return variantData{index: data.Index, resolver: data.Resolver}, true
		}
	case VariantEquity:
		if data, ok := s.tasks.Equity.Value(); ok {
			return variantData{index: data.Index, resolver: data.Resolver}, true
		}
	default:
		http.Error(w, "unknown variant", http.StatusNotFound)
		return variantData{}, false
	}

	status, _ := s.status(variant)
	writeJSON(w, http.StatusServiceUnavailable, status)
	return variantData{}, false
}

func (s *Server) render(w http.ResponseWriter, page string, data any) {
	var body strings.Builder
	if err := renderTemplate(&body, page, data); err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body.String()))
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", zap.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func renderTemplate(w io.Writer, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").ParseFS(templateFS, "templates/base.html", "templates/result.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
