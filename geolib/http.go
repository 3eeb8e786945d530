package geolib

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type HTTPHandlerOpts struct {
	// StaticDirectory is served at / if set. It is supposed to contain
	// documentation of the API.
	StaticDirectory string

	// MetricsHandler is mounted to /metrics if set.
	MetricsHandler http.Handler
}

type httpHandler struct {
	resolver *Resolver
}

func (h httpHandler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Set("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func (h httpHandler) sendError(w http.ResponseWriter, err error, message string, statusCode int) {
	e := &httpError{
		message:    message,
		statusCode: statusCode,
		err:        err,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode())

	encoder := json.NewEncoder(w)

	encoder.SetEscapeHTML(false)
	encoder.Encode(e) // nolint: errcheck
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST")

		next.ServeHTTP(w, req)
	})
}

// NewHTTPHandler returns an HTTP API of the resolver:
//
//   GET  /lookup        resolve ?ip= or a client address
//   POST /batch-lookup  resolve {"ips": [...]}
//   GET  /ip            show a client address
//   GET  /stats         show database usage statistics
//
// API paths accept an optional trailing slash. Static files are served
// as is, so directories keep their canonical redirects.
func NewHTTPHandler(resolver *Resolver, opts HTTPHandlerOpts) http.Handler {
	handler := httpHandler{
		resolver: resolver,
	}
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(corsMiddleware)

	router.Route("/lookup", func(r chi.Router) {
		r.Get("/", handler.handleLookup)
	})
	router.Route("/batch-lookup", func(r chi.Router) {
		r.Post("/", handler.handleBatchLookup)
	})
	router.Route("/ip", func(r chi.Router) {
		r.Get("/", handler.handleIP)
	})
	router.Route("/stats", func(r chi.Router) {
		r.Get("/", handler.handleStats)
	})

	if opts.MetricsHandler != nil {
		router.Route("/metrics", func(r chi.Router) {
			r.Handle("/", opts.MetricsHandler)
		})
	}

	if opts.StaticDirectory != "" {
		router.Handle("/*", http.FileServer(http.Dir(opts.StaticDirectory)))
	}

	return router
}
