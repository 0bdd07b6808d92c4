// Package server exposes one dynamic form over HTTP: it serves the rendered
// form, accepts submissions, and reports load failures with a retry control.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-dynaform/pkg/form"
	"github.com/goliatone/go-dynaform/pkg/render"
)

// Options configure a Server.
type Options struct {
	Addr            string
	ShutdownTimeout time.Duration
	Logger          zerolog.Logger
}

// Server wires one form and one renderer behind an http.Server.
type Server struct {
	form     *form.Form
	renderer render.Renderer
	log      zerolog.Logger

	addr            string
	shutdownTimeout time.Duration
}

// New builds a Server. The form may still be loading; handlers render the
// current lifecycle state on every request.
func New(f *form.Form, renderer render.Renderer, opts Options) (*Server, error) {
	if f == nil {
		return nil, errors.New("server: form is required")
	}
	if renderer == nil {
		return nil, errors.New("server: renderer is required")
	}

	addr := opts.Addr
	if addr == "" {
		addr = ":8080"
	}
	shutdown := opts.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = 10 * time.Second
	}

	return &Server{
		form:            f,
		renderer:        renderer,
		log:             opts.Logger,
		addr:            addr,
		shutdownTimeout: shutdown,
	}, nil
}

// Handler returns the route table, exported so tests can drive it with
// httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /submit", s.handleSubmit)
	mux.HandleFunc("POST /retry", s.handleRetry)
	mux.HandleFunc("GET /schema.json", s.handleSchema)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logRequests(mux)
}

// Run starts the schema load in the background, serves until the context is
// canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		if err := s.form.Load(ctx); err != nil {
			s.log.Warn().Err(err).Msg("initial schema load failed, retry available")
		}
	}()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.log.Info().Msg("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
