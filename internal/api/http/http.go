// Package httpapi wires the public, auth and admin handlers onto one chi
// router and runs the HTTP server.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/printline/printline-manager/internal/apisrv/admin"
	"github.com/printline/printline-manager/internal/apisrv/auth"
	"github.com/printline/printline-manager/internal/apisrv/frontend"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// SubmitLimit caps public order submissions per client IP within
	// SubmitWindow. Zero keeps the default of 7 per 15s.
	SubmitLimit  int    `mapstructure:"submit_limit"`
	SubmitWindow string `mapstructure:"submit_window"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router(
	adminServer *admin.Server,
	frontendServer *frontend.Server,
	authServer *auth.Server,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	limit, window := s.submitRate()
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			// The public form is the abuse surface; everything else sits
			// behind auth.
			r.Use(httprate.Limit(
				limit,
				window,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				}),
			))
			frontendServer.Routes(r)
		})

		r.Route("/auth", authServer.Routes)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authServer.WithMember)
			adminServer.Routes(r)
		})
	})

	return r
}

func (s *Server) submitRate() (int, time.Duration) {
	limit := s.c.SubmitLimit
	if limit <= 0 {
		limit = 7
	}
	window := 15 * time.Second
	if s.c.SubmitWindow != "" {
		if d, err := time.ParseDuration(s.c.SubmitWindow); err == nil && d > 0 {
			window = d
		}
	}
	return limit, window
}

// Start starts the server
func (s *Server) Start(ctx context.Context,
	adminServer *admin.Server,
	frontendServer *frontend.Server,
	authServer *auth.Server,
) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.router(adminServer, frontendServer, authServer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("printline-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else if err != nil {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}
