// Package httpserver wires the content, notification, and upload handlers
// onto a chi router and runs the HTTP listener.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/guidedbycompassion/website/internal/content"
	"github.com/guidedbycompassion/website/internal/notification"
	"github.com/guidedbycompassion/website/pkg/health"
	"github.com/guidedbycompassion/website/pkg/storage"
)

// Deps carries the collaborators the router needs. Store may be nil when no
// object storage credential is configured; the upload endpoint then answers
// 503.
type Deps struct {
	Resolver *content.Resolver
	Composer *notification.Composer
	Store    storage.Storage
	Log      *slog.Logger

	// CORSOrigin is the origin allowed to call the API, "*" by default.
	CORSOrigin string

	// BulkTable and BulkView locate the view behind the blog listing.
	BulkTable string
	BulkView  string

	// Checks feed the readiness endpoint (cache backend connectivity and
	// the like). Empty means always ready.
	Checks health.Checks
}

// NewRouter assembles the public API surface.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(deps.CORSOrigin))

	r.Get("/health", health.LivenessHandler())
	r.Get("/ready", health.ReadinessHandler(deps.Checks, health.WithLogger(deps.Log)))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/content/{slice}", handleContent(deps.Resolver, deps.Log))
		r.Get("/blogs", handleBlogList(deps.Resolver, deps.BulkTable, deps.BulkView))

		r.Route("/forms", func(r chi.Router) {
			r.Post("/contact", handleContactForm(deps.Composer))
			r.Post("/consultation", handleConsultationForm(deps.Composer))
			r.Post("/referral", handleReferralForm(deps.Composer))
			r.Post("/application", handleApplicationForm(deps.Composer))
		})

		r.Post("/uploads", handleUpload(deps.Store, deps.Log))
	})

	return r
}

func corsMiddleware(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Run serves the router until ctx is canceled, then drains connections
// within the shutdown timeout.
func Run(ctx context.Context, addr string, handler http.Handler, log *slog.Logger, readTimeout, writeTimeout, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
