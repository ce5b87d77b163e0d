package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"redlenic/storefront/internal/assets"
	"redlenic/storefront/internal/service"
	"redlenic/storefront/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Host                 string
	Port                 int
	CookieName           string
	MaxRequestsPerSecond int
	ShutdownTimeout      time.Duration
}

// Server binds HTTP requests to storefront actions
type Server struct {
	config   Config
	service  *service.Service
	renderer *view.Renderer
	limiter  ratelimit.Limiter
}

func New(cfg Config, svc *service.Service, renderer *view.Renderer) *Server {
	limiter := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &Server{
		config:   cfg,
		service:  svc,
		renderer: renderer,
		limiter:  limiter,
	}
}

// Handler builds the route table
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		s.requestLogger,
		s.pace,
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle(assets.FallbackImage, assets.PlaceholderHandler())

	r.Group(func(r chi.Router) {
		r.Use(s.visitor)

		r.Post("/cart/{productID}/add", s.handleAdd)
		r.Post("/cart/{productID}/remove", s.handleRemove)
		r.Post("/cart/{productID}/quantity", s.handleQuantity)
		r.Get("/checkout", s.handleCheckout)
		r.Get("/contact", s.handleContact)
		r.Get("/", s.handlePage)
		r.Get("/*", s.handlePage)
	})

	return r
}

// Serve starts the HTTP server and blocks until the context is cancelled
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	log.Infof("🚀 Storefront listening on http://%s", addr)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		log.Info("🛑 Shutting down storefront server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
