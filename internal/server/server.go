// Package server serves the landing page with both widgets rendered on each request.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/justcloud/landing/internal/page"
)

// PageRenderer applies the widgets to a page read from in and writes it to out.
type PageRenderer interface {
	RenderTo(ctx context.Context, in io.Reader, out io.Writer) (page.Report, error)
}

// Config describes what the server exposes.
type Config struct {
	// PagePath is the HTML template rendered on GET /.
	PagePath string
	// StaticDir, when set, is served for every other path (images, css, js).
	StaticDir string
}

// Server renders the landing page per request. Nothing is cached between requests.
type Server struct {
	e        *echo.Echo
	renderer PageRenderer
	cfg      Config
	logger   *slog.Logger
}

// New creates the server and registers its routes.
func New(renderer PageRenderer, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{e: e, renderer: renderer, cfg: cfg, logger: logger}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				logger.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/", s.handlePage)
	e.GET("/health", s.handleHealth)
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting landing server", "address", addr, "page", s.cfg.PagePath)
		if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down landing server")
	if err := s.e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) handlePage(c echo.Context) error {
	f, err := os.Open(s.cfg.PagePath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "page template unavailable").SetInternal(err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if _, err := s.renderer.RenderTo(c.Request().Context(), f, &buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "page rendering failed").SetInternal(err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
