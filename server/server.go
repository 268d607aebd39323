// Package server provides the HTTP server shared by the FinTrust services:
// a Gin engine mounted on a ServeMux, a standard middleware stack applied at
// the handler level, and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/skillsenselab/fintrust/logger"
	"github.com/skillsenselab/fintrust/observability"
	"github.com/skillsenselab/fintrust/server/middleware"
)

// Server is an HTTP server backed by Gin, with the middleware stack applied
// around the root mux so it covers every mounted handler.
type Server struct {
	engine *gin.Engine
	mux    *http.ServeMux
	config Config
	log    *logger.Logger
	chain  []middleware.Middleware

	httpServer *http.Server
}

// New creates a new Server. Route registration happens on the Gin engine;
// middleware is collected via Use and applied when Start builds the handler.
func New(cfg Config, log *logger.Logger) *Server {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	mux := http.NewServeMux()
	mux.Handle("/", engine)

	return &Server{
		engine: engine,
		mux:    mux,
		config: cfg,
		log:    log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Use appends middleware around the root handler. The first added runs
// outermost.
func (s *Server) Use(mw ...middleware.Middleware) {
	s.chain = append(s.chain, mw...)
}

// ApplyDefaults installs the standard stack: recovery, request IDs,
// tracing, CORS, request logging with metrics. Body-size caps are applied
// per route group, not here, since the login cap is much tighter than the
// general one.
func (s *Server) ApplyDefaults(serviceName string, metrics *observability.Metrics) {
	s.Use(
		middleware.Recovery(s.log),
		middleware.RequestID(),
		middleware.Tracing(serviceName),
		middleware.CORS(&s.config.CORS),
		middleware.RequestLogger(s.log, metrics),
	)
}

// Handler builds the composed handler: middleware chain around the mux,
// wrapped with h2c for HTTP/2 cleartext.
func (s *Server) Handler() http.Handler {
	handler := middleware.Chain(s.chain...)(s.mux)
	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}
	return h2c.NewHandler(handler, h2s)
}

// Start binds the port and begins serving. It returns once the listener is
// bound; serving continues in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.config.IdleTimeout) * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	s.log.Info("HTTP server started", map[string]interface{}{
		"addr": addr,
	})
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.log.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
