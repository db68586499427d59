package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/kbukum/golinq/config"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/observability"
	"github.com/kbukum/golinq/server/endpoint"
	"github.com/kbukum/golinq/server/middleware"
)

var bindingOnce sync.Once

// configureBinding sets gin's process-wide JSON decoding: numbers stay
// json.Number so integers survive intact, and unknown fields are rejected.
func configureBinding() {
	binding.EnableDecoderUseNumber = true
	binding.EnableDecoderDisallowUnknownFields = true
}

// Server is the HTTP front end for query plans, backed by Gin and served
// with h2c.
type Server struct {
	httpServer  *http.Server
	engine      *gin.Engine
	middlewares []middleware.Middleware
	config      config.ServerConfig
	log         *logger.Logger
}

// New creates a new Server with no routes or middleware.
func New(cfg config.ServerConfig, log *logger.Logger) *Server {
	bindingOnce.Do(configureBinding)
	if log.DebugEnabled() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  120 * time.Second,
		},
		engine: gin.New(),
		config: cfg,
		log:    log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Use appends middleware around the engine. The first added is outermost.
func (s *Server) Use(mw ...middleware.Middleware) {
	s.middlewares = append(s.middlewares, mw...)
}

// ApplyMiddleware installs the standard stack: recovery, request ID,
// metrics (when m is not nil), body-size limit and request logging.
func (s *Server) ApplyMiddleware(m *observability.QueryMetrics) {
	s.Use(
		middleware.Recovery(s.log),
		middleware.RequestID(),
		middleware.Metrics(m),
		middleware.BodySizeLimit(s.config.MaxBodyBytes),
		middleware.RequestLogger(s.log),
	)
}

// RegisterRoutes mounts the query endpoint and the health and version endpoints.
func (s *Server) RegisterRoutes(serviceName string, h *QueryHandler) {
	s.engine.POST("/v1/query", h.Query)
	s.engine.GET("/health", endpoint.Health(serviceName, observability.CheckEngine))
	s.engine.GET("/version", endpoint.Version())
}

// Handler returns the engine wrapped in middleware and h2c.
func (s *Server) Handler() http.Handler {
	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}
	return h2c.NewHandler(middleware.Chain(s.middlewares...)(s.engine), h2s)
}

// Start binds the port and begins serving. It returns once the listener is
// bound so the caller knows the port is ready; serving continues in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer.Handler = s.Handler()
	s.httpServer.BaseContext = func(net.Listener) context.Context { return ctx }

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}
	s.httpServer.Addr = listener.Addr().String()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", logger.Fields(logger.FieldError, err.Error()))
		}
	}()

	s.log.Info("HTTP server started", logger.Fields("addr", s.httpServer.Addr))
	return nil
}

// Stop gracefully shuts down the server within the configured shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Error("Server shutdown error", logger.Fields(logger.FieldError, err.Error()))
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("HTTP server shut down successfully")
	return nil
}

// Addr returns the listen address, resolved once Start has bound it.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
