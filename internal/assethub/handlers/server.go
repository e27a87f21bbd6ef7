// Package handlers exposes the services over HTTP as JSON resources,
// translating between request payloads and domain models and mapping
// service errors to status codes.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	e "github.com/fortetech/assethub/internal/assethub/errors"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wraps the gin engine in an http.Server with graceful shutdown.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer constructs a Server listening on the given port. The browser
// frontend runs on a different origin, hence the permissive CORS policy.
func NewServer(port int, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger.Named("http")))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
		logger: logger,
	}
}

// Router exposes the engine for route registration and tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server, returning on the first error.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP serve error: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	s.logger.Info("Server stopped")
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// mapServiceError renders a service error with the status code the error
// taxonomy prescribes: 404 for missing entities, 409 for conflicts,
// 400 for bad transitions and invalid input.
func mapServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrAlreadyExists),
		errors.Is(err, e.ErrNotebookInUse),
		errors.Is(err, e.ErrAssetAssociated):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrNotAvailable), errors.Is(err, e.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Internal server error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
