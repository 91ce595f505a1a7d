// Package httpapi HTTP API ручной отправки уведомлений.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server gin-сервер с graceful shutdown
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewRouter собирает gin.Engine со всеми маршрутами
func NewRouter(manual ManualSender, jwtSecret string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(logger), RequestLogger(logger))

	r.GET("/health", health)

	h := &handler{manual: manual, logger: logger}
	api := r.Group("/api/v1", JWTAuth(jwtSecret))
	api.POST("/notifications/send", h.sendNotification)

	return r
}

func NewServer(port int, manual ManualSender, jwtSecret string, logger *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(manual, jwtSecret, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start запускает сервер в отдельной горутине
func (s *Server) Start() {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.srv.Addr))

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
}

// Shutdown дожидается завершения активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
