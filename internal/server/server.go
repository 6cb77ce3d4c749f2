package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/eventdash/internal/config"
	"github.com/sandevgo/eventdash/pkg/log"
)

// Server exposes the dashboard API. Implements srv.Service.
type Server struct {
	cfg    *config.ServerConfig
	engine *gin.Engine
	http   *http.Server
}

func New(cfg *config.ServerConfig, h *Handler) *Server {
	if !config.IsDebug() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(), CORS(cfg.CORSOrigin))

	engine.GET("/health", h.Health)

	api := engine.Group("/api")
	{
		api.GET("/event/:taskId", h.GetEvent)
		api.GET("/event/:taskId/export", h.ExportEvent)
		api.POST("/chat", h.PostChat)
	}

	return &Server{
		cfg:    cfg,
		engine: engine,
	}
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.engine
}

func (s *Server) Start(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.engine,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	log.FromCtx(ctx).Info().Int("port", s.cfg.Port).Msg("API listening")

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	// The parent ctx is already done at this point; give in-flight
	// requests a short grace period.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
