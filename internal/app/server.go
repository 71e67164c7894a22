package app

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wekeza-crm/internal/config"
	"wekeza-crm/internal/db"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
	"wekeza-crm/internal/websocket"
)

// Server owns the process-level resources: database, optional redis,
// websocket hub, and the HTTP listener.
type Server struct {
	cfg    config.AppConfig
	logger *zap.Logger

	httpServer *http.Server
	hubCancel  context.CancelFunc
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Start connects the stores, migrates the schema, and begins serving.
// It blocks until the listener stops.
func (s *Server) Start() error {
	gdb, err := db.NewPostgres(s.cfg.DB)
	if err != nil {
		return err
	}
	if err := postgres.AutoMigrate(gdb); err != nil {
		return err
	}

	deps := Deps{
		DB:     gdb,
		Logger: s.logger,
		Gen:    ident.New(),
		Cfg:    s.cfg,
	}

	if s.cfg.RedisAddr != "" {
		client, err := db.NewRedisClient(s.cfg.RedisAddr, s.cfg.RedisPass)
		if err != nil {
			return err
		}
		deps.Redis = client
		s.logger.Info("rate limiting enabled", zap.String("redis", s.cfg.RedisAddr))
	}

	hub := websocket.NewHub()
	hubCtx, cancel := context.WithCancel(context.Background())
	s.hubCancel = cancel
	go hub.Run(hubCtx)
	deps.Hub = hub

	router := BuildRouter(deps)

	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: router,
	}

	s.logger.Info("server listening", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the hub.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hubCancel != nil {
		s.hubCancel()
	}
	if s.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
