package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whattohack-api/internal/ai"
	"whattohack-api/internal/config"
	"whattohack-api/internal/handlers"
	"whattohack-api/internal/logger"
	"whattohack-api/internal/planner"
	"whattohack-api/internal/reports"
	"whattohack-api/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Initialize Configuration
	cfg := config.Load()

	// 2. Initialize Structured Logger
	logger.Setup(cfg.Env, cfg.LogLevel)
	slog.Info("Starting WhatToHack API Server", "env", cfg.Env, "port", cfg.Port, "ai_mode", cfg.AIMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Initialize Report Catalog
	store, err := reports.Open(ctx, cfg)
	if err != nil {
		slog.Error("Critical error: unable to initialize report catalog", "error", err)
		os.Exit(1)
	}

	// 4. Initialize AI Backend
	gen, closeAI, err := ai.New(ctx, cfg)
	if err != nil {
		slog.Error("Critical error: unable to initialize AI backend", "error", err)
		os.Exit(1)
	}
	defer closeAI()

	// 5. Initialize Sessions and HTTP Handlers
	svc := planner.New(store, gen, planner.WithInstantDelay(cfg.InstantDelay))
	sessions := session.NewManager(svc)
	go sessions.Janitor(ctx, cfg.SessionTTL, time.Minute)

	h := handlers.New(store, cfg)
	sh := handlers.NewSessionHandler(sessions)

	// 6. Initialize Gin Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/status", h.GetStatus)
		api.GET("/reports", h.GetReports)
		sh.Register(api)
	}

	// 7. Start the Server
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		slog.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Critical server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
