package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"art-catalog-service/internal/adapters/primary/http/handlers"
	"art-catalog-service/internal/adapters/primary/http/middleware"
	"art-catalog-service/internal/adapters/secondary/prometheus"
	"art-catalog-service/internal/catalogsource"
	"art-catalog-service/internal/config"
	ports "art-catalog-service/internal/core/ports/output"
	"art-catalog-service/internal/core/services"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Secondary adapters: catalog source
	src, err := catalogsource.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("open catalog source: %v", err)
	}
	defer src.Close()

	// Metrics (optional)
	var queryMetrics ports.QueryMetrics = ports.NopQueryMetrics{}
	var recorder *prometheus.Recorder
	registry := prom.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = prometheus.NewRecorder(registry)
		queryMetrics = recorder
		log.Info("metrics enabled")
	} else {
		log.Info("metrics disabled")
	}

	// Core: load the catalog once, then serve read-only queries
	catalogSvc := services.NewCatalogService(src.Name, src.Artists, src.Paintings, queryMetrics)
	engine, err := catalogSvc.Engine(context.Background())
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	// Primary adapter: HTTP
	h := handlers.New(engine)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	if recorder != nil {
		router.Use(middleware.Metrics(recorder))
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1/art-catalog")
	h.RegisterRoutes(api)

	// The catalog never changes after load.
	stats := engine.Stats()
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "source": src.Name, "artists": stats.Artists, "paintings": stats.Paintings})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
