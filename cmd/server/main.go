package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pratikdevelop/amazon-sales-report-analysis-dashboard/internal/api"
	"github.com/pratikdevelop/amazon-sales-report-analysis-dashboard/internal/config"
	"github.com/pratikdevelop/amazon-sales-report-analysis-dashboard/internal/engine"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// The store loads lazily, so the API is live immediately; the
	// warm-up below just moves the first (slow) read off the first
	// request. A load failure is reported per request as 503 until
	// the file shows up.
	store := engine.NewStore(cfg.DataFile)
	h := api.NewHandler(store)
	h.RegisterRoutes(e)

	go func() {
		t0 := time.Now()
		if _, err := store.Get(); err != nil {
			log.Printf("WARM-UP: load failed: %v", err)
			return
		}
		log.Printf("WARM-UP: report loaded in %v", time.Since(t0))
	}()

	go func() {
		log.Printf("dashboard API listening on :%s (data: %s)", cfg.Port, cfg.DataFile)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = e.Shutdown(shutdownCtx)
}
