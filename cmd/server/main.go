package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MEMAtest/railway/internal/api"
	"github.com/MEMAtest/railway/internal/board"
	"github.com/MEMAtest/railway/internal/config"
	"github.com/MEMAtest/railway/internal/feed"
	"github.com/MEMAtest/railway/internal/ingest"
	"github.com/MEMAtest/railway/internal/journey"
	"github.com/MEMAtest/railway/internal/stations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	dir := stations.Default()
	store := board.NewStore(dir, time.Now)
	pipeline := ingest.New(dir, store, time.Now)
	planner := journey.NewPlanner(dir, store, time.Now)

	consumer := feed.NewConsumer(cfg, pipeline.OnEvent)
	if err := consumer.Start(); err != nil {
		log.Fatalf("feed connect failed: %v", err)
	}
	defer consumer.Close()

	server := api.NewServer(dir, store, pipeline, planner, consumer, time.Now)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("API server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	log.Printf("monitoring stations: %v", dir.Codes())

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
