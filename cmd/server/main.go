package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardsage/scryfall-search/internal/api"
	"github.com/cardsage/scryfall-search/internal/cache"
	"github.com/cardsage/scryfall-search/internal/config"
	"github.com/cardsage/scryfall-search/internal/database"
	"github.com/cardsage/scryfall-search/internal/i18n"
	"github.com/cardsage/scryfall-search/internal/scryfall"
	"github.com/cardsage/scryfall-search/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	if err := database.Initialize(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	history := database.NewHistoryStore(database.GetDB())
	catalog := database.NewSetCatalogStore(database.GetDB())

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize cache
	var store cache.Cache = cache.Noop{}
	if cfg.CacheEnabled {
		store, err = cache.New(ctx, cache.Options{
			Backend:    cfg.CacheBackend,
			MaxSize:    cfg.CacheMaxSize,
			RedisURL:   cfg.RedisURL,
			DefaultTTL: cfg.TTLDefault,
		})
		if err != nil {
			log.Fatalf("Failed to initialize cache: %v", err)
		}
	}
	defer store.Close()

	// Initialize Scryfall client and set service
	client := scryfall.NewClient(scryfall.Config{
		BaseURL:          cfg.ScryfallBaseURL,
		UserAgent:        cfg.ScryfallUA,
		Timeout:          cfg.RequestTimeout,
		MaxRetries:       cfg.MaxRetries,
		RateInterval:     cfg.RateInterval,
		FailureThreshold: cfg.FailureThreshold,
		RecoveryTimeout:  cfg.RecoveryTimeout,
	}, store, cache.TTLConfig{
		Search:  cfg.TTLSearch,
		Card:    cfg.TTLCard,
		Price:   cfg.TTLPrice,
		Set:     cfg.TTLSet,
		Default: cfg.TTLDefault,
	})
	setService := scryfall.NewSetService(client, catalog)

	// Initialize translation pipelines
	registry := i18n.NewRegistry(cfg.DefaultLocale, cfg.FallbackLocale)
	log.Printf("Loaded %s", registry)
	translator := search.NewTranslator(registry, setService)

	// Refresh the persisted set catalog in the background with panic
	// recovery, so latest-set resolution works across API outages.
	go func() {
		for {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("PANIC in set catalog refresh: %v", r)
					}
				}()
				if err := setService.RefreshCatalog(ctx); err != nil {
					log.Printf("Set catalog refresh failed: %v", err)
				}
			}()

			select {
			case <-ctx.Done():
				return
			case <-time.After(cfg.SetRefreshInterval):
			}
		}
	}()

	// Setup router
	router := api.SetupRouter(translator, client, setService, history, cfg.Origins())

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel the context to stop the background refresh
	cancel()

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
