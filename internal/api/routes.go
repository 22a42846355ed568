package api

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardsage/scryfall-search/internal/api/handlers"
	"github.com/cardsage/scryfall-search/internal/database"
	"github.com/cardsage/scryfall-search/internal/metrics"
	"github.com/cardsage/scryfall-search/internal/scryfall"
	"github.com/cardsage/scryfall-search/internal/search"
)

func SetupRouter(translator *search.Translator, client *scryfall.Client, setService *scryfall.SetService, history *database.HistoryStore, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	// CORS configuration - allow origins from config or use defaults
	config := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		config.AllowOrigins = allowedOrigins
	} else {
		config.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = false
	router.Use(cors.New(config))
	router.Use(observeRequests())

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(translator, client, history)
	cardHandler := handlers.NewCardHandler(client)
	setHandler := handlers.NewSetHandler(setService)
	historyHandler := handlers.NewHistoryHandler(history)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/search", searchHandler.Search)
		api.POST("/query", searchHandler.Translate)
		api.GET("/languages", searchHandler.Languages)

		cards := api.Group("/cards")
		{
			cards.GET("/autocomplete", cardHandler.Autocomplete)
			cards.GET("/named", cardHandler.GetCardByName)
			cards.GET("/random", cardHandler.RandomCard)
			cards.GET("/:id", cardHandler.GetCard)
		}

		sets := api.Group("/sets")
		{
			sets.GET("", setHandler.ListSets)
			sets.GET("/latest", setHandler.LatestSet)
		}

		api.GET("/history", historyHandler.Recent)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "ok",
			"scryfall": client.BreakerState(),
		})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
