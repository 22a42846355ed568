package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardsage/scryfall-search/internal/database"
	"github.com/cardsage/scryfall-search/internal/metrics"
	"github.com/cardsage/scryfall-search/internal/models"
	"github.com/cardsage/scryfall-search/internal/scryfall"
	"github.com/cardsage/scryfall-search/internal/search"
)

type SearchHandler struct {
	translator *search.Translator
	client     *scryfall.Client
	history    *database.HistoryStore
}

func NewSearchHandler(translator *search.Translator, client *scryfall.Client, history *database.HistoryStore) *SearchHandler {
	return &SearchHandler{
		translator: translator,
		client:     client,
		history:    history,
	}
}

// Search runs the full pipeline: translate the natural language query,
// execute it against Scryfall and render the localized presentation.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	opts := models.SearchOptions{
		Language:     c.Query("lang"),
		FormatFilter: c.Query("format"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		opts.Page = page
	}
	if max, err := strconv.Atoi(c.Query("max_results")); err == nil && max > 0 {
		opts.MaxResults = max
	}

	start := time.Now()
	built := h.translator.Translate(c.Request.Context(), query, opts.Language)
	metrics.TranslationDuration.Observe(time.Since(start).Seconds())
	metrics.TranslationsTotal.WithLabelValues(built.Metadata.Language, string(built.Metadata.Intent)).Inc()

	result, err := h.client.SearchCards(c.Request.Context(), built.ScryfallQuery, opts)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	presentation := h.translator.Presenter(built.Metadata.Language).Present(result, built, opts)

	h.recordAsync(built, result.TotalCards, time.Since(start))

	c.JSON(http.StatusOK, presentation)
}

type translateRequest struct {
	Query    string `json:"query" binding:"required"`
	Language string `json:"language"`
}

// Translate converts a natural language query to Scryfall syntax
// without executing it.
func (h *SearchHandler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must include 'query'"})
		return
	}

	start := time.Now()
	built := h.translator.Translate(c.Request.Context(), req.Query, req.Language)
	metrics.TranslationDuration.Observe(time.Since(start).Seconds())
	metrics.TranslationsTotal.WithLabelValues(built.Metadata.Language, string(built.Metadata.Intent)).Inc()

	valid, validationErrs := h.translator.Validate(built.ScryfallQuery, built.Metadata.Language)

	c.JSON(http.StatusOK, gin.H{
		"result": built,
		"valid":  valid,
		"errors": validationErrs,
	})
}

// Languages lists the supported locales.
func (h *SearchHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.translator.Languages()})
}

func (h *SearchHandler) recordAsync(built *models.BuiltQuery, totalCards int, duration time.Duration) {
	if h.history == nil {
		return
	}
	go func() {
		ctx, cancel := contextWithTimeout()
		defer cancel()
		if err := h.history.Record(ctx, built, totalCards, duration); err != nil {
			log.Printf("Warning: failed to record search history: %v", err)
		}
	}()
}

func writeUpstreamError(c *gin.Context, err error) {
	if errors.Is(err, scryfall.ErrCircuitOpen) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "card search is temporarily unavailable"})
		return
	}
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		if apiErr.Status == http.StatusBadRequest {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": apiErr.Details, "code": apiErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
