package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardsage/scryfall-search/internal/scryfall"
)

type CardHandler struct {
	client *scryfall.Client
}

func NewCardHandler(client *scryfall.Client) *CardHandler {
	return &CardHandler{client: client}
}

// Autocomplete suggests card names for a partial query.
func (h *CardHandler) Autocomplete(c *gin.Context) {
	partial := c.Query("q")
	if partial == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	names, err := h.client.Autocomplete(c.Request.Context(), partial)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": names})
}

// GetCard fetches one card by Scryfall ID.
func (h *CardHandler) GetCard(c *gin.Context) {
	card, err := h.client.GetCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// GetCardByName resolves a card by (possibly misspelled) name.
func (h *CardHandler) GetCardByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'name' is required"})
		return
	}
	exact := c.Query("exact") == "true"

	card, err := h.client.GetCardByName(c.Request.Context(), name, exact, c.Query("set"))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// RandomCard returns a random card, optionally filtered by a Scryfall
// query.
func (h *CardHandler) RandomCard(c *gin.Context) {
	card, err := h.client.RandomCard(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no card matched the query"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func contextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
