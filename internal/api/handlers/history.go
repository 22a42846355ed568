package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cardsage/scryfall-search/internal/database"
)

type HistoryHandler struct {
	store *database.HistoryStore
}

func NewHistoryHandler(store *database.HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// Recent returns the latest recorded searches.
func (h *HistoryHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, err := h.store.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": records, "total": len(records)})
}
