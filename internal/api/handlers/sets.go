package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardsage/scryfall-search/internal/scryfall"
)

type SetHandler struct {
	sets *scryfall.SetService
}

func NewSetHandler(sets *scryfall.SetService) *SetHandler {
	return &SetHandler{sets: sets}
}

// ListSets returns every Magic set known to Scryfall.
func (h *SetHandler) ListSets(c *gin.Context) {
	sets, err := h.sets.Sets(c.Request.Context())
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sets": sets, "total": len(sets)})
}

// LatestSet returns the newest released expansion code, the value the
// latest-set query placeholder resolves to.
func (h *SetHandler) LatestSet(c *gin.Context) {
	code, err := h.sets.LatestExpansionCode(c.Request.Context())
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}
