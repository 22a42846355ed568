package scryfall

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cardsage/scryfall-search/internal/metrics"
	"github.com/cardsage/scryfall-search/internal/models"
)

// FallbackSetCode is used when the latest expansion cannot be
// determined from the API or the local catalog.
const FallbackSetCode = "mkm"

const latestSetTTL = 24 * time.Hour

// CatalogStore persists the set catalog so latest-set resolution
// survives API outages and restarts.
type CatalogStore interface {
	SaveSets(ctx context.Context, sets []models.Set) error
	LatestExpansion(ctx context.Context) (string, error)
}

// SetService resolves the newest expansion set code with in-process
// caching, backed by the persisted catalog when the API is down.
type SetService struct {
	client  *Client
	catalog CatalogStore // optional

	mu        sync.Mutex
	code      string
	fetchedAt time.Time
	now       func() time.Time
}

func NewSetService(client *Client, catalog CatalogStore) *SetService {
	return &SetService{client: client, catalog: catalog, now: time.Now}
}

// LatestExpansionCode returns the code of the most recently released
// non-digital expansion set. The result is cached for 24 hours; on
// API failure a stale cached value, then the persisted catalog, then
// the hardcoded fallback are used in that order.
func (s *SetService) LatestExpansionCode(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.code != "" && s.now().Sub(s.fetchedAt) < latestSetTTL {
		code := s.code
		s.mu.Unlock()
		return code, nil
	}
	stale := s.code
	s.mu.Unlock()

	sets, err := s.client.Sets(ctx)
	if err == nil {
		if code := latestExpansion(sets, s.now()); code != "" {
			s.mu.Lock()
			s.code = code
			s.fetchedAt = s.now()
			s.mu.Unlock()
			return code, nil
		}
		log.Printf("No expansion set found in Scryfall set list, using fallback")
		return FallbackSetCode, nil
	}

	log.Printf("Failed to fetch set list: %v", err)
	if stale != "" {
		log.Printf("Using stale latest-set cache: %s", stale)
		return stale, nil
	}
	if s.catalog != nil {
		if code, dbErr := s.catalog.LatestExpansion(ctx); dbErr == nil && code != "" {
			log.Printf("Using persisted set catalog for latest set: %s", code)
			return code, nil
		}
	}
	return FallbackSetCode, nil
}

// RefreshCatalog fetches the full set list and persists it. Called
// periodically from the background worker.
func (s *SetService) RefreshCatalog(ctx context.Context) error {
	sets, err := s.client.Sets(ctx)
	if err != nil {
		return err
	}
	metrics.SetCatalogSize.Set(float64(len(sets)))
	if s.catalog == nil {
		return nil
	}
	return s.catalog.SaveSets(ctx, sets)
}

// Sets returns the full set list from the API.
func (s *SetService) Sets(ctx context.Context) ([]models.Set, error) {
	return s.client.Sets(ctx)
}

// latestExpansion picks the newest expansion already released as of
// now. Scryfall orders /sets newest first, but sort order is not
// relied on here.
func latestExpansion(sets []models.Set, now time.Time) string {
	today := now.UTC().Format("2006-01-02")
	best := ""
	bestDate := ""
	for _, set := range sets {
		if set.SetType != "expansion" || set.Digital {
			continue
		}
		if set.ReleasedAt == "" || set.ReleasedAt > today {
			continue
		}
		if set.ReleasedAt > bestDate {
			bestDate = set.ReleasedAt
			best = set.Code
		}
	}
	return best
}
