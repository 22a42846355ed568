package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cardsage/scryfall-search/internal/metrics"
	"github.com/cardsage/scryfall-search/internal/models"
)

// HistoryStore persists executed searches.
type HistoryStore struct {
	db *gorm.DB
}

func NewHistoryStore(db *gorm.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Record writes one search to the history log.
func (s *HistoryStore) Record(ctx context.Context, built *models.BuiltQuery, totalCards int, duration time.Duration) error {
	record := models.SearchRecord{
		ID:            uuid.New().String(),
		OriginalQuery: built.OriginalQuery,
		ScryfallQuery: built.ScryfallQuery,
		Language:      built.Metadata.Language,
		Intent:        built.Metadata.Intent,
		Complexity:    built.Metadata.Complexity,
		TotalCards:    totalCards,
		DurationMs:    duration.Milliseconds(),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return err
	}
	metrics.SearchesRecorded.Inc()
	return nil
}

// Recent returns the newest history entries, most recent first.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var records []models.SearchRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// SetCatalogStore persists the Scryfall set list for offline
// latest-set resolution.
type SetCatalogStore struct {
	db *gorm.DB
}

func NewSetCatalogStore(db *gorm.DB) *SetCatalogStore {
	return &SetCatalogStore{db: db}
}

// SaveSets upserts the full set list.
func (s *SetCatalogStore) SaveSets(ctx context.Context, sets []models.Set) error {
	if len(sets) == 0 {
		return nil
	}
	rows := make([]models.CachedSet, len(sets))
	now := time.Now().UTC()
	for i, set := range sets {
		rows[i] = models.CachedSet{
			Code:       set.Code,
			Name:       set.Name,
			SetType:    set.SetType,
			ReleasedAt: set.ReleasedAt,
			CardCount:  set.CardCount,
			Digital:    set.Digital,
			UpdatedAt:  now,
		}
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(rows, 200).Error
}

// LatestExpansion returns the newest released, non-digital expansion
// code from the persisted catalog.
func (s *SetCatalogStore) LatestExpansion(ctx context.Context) (string, error) {
	today := time.Now().UTC().Format("2006-01-02")
	var row models.CachedSet
	err := s.db.WithContext(ctx).
		Where("set_type = ? AND digital = ? AND released_at <= ?", "expansion", false, today).
		Order("released_at DESC").
		First(&row).Error
	if err != nil {
		return "", err
	}
	return row.Code, nil
}

// Sets returns the persisted catalog, newest first.
func (s *SetCatalogStore) Sets(ctx context.Context) ([]models.CachedSet, error) {
	var rows []models.CachedSet
	err := s.db.WithContext(ctx).Order("released_at DESC").Find(&rows).Error
	return rows, err
}
