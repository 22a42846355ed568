package models

import (
	"time"
)

// SearchRecord is one persisted translation, kept for the history API.
type SearchRecord struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	OriginalQuery string     `json:"original_query" gorm:"not null;index"`
	ScryfallQuery string     `json:"scryfall_query" gorm:"not null"`
	Language      string     `json:"language" gorm:"index"`
	Intent        Intent     `json:"intent"`
	Complexity    Complexity `json:"complexity"`
	TotalCards    int        `json:"total_cards"`
	DurationMs    int64      `json:"duration_ms"`
	CreatedAt     time.Time  `json:"created_at" gorm:"index"`
}

// CachedSet is the locally persisted set catalog row, refreshed from
// the Scryfall /sets endpoint.
type CachedSet struct {
	Code       string    `json:"code" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	SetType    string    `json:"set_type" gorm:"index"`
	ReleasedAt string    `json:"released_at" gorm:"index"`
	CardCount  int       `json:"card_count"`
	Digital    bool      `json:"digital"`
	UpdatedAt  time.Time `json:"updated_at"`
}
