package models

// Intent classifies what the user is trying to do with a natural
// language query.
type Intent string

const (
	IntentCardSearch    Intent = "card_search"
	IntentPriceInquiry  Intent = "price_inquiry"
	IntentRulesInquiry  Intent = "rules_inquiry"
	IntentDeckBuilding  Intent = "deck_building"
	IntentGeneralSearch Intent = "general_search"
)

// Complexity is a heuristic tier computed over the final built query.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// Volume estimates how many results a built query is likely to return.
type Volume string

const (
	VolumeFew      Volume = "few"
	VolumeModerate Volume = "moderate"
	VolumeMany     Volume = "many"
)

// EntityBag holds coarse entities extracted from a query. Lists keep
// insertion order and may contain duplicates; extraction is a hint, not
// a tokenizer.
type EntityBag struct {
	Colors    []string `json:"colors"`
	Types     []string `json:"types"`
	Numbers   []string `json:"numbers"`
	CardNames []string `json:"card_names"`
	Sets      []string `json:"sets"`
	Formats   []string `json:"formats"`
}

// ParsedQuery is the parser's output: normalized text plus extracted
// intent and entities.
type ParsedQuery struct {
	OriginalText   string    `json:"original_text"`
	NormalizedText string    `json:"normalized_text"`
	Intent         Intent    `json:"intent"`
	Entities       EntityBag `json:"entities"`
	Language       string    `json:"language"`
}

// QueryMetadata describes a built query for presentation purposes.
type QueryMetadata struct {
	Intent           Intent     `json:"intent"`
	Entities         EntityBag  `json:"entities"`
	Language         string     `json:"language"`
	Complexity       Complexity `json:"complexity"`
	EstimatedResults Volume     `json:"estimated_results"`
}

// BuiltQuery is the final output of the translation pipeline.
type BuiltQuery struct {
	ScryfallQuery string        `json:"scryfall_query"`
	OriginalQuery string        `json:"original_query"`
	Suggestions   []string      `json:"suggestions"`
	Metadata      QueryMetadata `json:"metadata"`
}

// SearchOptions carries auxiliary filters applied at query execution
// time, outside the translated query string itself.
type SearchOptions struct {
	MaxResults   int    `json:"max_results"`
	FormatFilter string `json:"format_filter"`
	Language     string `json:"language"`
	Page         int    `json:"page"`
}
