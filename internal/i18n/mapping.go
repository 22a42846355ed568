package i18n

import (
	"sort"
	"strings"
)

// LanguageMapping holds the full search vocabulary for one language:
// canonical term tables, keyword and phrase substitutions, intent
// trigger words, and the user-facing message strings. All language
// specific behavior lives in the mapping so the parser and builder
// stay language agnostic.
type LanguageMapping struct {
	Code        string
	Name        string
	Locale      string
	LatinScript bool

	// Canonical term -> Scryfall value tables.
	Colors    map[string]string
	Types     map[string]string
	Operators map[string]string
	Formats   map[string]string
	Rarities  map[string]string
	SetTypes  map[string]string

	// SearchKeywords maps surface words to full query fragments
	// ("パワー" -> "p", "飛行" -> "keyword:flying").
	SearchKeywords map[string]string

	// Phrases are idiomatic multi-word expressions rewritten after the
	// structural passes, longest first.
	Phrases map[string]string

	// Surface word -> canonical English term, used for entity
	// extraction and compound detection.
	ColorSurface map[string]string
	TypeSurface  map[string]string

	// Intent trigger vocabularies, checked in priority order.
	FindTerms  []string
	PriceTerms []string
	RulesTerms []string
	DeckTerms  []string

	// CompetitiveTerms trigger the format-filter suggestion.
	CompetitiveTerms []string

	// CommonMistakes maps frequent misspellings to the canonical term.
	CommonMistakes map[string]string

	Messages Messages
	Labels   Labels
}

// Labels holds the result-presentation strings for one language.
type Labels struct {
	SearchResults  string
	OriginalQuery  string
	ScryfallQuery  string
	CardsFound     string // format string, count argument
	ShowingFirst   string // format string, count argument
	MoreResults    string
	Type           string
	Keywords       string
	PowerToughness string
	OracleText     string
	Set            string
	Price          string
	IllustratedBy  string
	ViewOnScryfall string
	SearchHints    string
	QueryAnalysis  string
	Complexity     string
	ExpectedResult string
	Extracted      string

	EntityNames map[string]string
	RarityNames map[string]string
	Legalities  map[string]string
}

// Messages holds the user-facing strings for one language.
type Messages struct {
	SuggestNarrow  string
	SuggestFormat  string
	SuggestQuote   string // format string, card name argument
	SuggestSpelled string // format string, wrong then right

	ErrUnmatchedQuotes string
	ErrInvalidOperator string // format string, operator list argument
	ErrEmptyTerm       string

	NoResults      string
	TooManyResults string
	SearchError    string
	InvalidQuery   string
}

// Substitution is one surface-term to query-fragment rewrite.
type Substitution struct {
	Term        string
	Replacement string
}

// SubstitutionPairs returns the keyword substitutions in their
// deterministic application order: longest surface form first, ties
// broken lexicographically.
func (m *LanguageMapping) SubstitutionPairs() []Substitution {
	subs := make([]Substitution, 0, len(m.SearchKeywords))
	for term, repl := range m.SearchKeywords {
		subs = append(subs, Substitution{Term: term, Replacement: repl})
	}
	sort.Slice(subs, func(i, j int) bool {
		if len(subs[i].Term) != len(subs[j].Term) {
			return len(subs[i].Term) > len(subs[j].Term)
		}
		return subs[i].Term < subs[j].Term
	})
	return subs
}

// PhrasePairs returns the phrase substitutions, longest first.
func (m *LanguageMapping) PhrasePairs() []Substitution {
	subs := make([]Substitution, 0, len(m.Phrases))
	for term, repl := range m.Phrases {
		subs = append(subs, Substitution{Term: term, Replacement: repl})
	}
	sort.Slice(subs, func(i, j int) bool {
		if len(subs[i].Term) != len(subs[j].Term) {
			return len(subs[i].Term) > len(subs[j].Term)
		}
		return subs[i].Term < subs[j].Term
	})
	return subs
}

// StopWords returns every surface term that can terminate an ability
// effect span: color, type and keyword-ability vocabulary.
func (m *LanguageMapping) StopWords() []string {
	seen := make(map[string]bool)
	var words []string
	add := func(w string) {
		if w != "" && !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	for w := range m.ColorSurface {
		add(w)
	}
	for w := range m.TypeSurface {
		add(w)
	}
	for w, repl := range m.SearchKeywords {
		if strings.HasPrefix(repl, "c:") || strings.HasPrefix(repl, "t:") ||
			strings.HasPrefix(repl, "keyword:") {
			add(w)
		}
	}
	sortLongestFirst(words)
	return words
}

// ColorWords returns the surface color words, longest first.
func (m *LanguageMapping) ColorWords() []string {
	return sortedKeys(m.ColorSurface)
}

// TypeWords returns the surface type words, longest first.
func (m *LanguageMapping) TypeWords() []string {
	return sortedKeys(m.TypeSurface)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortLongestFirst(keys)
	return keys
}

func sortLongestFirst(words []string) {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
}
