package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cardsage/scryfall-search/internal/i18n"
	"github.com/cardsage/scryfall-search/internal/models"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	numberRe      = regexp.MustCompile(`\d+`)
	quotedNameRe  = regexp.MustCompile(`"([^"]+)"`)
	capitalizedRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	badOperatorRe = regexp.MustCompile(`[<>=!]{3,}`)
	emptyTermRe   = regexp.MustCompile(`:\s*($|\s)`)
)

// Parser extracts structure from natural language queries: intent,
// entities and a normalized text form.
type Parser struct {
	mapping *i18n.LanguageMapping
}

func NewParser(mapping *i18n.LanguageMapping) *Parser {
	return &Parser{mapping: mapping}
}

// Parse analyzes a natural language query.
func (p *Parser) Parse(text string) *models.ParsedQuery {
	return &models.ParsedQuery{
		OriginalText:   text,
		NormalizedText: p.normalize(text),
		Intent:         p.detectIntent(text),
		Entities:       p.extractEntities(text),
		Language:       p.mapping.Code,
	}
}

func (p *Parser) normalize(text string) string {
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")

	// Smart quotes to ASCII.
	r := strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
	return r.Replace(text)
}

func (p *Parser) detectIntent(text string) models.Intent {
	haystack := text
	if p.mapping.LatinScript {
		haystack = strings.ToLower(text)
	}
	contains := func(terms []string) bool {
		for _, t := range terms {
			if strings.Contains(haystack, t) {
				return true
			}
		}
		return false
	}
	switch {
	case contains(p.mapping.FindTerms):
		return models.IntentCardSearch
	case contains(p.mapping.PriceTerms):
		return models.IntentPriceInquiry
	case contains(p.mapping.RulesTerms):
		return models.IntentRulesInquiry
	case contains(p.mapping.DeckTerms):
		return models.IntentDeckBuilding
	}
	return models.IntentGeneralSearch
}

func (p *Parser) extractEntities(text string) models.EntityBag {
	entities := models.EntityBag{
		Colors:    []string{},
		Types:     []string{},
		Numbers:   []string{},
		CardNames: []string{},
		Sets:      []string{},
		Formats:   []string{},
	}

	entities.Numbers = append(entities.Numbers, numberRe.FindAllString(text, -1)...)

	haystack := text
	if p.mapping.LatinScript {
		haystack = strings.ToLower(text)
	}
	for _, word := range p.mapping.ColorWords() {
		if strings.Contains(haystack, word) {
			entities.Colors = append(entities.Colors, p.mapping.ColorSurface[word])
		}
	}
	for _, word := range p.mapping.TypeWords() {
		if strings.Contains(haystack, word) {
			entities.Types = append(entities.Types, p.mapping.TypeSurface[word])
		}
	}
	entities.Colors = dedupe(entities.Colors)
	entities.Types = dedupe(entities.Types)

	for _, m := range quotedNameRe.FindAllStringSubmatch(text, -1) {
		entities.CardNames = append(entities.CardNames, m[1])
	}

	return entities
}

// SuggestImprovements returns query refinement hints in the mapping's
// language.
func (p *Parser) SuggestImprovements(parsed *models.ParsedQuery) []string {
	var suggestions []string
	text := parsed.OriginalText

	if len(parsed.Entities.Colors) == 0 && len(parsed.Entities.Types) == 0 {
		suggestions = append(suggestions, p.mapping.Messages.SuggestNarrow)
	}

	// Capitalized runs are likely card names; only meaningful for
	// Latin-script languages.
	if p.mapping.LatinScript {
		for _, name := range capitalizedRe.FindAllString(text, -1) {
			if !strings.Contains(text, `"`+name+`"`) {
				suggestions = append(suggestions, fmt.Sprintf(p.mapping.Messages.SuggestQuote, name))
			}
		}
	}

	haystack := strings.ToLower(text)
	for _, term := range p.mapping.CompetitiveTerms {
		if strings.Contains(haystack, term) {
			suggestions = append(suggestions, p.mapping.Messages.SuggestFormat)
			break
		}
	}

	return suggestions
}

// ValidateSyntax checks a built Scryfall query for structural errors.
func (p *Parser) ValidateSyntax(query string) (bool, []string) {
	var errs []string

	if strings.Count(query, `"`)%2 != 0 {
		errs = append(errs, p.mapping.Messages.ErrUnmatchedQuotes)
	}
	if bad := badOperatorRe.FindAllString(query, -1); len(bad) > 0 {
		errs = append(errs, fmt.Sprintf(p.mapping.Messages.ErrInvalidOperator, strings.Join(bad, ", ")))
	}
	if emptyTermRe.MatchString(query) {
		errs = append(errs, p.mapping.Messages.ErrEmptyTerm)
	}

	return len(errs) == 0, errs
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
