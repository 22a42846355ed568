package search

import (
	"fmt"
	"strings"

	"github.com/cardsage/scryfall-search/internal/i18n"
	"github.com/cardsage/scryfall-search/internal/models"
)

// Presentation is the rendered view of one search: a localized
// summary, per-card text blocks and optional explanation for complex
// queries.
type Presentation struct {
	Summary     string               `json:"summary"`
	Cards       []CardView           `json:"cards"`
	Suggestions []string             `json:"suggestions,omitempty"`
	Explanation string               `json:"explanation,omitempty"`
	TotalCards  int                  `json:"total_cards"`
	HasMore     bool                 `json:"has_more"`
	Query       string               `json:"query"`
	Metadata    models.QueryMetadata `json:"metadata"`
}

// CardView is one card rendered for display plus the fields a client
// needs without re-parsing the text block.
type CardView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ManaCost    string `json:"mana_cost,omitempty"`
	TypeLine    string `json:"type_line,omitempty"`
	Text        string `json:"text"`
	ImageURL    string `json:"image_url,omitempty"`
	ScryfallURI string `json:"scryfall_uri,omitempty"`
}

// Presenter renders search results in the mapping's language.
type Presenter struct {
	mapping *i18n.LanguageMapping
}

func NewPresenter(mapping *i18n.LanguageMapping) *Presenter {
	return &Presenter{mapping: mapping}
}

// Present formats a search result for one built query.
func (p *Presenter) Present(result *models.SearchResult, built *models.BuiltQuery, opts models.SearchOptions) *Presentation {
	max := opts.MaxResults
	if max <= 0 || max > len(result.Data) {
		max = len(result.Data)
	}
	shown := result.Data[:max]

	pres := &Presentation{
		Summary:     p.summary(result, built, len(shown)),
		Cards:       make([]CardView, 0, len(shown)),
		Suggestions: built.Suggestions,
		TotalCards:  result.TotalCards,
		HasMore:     result.HasMore,
		Query:       built.ScryfallQuery,
		Metadata:    built.Metadata,
	}

	for i, card := range shown {
		pres.Cards = append(pres.Cards, p.formatCard(&card, i+1, opts))
	}

	if built.Metadata.Complexity == models.ComplexityComplex {
		pres.Explanation = p.explain(built)
	}

	return pres
}

func (p *Presenter) summary(result *models.SearchResult, built *models.BuiltQuery, shown int) string {
	labels := p.mapping.Labels
	var sb strings.Builder

	fmt.Fprintf(&sb, "🔍 **%s**\n\n", labels.SearchResults)
	fmt.Fprintf(&sb, "**%s**: %s\n", labels.OriginalQuery, built.OriginalQuery)
	fmt.Fprintf(&sb, "**%s**: `%s`\n", labels.ScryfallQuery, built.ScryfallQuery)
	fmt.Fprintf(&sb, "**"+labels.CardsFound+"**", result.TotalCards)

	if result.TotalCards > shown {
		sb.WriteString(" " + fmt.Sprintf(labels.ShowingFirst, shown))
	}
	if result.HasMore {
		sb.WriteString("\n**" + labels.MoreResults + "**")
	}

	return sb.String()
}

func (p *Presenter) formatCard(card *models.Card, index int, opts models.SearchOptions) CardView {
	labels := p.mapping.Labels
	japanese := p.mapping.Code == "ja"

	name := card.Name
	if japanese && card.PrintedName != "" {
		name = card.PrintedName
	}
	typeLine := card.TypeLine
	if japanese && card.PrintedTypeLine != "" {
		typeLine = card.PrintedTypeLine
	}
	oracle := card.OracleText
	if japanese && card.PrintedText != "" {
		oracle = card.PrintedText
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %d. %s", index, name)
	if card.ManaCost != "" {
		sb.WriteString(" " + card.ManaCost)
	}
	sb.WriteString("\n\n")

	if typeLine != "" {
		fmt.Fprintf(&sb, "**%s**: %s\n", labels.Type, typeLine)
	}
	if len(card.Keywords) > 0 {
		fmt.Fprintf(&sb, "**%s**: %s\n", labels.Keywords, strings.Join(card.Keywords, ", "))
	}
	if card.Power != "" && card.Toughness != "" {
		fmt.Fprintf(&sb, "**%s**: %s/%s\n", labels.PowerToughness, card.Power, card.Toughness)
	}
	if oracle != "" {
		fmt.Fprintf(&sb, "\n**%s**:\n%s\n", labels.OracleText, oracle)
	}
	if card.SetName != "" {
		fmt.Fprintf(&sb, "\n**%s**: %s", labels.Set, card.SetName)
		if card.Rarity != "" {
			rarity, ok := labels.RarityNames[card.Rarity]
			if !ok {
				rarity = titleCase(card.Rarity)
			}
			fmt.Fprintf(&sb, " (%s)", rarity)
		}
	}

	if opts.FormatFilter != "" {
		if status, ok := card.Legalities[opts.FormatFilter]; ok && status != "" {
			display, found := labels.Legalities[status]
			if !found {
				display = status
			}
			fmt.Fprintf(&sb, "\n**%s**: %s", titleCase(opts.FormatFilter), display)
		}
	}

	if price := p.formatPrices(card.Prices); price != "" {
		sb.WriteString("\n" + price)
	}
	if card.Artist != "" {
		fmt.Fprintf(&sb, "\n\n*%s %s*", labels.IllustratedBy, card.Artist)
	}
	if card.ScryfallURI != "" {
		fmt.Fprintf(&sb, "\n\n[%s](%s)", labels.ViewOnScryfall, card.ScryfallURI)
	}

	view := CardView{
		ID:          card.ID,
		Name:        name,
		ManaCost:    card.ManaCost,
		TypeLine:    typeLine,
		Text:        sb.String(),
		ScryfallURI: card.ScryfallURI,
	}
	if card.ImageURIs != nil {
		view.ImageURL = card.ImageURIs.Normal
	}
	return view
}

func (p *Presenter) formatPrices(prices models.Prices) string {
	var parts []string
	if prices.USD != "" {
		parts = append(parts, "$"+prices.USD)
	}
	if prices.EUR != "" {
		parts = append(parts, "€"+prices.EUR)
	}
	if prices.Tix != "" {
		parts = append(parts, prices.Tix+" tix")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("**%s**: %s", p.mapping.Labels.Price, strings.Join(parts, " | "))
}

func (p *Presenter) explain(built *models.BuiltQuery) string {
	labels := p.mapping.Labels
	var sb strings.Builder

	fmt.Fprintf(&sb, "🔍 **%s**\n\n", labels.QueryAnalysis)
	fmt.Fprintf(&sb, "**%s**: %s\n", labels.Complexity, built.Metadata.Complexity)
	fmt.Fprintf(&sb, "**%s**: %s\n", labels.ExpectedResult, built.Metadata.EstimatedResults)

	entities := map[string][]string{
		"colors":     built.Metadata.Entities.Colors,
		"types":      built.Metadata.Entities.Types,
		"numbers":    built.Metadata.Entities.Numbers,
		"card_names": built.Metadata.Entities.CardNames,
		"sets":       built.Metadata.Entities.Sets,
		"formats":    built.Metadata.Entities.Formats,
	}
	hasEntities := false
	for _, v := range entities {
		if len(v) > 0 {
			hasEntities = true
			break
		}
	}
	if hasEntities {
		fmt.Fprintf(&sb, "\n**%s**:\n", labels.Extracted)
		for _, key := range []string{"colors", "types", "numbers", "card_names", "sets", "formats"} {
			if vals := entities[key]; len(vals) > 0 {
				name, ok := labels.EntityNames[key]
				if !ok {
					name = key
				}
				fmt.Fprintf(&sb, "• **%s**: %s\n", name, strings.Join(vals, ", "))
			}
		}
	}

	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
