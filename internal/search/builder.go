package search

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/width"

	"github.com/cardsage/scryfall-search/internal/i18n"
	"github.com/cardsage/scryfall-search/internal/models"
)

// LatestSetPlaceholder marks a spot in the query to be filled with the
// newest expansion's set code.
const LatestSetPlaceholder = "__LATEST_SET__"

// LatestSetFallback is used when the newest set cannot be resolved.
const LatestSetFallback = "mkm"

// LatestSetResolver resolves the newest expansion set code. The
// Scryfall sets service implements this.
type LatestSetResolver interface {
	LatestExpansionCode(ctx context.Context) (string, error)
}

// keywordSub is one compiled keyword substitution. Latin-script terms
// carry a word-boundary regexp; other scripts substitute by substring
// with space padding so the token grammar survives.
type keywordSub struct {
	term    string
	repl    string
	pattern *regexp.Regexp
}

// Builder converts parsed natural language into Scryfall query syntax.
// Construction compiles the vocabulary; Build itself is pure and safe
// for concurrent use.
type Builder struct {
	mapping *i18n.LanguageMapping
	parser  *Parser
	matcher *AbilityMatcher
	latest  LatestSetResolver

	keywords   []keywordSub
	phrases    []i18n.Substitution
	compoundRe *regexp.Regexp
	numericRe  *regexp.Regexp

	operatorRe   *regexp.Regexp
	fieldRe      *regexp.Regexp
	quotedRe     *regexp.Regexp
	colonSpaceRe *regexp.Regexp
	opSpaceRe    *regexp.Regexp
	specificity  []*regexp.Regexp
}

// NewBuilder compiles a builder for one language. latest may be nil,
// in which case the latest-set placeholder resolves to the fallback
// code.
func NewBuilder(mapping *i18n.LanguageMapping, latest LatestSetResolver) *Builder {
	b := &Builder{
		mapping: mapping,
		parser:  NewParser(mapping),
		latest:  latest,

		operatorRe:   regexp.MustCompile(`[<>=!]+`),
		fieldRe:      regexp.MustCompile(`\w+:`),
		quotedRe:     regexp.MustCompile(`"[^"]+"`),
		colonSpaceRe: regexp.MustCompile(`\s*:\s*`),
		opSpaceRe:    regexp.MustCompile(`\s*([<>=!]+)\s*`),
		specificity: []*regexp.Regexp{
			regexp.MustCompile(`c:`),
			regexp.MustCompile(`t:`),
			regexp.MustCompile(`p[<>=!]`),
			regexp.MustCompile(`tou[<>=!]`),
			regexp.MustCompile(`mv[<>=!]`),
			regexp.MustCompile(`"[^"]+"`),
		},
	}

	b.keywords = compileKeywords(mapping)
	b.phrases = mapping.PhrasePairs()
	b.compoundRe = compileCompound(mapping)
	b.numericRe = regexp.MustCompile(`\b(tou|cmc|mv|loy|usd|p|m)(?:が|\s)*(\d+)\s*(>=|<=|!=|=|>|<)?`)

	if mapping.Code == "ja" {
		b.matcher = NewAbilityMatcher(mapping, JapanesePatterns())
	}

	return b
}

func compileKeywords(mapping *i18n.LanguageMapping) []keywordSub {
	pairs := mapping.SubstitutionPairs()
	subs := make([]keywordSub, 0, len(pairs))
	for _, p := range pairs {
		if p.Replacement == "" {
			continue
		}
		sub := keywordSub{term: p.Term, repl: p.Replacement}
		if mapping.LatinScript {
			sub.pattern = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p.Term) + `\b`)
		}
		subs = append(subs, sub)
	}
	return subs
}

// compileCompound builds the color+type fusion pattern. For Latin
// scripts it matches the raw adjective+noun phrase; for others it
// fuses the already-substituted c:/t: fragments, absorbing the
// adjectival particle between them.
func compileCompound(mapping *i18n.LanguageMapping) *regexp.Regexp {
	if !mapping.LatinScript {
		return regexp.MustCompile(`c:([wubrgc])\s*(?:い|の)?\s*t:([a-z]+)`)
	}
	colors := strings.Join(mapping.ColorWords(), "|")
	types := strings.Join(mapping.TypeWords(), "|")
	return regexp.MustCompile(`(?i)\b(` + colors + `)\s+(` + types + `)s?\b`)
}

// Build assembles a Scryfall query from a parsed query.
func (b *Builder) Build(ctx context.Context, parsed *models.ParsedQuery) *models.BuiltQuery {
	query, tokens := b.translate(parsed.NormalizedText)
	if len(tokens) > 0 {
		query = query + " " + strings.Join(tokens, " ")
	}
	query = b.clean(query)
	query = b.resolveLatestSet(ctx, query)

	return &models.BuiltQuery{
		ScryfallQuery: query,
		OriginalQuery: parsed.OriginalText,
		Suggestions:   b.suggestions(parsed),
		Metadata: models.QueryMetadata{
			Intent:           parsed.Intent,
			Entities:         parsed.Entities,
			Language:         parsed.Language,
			Complexity:       b.AssessComplexity(query),
			EstimatedResults: b.EstimateResults(query),
		},
	}
}

// BuildQuery is the convenience form for callers that only need the
// query string.
func (b *Builder) BuildQuery(ctx context.Context, text string) string {
	return b.Build(ctx, b.parser.Parse(text)).ScryfallQuery
}

// translate runs the conversion pipeline up to, but not including,
// final cleanup. The stage order is load-bearing: each stage consumes
// the normal form the previous one produced.
func (b *Builder) translate(text string) (string, []string) {
	text = width.Fold.String(text)
	text = b.applyKeywords(text)
	text = b.applyCompound(text)
	text = b.applyNumeric(text)

	var tokens []string
	if b.matcher != nil {
		text, tokens = b.matcher.Apply(text)
	}

	text = b.applyPhrases(text)
	return text, tokens
}

func (b *Builder) applyKeywords(text string) string {
	for _, sub := range b.keywords {
		if sub.pattern != nil {
			text = sub.pattern.ReplaceAllLiteralString(text, sub.repl)
		} else if strings.Contains(text, sub.term) {
			text = strings.ReplaceAll(text, sub.term, " "+sub.repl+" ")
		}
	}
	return text
}

func (b *Builder) applyCompound(text string) string {
	return b.compoundRe.ReplaceAllStringFunc(text, func(match string) string {
		groups := b.compoundRe.FindStringSubmatch(match)
		color, typ := groups[1], groups[2]
		if b.mapping.LatinScript {
			color = b.mapping.Colors[b.mapping.ColorSurface[strings.ToLower(color)]]
			typ = b.mapping.Types[b.mapping.TypeSurface[strings.ToLower(typ)]]
		}
		return "c:" + color + " t:" + typ
	})
}

func (b *Builder) applyNumeric(text string) string {
	return b.numericRe.ReplaceAllStringFunc(text, func(match string) string {
		groups := b.numericRe.FindStringSubmatch(match)
		field, number, op := groups[1], groups[2], groups[3]
		if op == "" {
			op = "="
		}
		return field + op + number
	})
}

func (b *Builder) applyPhrases(text string) string {
	for _, p := range b.phrases {
		if p.Replacement == "" {
			text = strings.ReplaceAll(text, p.Term, " ")
		} else {
			text = strings.ReplaceAll(text, p.Term, " "+p.Replacement+" ")
		}
	}
	return text
}

// clean normalizes the assembled query to the exact token grammar:
// single spaces between tokens, none inside field:value or
// field<op>value tokens.
func (b *Builder) clean(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	query = b.colonSpaceRe.ReplaceAllString(query, ":")
	query = b.opSpaceRe.ReplaceAllString(query, "$1")
	return strings.TrimSpace(query)
}

func (b *Builder) resolveLatestSet(ctx context.Context, query string) string {
	if !strings.Contains(query, LatestSetPlaceholder) {
		return query
	}
	code := LatestSetFallback
	if b.latest != nil {
		resolved, err := b.latest.LatestExpansionCode(ctx)
		if err != nil {
			log.Printf("Failed to resolve latest set, using fallback: %v", err)
		} else if resolved != "" {
			code = resolved
		}
	}
	return strings.ReplaceAll(query, LatestSetPlaceholder, code)
}

func (b *Builder) suggestions(parsed *models.ParsedQuery) []string {
	var out []string

	if len(parsed.Entities.Colors) == 0 && len(parsed.Entities.Types) == 0 {
		out = append(out, b.mapping.Messages.SuggestNarrow)
	}

	haystack := strings.ToLower(parsed.OriginalText)
	for _, term := range b.mapping.CompetitiveTerms {
		if strings.Contains(haystack, term) {
			out = append(out, b.mapping.Messages.SuggestFormat)
			break
		}
	}

	mistakes := make([]string, 0, len(b.mapping.CommonMistakes))
	for mistake := range b.mapping.CommonMistakes {
		mistakes = append(mistakes, mistake)
	}
	sort.Strings(mistakes)
	for _, mistake := range mistakes {
		if strings.Contains(haystack, mistake) {
			out = append(out, fmt.Sprintf(b.mapping.Messages.SuggestSpelled, mistake, b.mapping.CommonMistakes[mistake]))
		}
	}

	return out
}

// AssessComplexity grades a built query by how many operators and
// field filters it carries.
func (b *Builder) AssessComplexity(query string) models.Complexity {
	operators := len(b.operatorRe.FindAllString(query, -1))
	fields := len(b.fieldRe.FindAllString(query, -1))

	switch {
	case operators > 3 || fields > 5:
		return models.ComplexityComplex
	case operators > 1 || fields > 2:
		return models.ComplexityModerate
	default:
		return models.ComplexitySimple
	}
}

// EstimateResults guesses the result volume from the query's
// specificity signals.
func (b *Builder) EstimateResults(query string) models.Volume {
	score := 0
	for _, re := range b.specificity {
		score += len(re.FindAllString(query, -1))
	}
	switch {
	case score >= 4:
		return models.VolumeFew
	case score >= 2:
		return models.VolumeModerate
	default:
		return models.VolumeMany
	}
}
