package search

import (
	"context"

	"github.com/cardsage/scryfall-search/internal/i18n"
	"github.com/cardsage/scryfall-search/internal/models"
)

// Translator owns one compiled pipeline per supported language and
// routes each query to the right one. Pipelines are compiled at
// construction; translation itself is pure and safe for concurrent
// use.
type Translator struct {
	registry   *i18n.Registry
	builders   map[string]*Builder
	parsers    map[string]*Parser
	presenters map[string]*Presenter
}

// NewTranslator compiles pipelines for every language the registry
// knows about.
func NewTranslator(registry *i18n.Registry, latest LatestSetResolver) *Translator {
	t := &Translator{
		registry:   registry,
		builders:   make(map[string]*Builder),
		parsers:    make(map[string]*Parser),
		presenters: make(map[string]*Presenter),
	}
	for _, info := range registry.Locales() {
		mapping := registry.Mapping(info.LanguageCode)
		t.builders[info.LanguageCode] = NewBuilder(mapping, latest)
		t.parsers[info.LanguageCode] = NewParser(mapping)
		t.presenters[info.LanguageCode] = NewPresenter(mapping)
	}
	return t
}

// resolve picks the pipeline for a language code, detecting from the
// query text when none is given.
func (t *Translator) resolve(text, lang string) string {
	if lang != "" && t.registry.Supported(lang) {
		return i18n.ParseLocale(lang)
	}
	return t.registry.Detect(text).Code
}

// Translate parses and builds a query in one step.
func (t *Translator) Translate(ctx context.Context, text, lang string) *models.BuiltQuery {
	code := t.resolve(text, lang)
	parsed := t.parsers[code].Parse(text)
	return t.builders[code].Build(ctx, parsed)
}

// Parse exposes the parsing stage on its own.
func (t *Translator) Parse(text, lang string) *models.ParsedQuery {
	return t.parsers[t.resolve(text, lang)].Parse(text)
}

// Validate checks a built query's syntax in the given language.
func (t *Translator) Validate(query, lang string) (bool, []string) {
	return t.parsers[t.resolve(query, lang)].ValidateSyntax(query)
}

// Presenter returns the presenter for a language code.
func (t *Translator) Presenter(lang string) *Presenter {
	code := t.resolve("", lang)
	return t.presenters[code]
}

// Languages lists the supported locales.
func (t *Translator) Languages() []i18n.LocaleInfo {
	return t.registry.Locales()
}
