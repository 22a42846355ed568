package search

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cardsage/scryfall-search/internal/i18n"
	"github.com/cardsage/scryfall-search/internal/models"
)

func TestParse_IntentDetection_English(t *testing.T) {
	p := NewParser(i18n.English())

	cases := []struct {
		text string
		want models.Intent
	}{
		{"find red dragons", models.IntentCardSearch},
		{"Show me blue counterspells", models.IntentCardSearch},
		{"price of Black Lotus", models.IntentPriceInquiry},
		{"how much is Mox Emerald", models.IntentPriceInquiry},
		{"what does Lightning Bolt do", models.IntentRulesInquiry},
		{"build a deck around dragons", models.IntentDeckBuilding},
		{"red dragons", models.IntentGeneralSearch},
		{"", models.IntentGeneralSearch},
	}
	for _, tc := range cases {
		parsed := p.Parse(tc.text)
		if parsed.Intent != tc.want {
			t.Errorf("text %q: expected intent %s, got %s", tc.text, tc.want, parsed.Intent)
		}
	}
}

func TestParse_IntentDetection_Japanese(t *testing.T) {
	p := NewParser(i18n.Japanese())

	cases := []struct {
		text string
		want models.Intent
	}{
		{"赤いドラゴンを探して", models.IntentCardSearch},
		{"ブラック・ロータスの価格", models.IntentPriceInquiry},
		{"稲妻のルール", models.IntentRulesInquiry},
		{"ドラゴンのデッキ", models.IntentDeckBuilding},
		{"赤いドラゴン", models.IntentGeneralSearch},
	}
	for _, tc := range cases {
		parsed := p.Parse(tc.text)
		if parsed.Intent != tc.want {
			t.Errorf("text %q: expected intent %s, got %s", tc.text, tc.want, parsed.Intent)
		}
	}
}

func TestParse_EntityExtraction(t *testing.T) {
	p := NewParser(i18n.English())

	parsed := p.Parse(`find white creature with power 3 named "Serra Angel"`)

	if !reflect.DeepEqual(parsed.Entities.Colors, []string{"white"}) {
		t.Errorf("expected colors [white], got %v", parsed.Entities.Colors)
	}
	if !reflect.DeepEqual(parsed.Entities.Types, []string{"creature"}) {
		t.Errorf("expected types [creature], got %v", parsed.Entities.Types)
	}
	if !reflect.DeepEqual(parsed.Entities.Numbers, []string{"3"}) {
		t.Errorf("expected numbers [3], got %v", parsed.Entities.Numbers)
	}
	if !reflect.DeepEqual(parsed.Entities.CardNames, []string{"Serra Angel"}) {
		t.Errorf("expected card names [Serra Angel], got %v", parsed.Entities.CardNames)
	}
}

func TestParse_EntityExtraction_Japanese(t *testing.T) {
	p := NewParser(i18n.Japanese())

	parsed := p.Parse("白いクリーチャーでパワー3以上")

	if !reflect.DeepEqual(parsed.Entities.Colors, []string{"white"}) {
		t.Errorf("expected colors [white], got %v", parsed.Entities.Colors)
	}
	if !reflect.DeepEqual(parsed.Entities.Types, []string{"creature"}) {
		t.Errorf("expected types [creature], got %v", parsed.Entities.Types)
	}
	if !reflect.DeepEqual(parsed.Entities.Numbers, []string{"3"}) {
		t.Errorf("expected numbers [3], got %v", parsed.Entities.Numbers)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	p := NewParser(i18n.English())

	parsed := p.Parse("")

	if parsed.Intent != models.IntentGeneralSearch {
		t.Errorf("expected general_search, got %s", parsed.Intent)
	}
	if len(parsed.Entities.Colors) != 0 || len(parsed.Entities.Types) != 0 {
		t.Errorf("expected empty entities, got %+v", parsed.Entities)
	}
	if parsed.NormalizedText != "" {
		t.Errorf("expected empty normalized text, got %q", parsed.NormalizedText)
	}
}

func TestParse_NormalizesSmartQuotes(t *testing.T) {
	p := NewParser(i18n.English())

	parsed := p.Parse("find “Serra Angel”  now")

	if parsed.NormalizedText != `find "Serra Angel" now` {
		t.Errorf("unexpected normalized text %q", parsed.NormalizedText)
	}
	if !reflect.DeepEqual(parsed.Entities.CardNames, []string{"Serra Angel"}) {
		t.Errorf("expected quoted name extracted, got %v", parsed.Entities.CardNames)
	}
}

func TestSuggestImprovements_QuoteCardNames(t *testing.T) {
	p := NewParser(i18n.English())

	parsed := p.Parse("find Serra Angel")
	suggestions := p.SuggestImprovements(parsed)

	found := false
	for _, s := range suggestions {
		if strings.Contains(s, "Serra Angel") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected quote suggestion for card name, got %v", suggestions)
	}
}

func TestSuggestImprovements_NarrowSearch(t *testing.T) {
	p := NewParser(i18n.English())

	parsed := p.Parse("something vague")
	suggestions := p.SuggestImprovements(parsed)

	if len(suggestions) == 0 {
		t.Error("expected a narrowing suggestion for unspecific query")
	}
}

func TestValidateSyntax(t *testing.T) {
	p := NewParser(i18n.English())

	cases := []struct {
		query string
		valid bool
	}{
		{"c:w t:creature p>=3", true},
		{`o:"draw a card"`, true},
		{`c:w "unclosed`, false},
		{"p>>>=3", false},
		{"t: creature", false},
		{"", true},
	}
	for _, tc := range cases {
		valid, errs := p.ValidateSyntax(tc.query)
		if valid != tc.valid {
			t.Errorf("query %q: expected valid=%v, got %v (errors %v)", tc.query, tc.valid, valid, errs)
		}
	}
}
