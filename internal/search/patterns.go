package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cardsage/scryfall-search/internal/i18n"
)

// AbilityPattern recognizes one triggered-ability phrasing. The
// trigger regexp matches the trigger words only; the effect text that
// follows is captured by scanning forward to the nearest stop token.
type AbilityPattern struct {
	Name     string
	Trigger  *regexp.Regexp
	Token    string
	Priority int
}

// knownEffect maps an effect phrase to its oracle text token. Kept as
// an ordered list so multi-effect captures emit tokens in a stable
// order.
type knownEffect struct {
	phrase string
	token  string
}

// AbilityMatcher excises triggered-ability phrases from query text and
// converts them to oracle text tokens.
type AbilityMatcher struct {
	patterns []AbilityPattern
	keywords map[string]string
	effects  []knownEffect
	stops    []string
}

const effectSuffix = "する"

// sentence punctuation that ends an effect span
var terminators = []string{"。", "、", "！", "？", ".", ",", "!", "?"}

// Already-substituted query fragments ("c:b", "keyword:flying",
// "p>=3") end an effect span the same way their surface words do.
var queryFragmentRe = regexp.MustCompile(`^\w+[:<>=!]`)

// NewAbilityMatcher builds a matcher. Stop tokens are derived from the
// mapping's color, type and keyword-ability vocabulary so effect
// capture never swallows the rest of the query.
func NewAbilityMatcher(mapping *i18n.LanguageMapping, patterns []AbilityPattern) *AbilityMatcher {
	sorted := make([]AbilityPattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &AbilityMatcher{
		patterns: sorted,
		keywords: mapping.SearchKeywords,
		effects:  japaneseEffects,
		stops:    mapping.StopWords(),
	}
}

// JapanesePatterns returns the built-in Japanese trigger patterns.
func JapanesePatterns() []AbilityPattern {
	return []AbilityPattern{
		{
			Name:     "death_trigger_with_effect",
			Trigger:  regexp.MustCompile(`死亡時に`),
			Token:    `o:"when ~ dies"`,
			Priority: 100,
		},
		{
			Name:     "etb_trigger_with_effect",
			Trigger:  regexp.MustCompile(`戦場に出たときに`),
			Token:    `o:"enters the battlefield"`,
			Priority: 100,
		},
		{
			Name:     "attack_trigger_with_effect",
			Trigger:  regexp.MustCompile(`攻撃したときに`),
			Token:    `o:"whenever ~ attacks"`,
			Priority: 100,
		},
	}
}

var japaneseEffects = []knownEffect{
	{"引く", `o:"draw"`},
	{"引き", `o:"draw"`},
	{"破壊", `o:"destroy"`},
	{"追放", `o:"exile"`},
	{"生成", `o:"create"`},
	{"ダメージ", `o:"deals damage"`},
	{"ライフを得", `o:"gain life"`},
	{"生け贄", `o:"sacrifice"`},
}

// Apply processes text through all patterns in priority order. It
// returns the text with matched phrases removed plus the oracle text
// tokens, in the order the phrases appeared.
func (m *AbilityMatcher) Apply(text string) (string, []string) {
	var all []string
	remaining := text

	for _, p := range m.patterns {
		locs := p.Trigger.FindAllStringIndex(remaining, -1)
		if locs == nil {
			continue
		}

		type abilityMatch struct {
			start, end int
			tokens     []string
		}
		var found []abilityMatch

		for i, loc := range locs {
			// An effect never extends past the next trigger.
			limit := len(remaining)
			if i+1 < len(locs) {
				limit = locs[i+1][0]
			}
			end, effect, ok := m.effectSpan(remaining[:limit], loc[1])
			if !ok {
				continue
			}
			tokens := []string{p.Token}
			tokens = append(tokens, m.parseEffect(strings.TrimSpace(effect))...)
			found = append(found, abilityMatch{start: loc[0], end: end, tokens: tokens})
		}

		// Excise right to left so earlier offsets stay valid.
		for i := len(found) - 1; i >= 0; i-- {
			f := found[i]
			remaining = remaining[:f.start] + " " + remaining[f.end:]
		}
		for _, f := range found {
			all = append(all, f.tokens...)
		}
	}

	remaining = strings.Join(strings.Fields(remaining), " ")
	return remaining, all
}

// effectSpan scans forward from the trigger end for the shortest
// non-empty effect that ends at a stop token, consuming a trailing
// する when one sits between the effect and the stop. It returns the
// end of the excised span and the effect text.
func (m *AbilityMatcher) effectSpan(s string, from int) (end int, effect string, ok bool) {
	if from >= len(s) {
		return 0, "", false
	}
	_, first := utf8.DecodeRuneInString(s[from:])
	for e := from + first; e <= len(s); {
		if strings.HasPrefix(s[e:], effectSuffix) && m.isStop(s[e+len(effectSuffix):]) {
			return e + len(effectSuffix), s[from:e], true
		}
		if m.isStop(s[e:]) {
			return e, s[from:e], true
		}
		_, size := utf8.DecodeRuneInString(s[e:])
		e += size
	}
	return 0, "", false
}

// isStop reports whether the remainder of the buffer starts at an
// effect boundary.
func (m *AbilityMatcher) isStop(s string) bool {
	if s == "" {
		return true
	}
	if s[0] == ' ' {
		return true
	}
	if queryFragmentRe.MatchString(s) {
		return true
	}
	for _, t := range terminators {
		if strings.HasPrefix(s, t) {
			return true
		}
	}
	for _, w := range m.stops {
		if strings.HasPrefix(s, w) {
			return true
		}
	}
	return false
}

// parseEffect converts captured effect text to oracle tokens: an exact
// vocabulary hit wins, otherwise every known effect phrase contained
// in the text contributes its token.
func (m *AbilityMatcher) parseEffect(effect string) []string {
	if effect == "" {
		return nil
	}
	if token, ok := m.keywords[effect]; ok && token != "" {
		return []string{token}
	}
	var tokens []string
	for _, known := range m.effects {
		if strings.Contains(effect, known.phrase) {
			tokens = append(tokens, known.token)
		}
	}
	return tokens
}
