package search

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cardsage/scryfall-search/internal/i18n"
)

func newJapaneseMatcher() *AbilityMatcher {
	return NewAbilityMatcher(i18n.Japanese(), JapanesePatterns())
}

func TestAbilityMatcher_DeathTriggerWithDraw(t *testing.T) {
	matcher := newJapaneseMatcher()

	remaining, tokens := matcher.Apply("死亡時にカードを1枚引く黒いクリーチャー")

	if remaining != "黒いクリーチャー" {
		t.Errorf("expected remaining '黒いクリーチャー', got %q", remaining)
	}
	want := []string{`o:"when ~ dies"`, `o:"draw"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected tokens %v, got %v", want, tokens)
	}
}

func TestAbilityMatcher_TrailingSuruRemoved(t *testing.T) {
	matcher := newJapaneseMatcher()

	remaining, tokens := matcher.Apply("死亡時にカードを破壊する")

	if remaining != "" {
		t.Errorf("expected empty remaining, got %q", remaining)
	}
	want := []string{`o:"when ~ dies"`, `o:"destroy"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected tokens %v, got %v", want, tokens)
	}
}

func TestAbilityMatcher_TriggerRequiresParticle(t *testing.T) {
	matcher := newJapaneseMatcher()

	// 死亡時 without に is not a trigger phrase.
	remaining, tokens := matcher.Apply("死亡時カードを引く")

	if remaining != "死亡時カードを引く" {
		t.Errorf("expected text unchanged, got %q", remaining)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestAbilityMatcher_EnterTheBattlefield(t *testing.T) {
	matcher := newJapaneseMatcher()

	remaining, tokens := matcher.Apply("戦場に出たときにライフを得る白いクリーチャー")

	if remaining != "白いクリーチャー" {
		t.Errorf("expected remaining '白いクリーチャー', got %q", remaining)
	}
	want := []string{`o:"enters the battlefield"`, `o:"gain life"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected tokens %v, got %v", want, tokens)
	}
}

func TestAbilityMatcher_AttackTrigger(t *testing.T) {
	matcher := newJapaneseMatcher()

	remaining, tokens := matcher.Apply("攻撃したときにカードを引くクリーチャー")

	if remaining != "クリーチャー" {
		t.Errorf("expected remaining 'クリーチャー', got %q", remaining)
	}
	want := []string{`o:"whenever ~ attacks"`, `o:"draw"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected tokens %v, got %v", want, tokens)
	}
}

func TestAbilityMatcher_EffectStopsAtKeywordAbility(t *testing.T) {
	matcher := newJapaneseMatcher()

	// The effect capture must not swallow the keyword ability that
	// follows it.
	remaining, tokens := matcher.Apply("死亡時にカードを引く飛行")

	if remaining != "飛行" {
		t.Errorf("expected remaining '飛行', got %q", remaining)
	}
	want := []string{`o:"when ~ dies"`, `o:"draw"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected tokens %v, got %v", want, tokens)
	}
}

func TestAbilityMatcher_SubstitutedFragmentEndsEffect(t *testing.T) {
	matcher := newJapaneseMatcher()

	// Query fragments emitted by earlier pipeline stages must not be
	// consumed as effect text.
	remaining, tokens := matcher.Apply("死亡時に keyword:flying t:creature")

	if remaining != "keyword:flying t:creature" {
		t.Errorf("expected fragments preserved, got %q", remaining)
	}
	want := []string{`o:"when ~ dies"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected trigger token only, got %v", tokens)
	}
}

func TestAbilityMatcher_MultipleTriggers(t *testing.T) {
	matcher := newJapaneseMatcher()

	remaining, tokens := matcher.Apply("死亡時にカードを引く 戦場に出たときにトークンを生成する")

	if remaining != "" {
		t.Errorf("expected empty remaining, got %q", remaining)
	}
	want := []string{
		`o:"when ~ dies"`, `o:"draw"`,
		`o:"enters the battlefield"`, `o:"create"`,
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected tokens %v, got %v", want, tokens)
	}
}

func TestAbilityMatcher_UnknownEffectKeepsTriggerToken(t *testing.T) {
	matcher := newJapaneseMatcher()

	_, tokens := matcher.Apply("死亡時にあくびをする黒")

	want := []string{`o:"when ~ dies"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected trigger token only, got %v", tokens)
	}
}

func TestAbilityMatcher_WhitespaceSafety(t *testing.T) {
	matcher := newJapaneseMatcher()

	inputs := []string{
		"",
		"   ",
		"死亡時にカードを引く黒いクリーチャー",
		"飛行 死亡時にカードを破壊する 白",
	}
	for _, input := range inputs {
		remaining, _ := matcher.Apply(input)
		if strings.Contains(remaining, "  ") {
			t.Errorf("input %q: remaining contains double space: %q", input, remaining)
		}
		if remaining != strings.TrimSpace(remaining) {
			t.Errorf("input %q: remaining not trimmed: %q", input, remaining)
		}
	}
}

func TestAbilityMatcher_AdjacentColorTypeSurvive(t *testing.T) {
	matcher := newJapaneseMatcher()

	remaining, tokens := matcher.Apply("死亡時にカードを引く 黒 クリーチャー")

	if remaining != "黒 クリーチャー" {
		t.Errorf("expected remaining '黒 クリーチャー', got %q", remaining)
	}
	if len(tokens) != 2 {
		t.Errorf("expected 2 tokens, got %v", tokens)
	}
}
