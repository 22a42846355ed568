package i18n

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// LocaleInfo describes one supported locale.
type LocaleInfo struct {
	Code         string `json:"code"`
	Language     string `json:"language"`
	LanguageCode string `json:"language_code"`
	IsDefault    bool   `json:"is_default"`
	IsFallback   bool   `json:"is_fallback"`
}

// snapshot is an immutable view of the registered mappings. Replace
// swaps the whole snapshot so concurrent readers never observe a
// partially updated mapping set.
type snapshot struct {
	mappings map[string]*LanguageMapping
}

// Registry resolves locale codes to language mappings with a fallback
// chain. Lookups are lock-free; hot reload goes through Replace.
type Registry struct {
	current  atomic.Pointer[snapshot]
	defaultL string
	fallback string
}

// NewRegistry builds a registry with the built-in languages.
func NewRegistry(defaultLocale, fallbackLocale string) *Registry {
	r := &Registry{
		defaultL: defaultLocale,
		fallback: fallbackLocale,
	}
	mappings := make(map[string]*LanguageMapping)
	for _, m := range []*LanguageMapping{English(), Japanese()} {
		if _, ok := mappings[m.Code]; ok {
			log.Printf("Mapping for %s already registered, skipping", m.Code)
			continue
		}
		mappings[m.Code] = m
	}
	r.current.Store(&snapshot{mappings: mappings})
	return r
}

// Replace installs an updated mapping, swapping in a new snapshot so
// in-flight translations keep the one they started with.
func (r *Registry) Replace(m *LanguageMapping) {
	old := r.current.Load()
	mappings := make(map[string]*LanguageMapping, len(old.mappings)+1)
	for code, existing := range old.mappings {
		mappings[code] = existing
	}
	mappings[m.Code] = m
	r.current.Store(&snapshot{mappings: mappings})
}

// Mapping resolves a locale code, falling back to the configured
// fallback language for unknown codes. An empty code resolves to the
// default locale.
func (r *Registry) Mapping(code string) *LanguageMapping {
	if code == "" {
		code = r.defaultL
	}
	snap := r.current.Load()
	if m, ok := snap.mappings[ParseLocale(code)]; ok {
		return m
	}
	if m, ok := snap.mappings[r.fallback]; ok {
		return m
	}
	// The built-in registration makes this unreachable in practice.
	for _, m := range snap.mappings {
		return m
	}
	panic("i18n: no language mappings registered")
}

// Default returns the default locale's mapping.
func (r *Registry) Default() *LanguageMapping {
	return r.Mapping(r.defaultL)
}

// Supported reports whether a locale code has a registered mapping.
func (r *Registry) Supported(code string) bool {
	_, ok := r.current.Load().mappings[ParseLocale(code)]
	return ok
}

// Locales returns the supported locales.
func (r *Registry) Locales() []LocaleInfo {
	snap := r.current.Load()
	infos := make([]LocaleInfo, 0, len(snap.mappings))
	for code, m := range snap.mappings {
		infos = append(infos, LocaleInfo{
			Code:         m.Locale,
			Language:     m.Name,
			LanguageCode: code,
			IsDefault:    code == r.defaultL,
			IsFallback:   code == r.fallback,
		})
	}
	return infos
}

// DetectLocale inspects the usual environment variables and returns
// the first supported locale, or the default when none match.
func (r *Registry) DetectLocale() string {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG", "LANGUAGE"} {
		if v := os.Getenv(env); v != "" {
			if code := ParseLocale(v); code != "" && r.Supported(code) {
				return code
			}
		}
	}
	return r.defaultL
}

// ParseLocale extracts the language code from a locale string such as
// "en_US.UTF-8", "ja-JP" or "ja".
func ParseLocale(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "_-."); i >= 0 {
		s = s[:i]
	}
	if len(s) < 2 {
		return ""
	}
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return ""
		}
	}
	return s
}

// Detect guesses the query language from its content: any Japanese
// script switches the query to Japanese processing.
func (r *Registry) Detect(text string) *LanguageMapping {
	if containsJapanese(text) && r.Supported("ja") {
		return r.Mapping("ja")
	}
	return r.Default()
}

func containsJapanese(text string) bool {
	for _, c := range text {
		switch {
		case c >= 0x3040 && c <= 0x30FF: // hiragana and katakana
			return true
		case c >= 0x4E00 && c <= 0x9FFF: // CJK ideographs
			return true
		case c >= 0xFF66 && c <= 0xFF9D: // half-width katakana
			return true
		}
	}
	return false
}

// String implements fmt.Stringer for logging.
func (r *Registry) String() string {
	return fmt.Sprintf("i18n.Registry(default=%s fallback=%s languages=%d)",
		r.defaultL, r.fallback, len(r.current.Load().mappings))
}
