package i18n

// English returns the English vocabulary. English is also the fallback
// language for unknown locales.
func English() *LanguageMapping {
	return &LanguageMapping{
		Code:        "en",
		Name:        "English",
		Locale:      "en_US",
		LatinScript: true,

		Colors: map[string]string{
			"white":     "w",
			"blue":      "u",
			"black":     "b",
			"red":       "r",
			"green":     "g",
			"colorless": "c",
		},
		Types: map[string]string{
			"artifact":     "artifact",
			"creature":     "creature",
			"enchantment":  "enchantment",
			"instant":      "instant",
			"land":         "land",
			"planeswalker": "planeswalker",
			"sorcery":      "sorcery",
			"basic":        "basic",
			"legendary":    "legendary",
			"snow":         "snow",
			"equipment":    "equipment",
			"aura":         "aura",
			"vehicle":      "vehicle",
			"token":        "token",
		},
		Operators: map[string]string{
			"equals":                "=",
			"not_equals":            "!=",
			"less_than":             "<",
			"less_than_or_equal":    "<=",
			"greater_than":          ">",
			"greater_than_or_equal": ">=",
			"contains":              ":",
			"not_contains":          "-",
		},
		Formats: map[string]string{
			"standard":  "standard",
			"pioneer":   "pioneer",
			"modern":    "modern",
			"legacy":    "legacy",
			"vintage":   "vintage",
			"commander": "commander",
			"pauper":    "pauper",
			"historic":  "historic",
			"alchemy":   "alchemy",
			"brawl":     "brawl",
		},
		Rarities: map[string]string{
			"common":   "common",
			"uncommon": "uncommon",
			"rare":     "rare",
			"mythic":   "mythic",
			"special":  "special",
			"bonus":    "bonus",
		},
		SetTypes: map[string]string{
			"core":             "core",
			"expansion":        "expansion",
			"masters":          "masters",
			"draft_innovation": "draft_innovation",
			"commander":        "commander",
			"starter":          "starter",
			"promo":            "promo",
			"token":            "token",
		},

		SearchKeywords: map[string]string{
			"color":               "c",
			"colors":              "c",
			"identity":            "id",
			"mana":                "m",
			"converted mana cost": "cmc",
			"mana value":          "mv",
			"oracle":              "o",
			"power":               "p",
			"toughness":           "tou",
			"loyalty":             "loy",
			"rarity":              "r",
			"edition":             "e",
			"block":               "b",
			"format":              "f",
			"artist":              "a",
			"flavor":              "fl",
			"watermark":           "w",
			"year":                "year",
			"price":               "usd",
			"language":            "lang",
			"the latest set":      "s:__LATEST_SET__",
			"latest set":          "s:__LATEST_SET__",
			"newest set":          "s:__LATEST_SET__",

			"is":  "is",
			"not": "not",
			"and": "",
			"or":  "or",

			"multicolor":   "multicolor",
			"multicolored": "multicolor",
			"monocolored":  "monocolor",
			"monocolor":    "monocolor",
			"reprint":      "reprint",
			"foil":         "foil",
			"nonfoil":      "nonfoil",
			"digital":      "digital",
			"paper":        "paper",
			"promo":        "promo",
			"unique":       "unique",
			"funny":        "funny",
			"legal":        "legal",
			"banned":       "banned",
			"restricted":   "restricted",
		},

		Phrases: map[string]string{
			"cards with":        "",
			"cards that":        "",
			"creatures with":    "t:creature",
			"artifacts with":    "t:artifact",
			"enchantments with": "t:enchantment",
			"instants with":     "t:instant",
			"sorceries with":    "t:sorcery",
			"planeswalkers with": "t:planeswalker",
			"lands with":        "t:land",

			"power equal to":         "p=",
			"power greater than":     "p>",
			"power less than":        "p<",
			"toughness equal to":     "tou=",
			"toughness greater than": "tou>",
			"toughness less than":    "tou<",

			"mana cost": "m:",
			"costs":     "m:",

			"white cards":     "c:w",
			"blue cards":      "c:u",
			"black cards":     "c:b",
			"red cards":       "c:r",
			"green cards":     "c:g",
			"colorless cards": "c:c",

			"legal in":      "f:",
			"banned in":     "banned:",
			"restricted in": "restricted:",

			"from set": "s:",
			"in set":   "s:",

			"with text":   "o:",
			"oracle text": "o:",
			"flavor text": "ft:",

			"price under":   "usd<",
			"price over":    "usd>",
			"price exactly": "usd:",
			"costs under":   "usd<",
			"costs over":    "usd>",
		},

		ColorSurface: map[string]string{
			"white":     "white",
			"blue":      "blue",
			"black":     "black",
			"red":       "red",
			"green":     "green",
			"colorless": "colorless",
		},
		TypeSurface: map[string]string{
			"creature":     "creature",
			"artifact":     "artifact",
			"enchantment":  "enchantment",
			"instant":      "instant",
			"sorcery":      "sorcery",
			"land":         "land",
			"planeswalker": "planeswalker",
		},

		FindTerms:  []string{"find", "search", "show me", "get"},
		PriceTerms: []string{"price of", "how much", "cost"},
		RulesTerms: []string{"what does", "rules for", "how does"},
		DeckTerms:  []string{"deck with", "build a deck"},

		CompetitiveTerms: []string{"tournament", "competitive", "meta", "tier"},

		Messages: Messages{
			SuggestNarrow:  "Try specifying colors or card types for more specific results",
			SuggestFormat:  "For competitive searches, try adding format restrictions like f:standard or f:modern",
			SuggestQuote:   "Use quotes around '%s' if it's a card name",
			SuggestSpelled: "'%s' looks misspelled, did you mean '%s'?",

			ErrUnmatchedQuotes: "Unmatched quotes in query",
			ErrInvalidOperator: "Invalid operators: %s",
			ErrEmptyTerm:       "Empty search terms found",

			NoResults:      "No cards found matching your search.",
			TooManyResults: "Too many results. Please refine your search.",
			SearchError:    "There was an error with your search.",
			InvalidQuery:   "Invalid search query.",
		},

		Labels: Labels{
			SearchResults:  "Search Results",
			OriginalQuery:  "Original Query",
			ScryfallQuery:  "Scryfall Query",
			CardsFound:     "Cards Found: %d",
			ShowingFirst:   "(showing first %d)",
			MoreResults:    "Note: More results are available",
			Type:           "Type",
			Keywords:       "Keywords",
			PowerToughness: "Power/Toughness",
			OracleText:     "Oracle Text",
			Set:            "Set",
			Price:          "Price",
			IllustratedBy:  "Illustrated by",
			ViewOnScryfall: "View on Scryfall",
			SearchHints:    "Search Suggestions",
			QueryAnalysis:  "Query Analysis",
			Complexity:     "Complexity",
			ExpectedResult: "Expected Results",
			Extracted:      "Extracted Elements",

			EntityNames: map[string]string{
				"colors":     "Colors",
				"types":      "Types",
				"numbers":    "Numbers",
				"card_names": "Card Names",
				"sets":       "Sets",
				"formats":    "Formats",
			},
			RarityNames: map[string]string{
				"common":   "Common",
				"uncommon": "Uncommon",
				"rare":     "Rare",
				"mythic":   "Mythic Rare",
			},
			Legalities: map[string]string{
				"legal":      "Legal",
				"not_legal":  "Not Legal",
				"restricted": "Restricted",
				"banned":     "Banned",
			},
		},
	}
}
