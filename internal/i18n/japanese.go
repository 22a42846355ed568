package i18n

// Japanese returns the Japanese vocabulary.
func Japanese() *LanguageMapping {
	return &LanguageMapping{
		Code:        "ja",
		Name:        "日本語",
		Locale:      "ja_JP",
		LatinScript: false,

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
			// Colors
			"白":   "c:w",
			"青":   "c:u",
			"黒":   "c:b",
			"赤":   "c:r",
			"緑":   "c:g",
			"無色":  "c:c",
			"白い":  "c:w",
			"青い":  "c:u",
			"黒い":  "c:b",
			"赤い":  "c:r",
			"緑い":  "c:g",
			"無色の": "c:c",

			// Fields
			"色":          "c",
			"カラー":        "c",
			"色識別":        "id",
			"マナ":         "m",
			"マナコスト":      "m",
			"点数で見たマナコスト": "cmc",
			"マナ総量":       "mv",
			"タイプ":        "t",
			"種族":         "t",
			"テキスト":       "o",
			"オラクルテキスト":   "o",
			"パワー":        "p",
			"タフネス":       "tou",
			"忠誠度":        "loy",
			"レアリティ":      "r",
			"希少度":        "r",
			"セット":        "s",
			"エキスパンション":   "s",
			"最新セット":      "s:__LATEST_SET__",
			"最新のセット":     "s:__LATEST_SET__",
			"ブロック":       "b",
			"フォーマット":     "f",
			"アーティスト":     "a",
			"イラストレーター":   "a",
			"フレーバー":      "fl",
			"フレーバーテキスト":  "ft",
			"ウォーターマーク":   "w",
			"年":          "year",
			"価格":         "usd",
			"言語":         "lang",

			// Card types
			"アーティファクト":  "t:artifact",
			"クリーチャー":    "t:creature",
			"エンチャント":    "t:enchantment",
			"インスタント":    "t:instant",
			"土地":         "t:land",
			"ランド":        "t:land",
			"プレインズウォーカー": "t:planeswalker",
			"ソーサリー":      "t:sorcery",
			"部族":         "t:tribal",
			"基本":         "t:basic",
			"伝説の":        "t:legendary",
			"雪":          "t:snow",
			"装身具":        "t:equipment",
			"オーラ":        "t:aura",
			"機体":         "t:vehicle",
			"トークン":       "t:token",

			// Connectives
			"である":  "is",
			"でない":  "not",
			"かつ":   "",
			"または":  "or",
			"そして":  "",
			"でかつ":  "",

			// Special values
			"多色":     "multicolor",
			"多色の":    "multicolor",
			"単色":     "monocolor",
			"単色の":    "monocolor",
			"再録":     "reprint",
			"フォイル":   "foil",
			"ノンフォイル": "nonfoil",
			"デジタル":   "digital",
			"紙":      "paper",
			"プロモ":    "promo",
			"ユニーク":   "unique",
			"使用可能":   "legal",
			"禁止":     "banned",
			"制限":     "restricted",

			// Evergreen keyword abilities
			"飛行":       "keyword:flying",
			"飛行を持つ":    "keyword:flying",
			"飛行持ち":     "keyword:flying",
			"速攻":       "keyword:haste",
			"速攻を持つ":    "keyword:haste",
			"速攻持ち":     "keyword:haste",
			"接死":       "keyword:deathtouch",
			"接死を持つ":    "keyword:deathtouch",
			"接死持ち":     "keyword:deathtouch",
			"トランプル":    "keyword:trample",
			"トランプルを持つ": "keyword:trample",
			"トランプル持ち":  "keyword:trample",
			"警戒":       "keyword:vigilance",
			"警戒を持つ":    "keyword:vigilance",
			"警戒持ち":     "keyword:vigilance",
			"先制攻撃":     `keyword:"first strike"`,
			"先制攻撃を持つ":  `keyword:"first strike"`,
			"先制攻撃持ち":   `keyword:"first strike"`,
			"二段攻撃":     `keyword:"double strike"`,
			"二段攻撃を持つ":  `keyword:"double strike"`,
			"二段攻撃持ち":   `keyword:"double strike"`,
			"絆魂":       "keyword:lifelink",
			"絆魂を持つ":    "keyword:lifelink",
			"絆魂持ち":     "keyword:lifelink",
			"呪禁":       "keyword:hexproof",
			"呪禁を持つ":    "keyword:hexproof",
			"呪禁持ち":     "keyword:hexproof",
			"到達":       "keyword:reach",
			"到達を持つ":    "keyword:reach",
			"到達持ち":     "keyword:reach",

			// Deciduous keyword abilities
			"威迫":     "keyword:menace",
			"威迫を持つ":  "keyword:menace",
			"威迫持ち":   "keyword:menace",
			"瞬速":     "keyword:flash",
			"瞬速を持つ":  "keyword:flash",
			"瞬速持ち":   "keyword:flash",
			"多相":     "keyword:changeling",
			"多相を持つ":  "keyword:changeling",
			"多相持ち":   "keyword:changeling",
			"防衛":     "keyword:defender",
			"防衛を持つ":  "keyword:defender",
			"防衛持ち":   "keyword:defender",
			"護法":     "keyword:ward",
			"護法を持つ":  "keyword:ward",
			"護法持ち":   "keyword:ward",

			// Formats
			"スタンダード": "f:standard",
			"パイオニア":  "f:pioneer",
			"モダン":    "f:modern",
			"レガシー":   "f:legacy",
			"ヴィンテージ": "f:vintage",
			"統率者":    "f:commander",
			"コマンダー":  "f:commander",
			"パウパー":   "f:pauper",
			"ヒストリック": "f:historic",
			"アルケミー":  "f:alchemy",
			"ブロール":   "f:brawl",

			// Rarities
			"コモン":   "r:common",
			"アンコモン": "r:uncommon",
			"レア":    "r:rare",
			"神話レア":  "r:mythic",
			"特殊":    "r:special",
			"ボーナス":  "r:bonus",

			// Operators
			"等しい":   "=",
			"と等しい":  "=",
			"ではない":  "!=",
			"未満":    "<",
			"以下":    "<=",
			"より大きい": ">",
			"以上":    ">=",
			"含む":    ":",
			"含まない":  "-",
		},

		Phrases: map[string]string{
			"を持つカード":        "",
			"のカード":          "",
			"を持つクリーチャー":     "t:creature",
			"を持つアーティファクト":   "t:artifact",
			"を持つエンチャント":     "t:enchantment",
			"を持つインスタント":     "t:instant",
			"を持つソーサリー":      "t:sorcery",
			"を持つプレインズウォーカー": "t:planeswalker",
			"を持つ土地":         "t:land",

			"コストが":      "m:",
			"のマナを必要とする": "m:",

			"で使用可能": "f:",
			"で禁止":   "banned:",
			"で制限":   "restricted:",

			"セットから": "s:",
			"に収録":   "s:",

			"テキストに":      "o:",
			"オラクルテキストに":  "o:",
			"フレーバーテキストに": "ft:",

			"価格未満":   "usd<",
			"価格以上":   "usd>",
			"価格ちょうど": "usd:",
			"より安い":   "usd<",
			"より高い":   "usd>",

			"点":  "",
			"円":  "",
			"ドル": "",
		},

		ColorSurface: map[string]string{
			"白":  "white",
			"青":  "blue",
			"黒":  "black",
			"赤":  "red",
			"緑":  "green",
			"無色": "colorless",
		},
		TypeSurface: map[string]string{
			"クリーチャー":     "creature",
			"アーティファクト":   "artifact",
			"エンチャント":     "enchantment",
			"インスタント":     "instant",
			"ソーサリー":      "sorcery",
			"土地":         "land",
			"プレインズウォーカー": "planeswalker",
		},

		FindTerms:  []string{"探して", "検索", "見つけて", "カード"},
		PriceTerms: []string{"価格", "値段", "相場"},
		RulesTerms: []string{"ルール", "効果", "テキスト"},
		DeckTerms:  []string{"デッキ", "構築", "採用"},

		CompetitiveTerms: []string{"tournament", "competitive", "meta", "tier", "競技", "大会", "ティア"},

		CommonMistakes: map[string]string{
			"くりーちゃー":   "クリーチャー",
			"いんすたんと":   "インスタント",
			"そーさりー":    "ソーサリー",
			"あーてぃふぁくと": "アーティファクト",
			"えんちゃんと":   "エンチャント",
		},

		Messages: Messages{
			SuggestNarrow:  "色やカードタイプを指定すると、より具体的な検索ができます",
			SuggestFormat:  "競技用検索には f:standard や f:modern などでフォーマットを指定してみてください",
			SuggestQuote:   "カード名の場合は '%s' を引用符で囲んでください",
			SuggestSpelled: "'%s' は '%s' の間違いですか？",

			ErrUnmatchedQuotes: "引用符が正しく閉じられていません",
			ErrInvalidOperator: "無効な演算子: %s",
			ErrEmptyTerm:       "空の検索条件があります",

			NoResults:      "検索にマッチするカードが見つかりませんでした。",
			TooManyResults: "結果が多すぎます。検索条件を絞り込んでください。",
			SearchError:    "検索でエラーが発生しました。",
			InvalidQuery:   "無効な検索クエリです。",
		},

		Labels: Labels{
			SearchResults:  "検索結果",
			OriginalQuery:  "元のクエリ",
			ScryfallQuery:  "Scryfallクエリ",
			CardsFound:     "見つかったカード: %d枚",
			ShowingFirst:   "(最初の%d枚を表示)",
			MoreResults:    "注意: さらに多くの結果があります",
			Type:           "タイプ",
			Keywords:       "キーワード能力",
			PowerToughness: "パワー／タフネス",
			OracleText:     "オラクルテキスト",
			Set:            "セット",
			Price:          "価格",
			IllustratedBy:  "イラスト",
			ViewOnScryfall: "Scryfallで見る",
			SearchHints:    "検索のヒント",
			QueryAnalysis:  "検索クエリの詳細",
			Complexity:     "複雑さ",
			ExpectedResult: "予想結果数",
			Extracted:      "抽出された要素",

			EntityNames: map[string]string{
				"colors":     "色",
				"types":      "タイプ",
				"numbers":    "数値",
				"card_names": "カード名",
				"sets":       "セット",
				"formats":    "フォーマット",
			},
			RarityNames: map[string]string{
				"common":   "コモン",
				"uncommon": "アンコモン",
				"rare":     "レア",
				"mythic":   "神話レア",
			},
			Legalities: map[string]string{
				"legal":      "適正",
				"not_legal":  "不適正",
				"restricted": "制限",
				"banned":     "禁止",
			},
		},
	}
}
