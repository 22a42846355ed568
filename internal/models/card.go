package models

// Scryfall API response objects. Only the fields the service actually
// reads are mapped; everything else in the wire payload is ignored.

type ImageURIs struct {
	Small      string `json:"small"`
	Normal     string `json:"normal"`
	Large      string `json:"large"`
	PNG        string `json:"png"`
	ArtCrop    string `json:"art_crop"`
	BorderCrop string `json:"border_crop"`
}

type CardFace struct {
	Name        string     `json:"name"`
	ManaCost    string     `json:"mana_cost"`
	TypeLine    string     `json:"type_line"`
	OracleText  string     `json:"oracle_text"`
	Power       string     `json:"power"`
	Toughness   string     `json:"toughness"`
	FlavorText  string     `json:"flavor_text"`
	ImageURIs   *ImageURIs `json:"image_uris"`
	Colors      []string   `json:"colors"`
	PrintedName string     `json:"printed_name"`
}

type Prices struct {
	USD     string `json:"usd"`
	USDFoil string `json:"usd_foil"`
	EUR     string `json:"eur"`
	Tix     string `json:"tix"`
}

// Card is a Scryfall card object.
type Card struct {
	ID            string            `json:"id"`
	OracleID      string            `json:"oracle_id"`
	Name          string            `json:"name"`
	Lang          string            `json:"lang"`
	ReleasedAt    string            `json:"released_at"`
	ManaCost      string            `json:"mana_cost"`
	CMC           float64           `json:"cmc"`
	TypeLine      string            `json:"type_line"`
	OracleText    string            `json:"oracle_text"`
	Power         string            `json:"power"`
	Toughness     string            `json:"toughness"`
	Loyalty       string            `json:"loyalty"`
	Colors        []string          `json:"colors"`
	ColorIdentity []string          `json:"color_identity"`
	Keywords      []string          `json:"keywords"`
	CardFaces     []CardFace        `json:"card_faces"`
	Legalities    map[string]string `json:"legalities"`
	Set           string            `json:"set"`
	SetName       string            `json:"set_name"`
	SetType       string            `json:"set_type"`
	CollectorNum  string            `json:"collector_number"`
	Rarity        string            `json:"rarity"`
	FlavorText    string            `json:"flavor_text"`
	Artist        string            `json:"artist"`
	ImageURIs     *ImageURIs        `json:"image_uris"`
	Prices        Prices            `json:"prices"`
	ScryfallURI   string            `json:"scryfall_uri"`

	// Populated on non-English printings.
	PrintedName     string `json:"printed_name"`
	PrintedTypeLine string `json:"printed_type_line"`
	PrintedText     string `json:"printed_text"`
}

// DisplayName returns the printed name when present, falling back to
// the canonical English name.
func (c *Card) DisplayName() string {
	if c.PrintedName != "" {
		return c.PrintedName
	}
	return c.Name
}

// SearchResult is the /cards/search response envelope.
type SearchResult struct {
	Object     string   `json:"object"`
	TotalCards int      `json:"total_cards"`
	HasMore    bool     `json:"has_more"`
	NextPage   string   `json:"next_page"`
	Data       []Card   `json:"data"`
	Warnings   []string `json:"warnings"`
}

// Catalog is the /cards/autocomplete response envelope.
type Catalog struct {
	Object      string   `json:"object"`
	TotalValues int      `json:"total_values"`
	Data        []string `json:"data"`
}

// Set is a Scryfall set object.
type Set struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	SetType    string `json:"set_type"`
	ReleasedAt string `json:"released_at"`
	CardCount  int    `json:"card_count"`
	Digital    bool   `json:"digital"`
	IconSVGURI string `json:"icon_svg_uri"`
}

// SetList is the /sets response envelope.
type SetList struct {
	Object  string `json:"object"`
	HasMore bool   `json:"has_more"`
	Data    []Set  `json:"data"`
}
