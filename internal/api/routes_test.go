package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cardsage/scryfall-search/internal/cache"
	"github.com/cardsage/scryfall-search/internal/database"
	"github.com/cardsage/scryfall-search/internal/i18n"
	"github.com/cardsage/scryfall-search/internal/models"
	"github.com/cardsage/scryfall-search/internal/scryfall"
	"github.com/cardsage/scryfall-search/internal/search"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *database.HistoryStore) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/cards/search", func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("q"), "t:impossible") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"object":"list","total_cards":1,"has_more":false,"data":[{"id":"abc","name":"Serra Angel","type_line":"Creature — Angel","set_name":"Dominaria"}]}`))
	})
	mux.HandleFunc("/cards/autocomplete", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"object":"catalog","data":["Serra Angel","Serra Avatar"]}`))
	})
	mux.HandleFunc("/cards/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id":"abc","name":"Serra Angel"}`))
	})
	mux.HandleFunc("/sets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"object":"list","data":[{"code":"abc","name":"Test Set","set_type":"expansion","released_at":"2020-01-01"}]}`))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	store, err := cache.NewMemory(100, time.Minute)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	client := scryfall.NewClient(scryfall.Config{
		BaseURL:      upstream.URL,
		RateInterval: time.Millisecond,
	}, store, cache.DefaultTTLs())
	setService := scryfall.NewSetService(client, nil)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.SearchRecord{}, &models.CachedSet{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	history := database.NewHistoryStore(db)

	registry := i18n.NewRegistry("en", "en")
	translator := search.NewTranslator(registry, setService)

	return SetupRouter(translator, client, setService, history, nil), history
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/search?q=white+creatures", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Query      string `json:"query"`
		TotalCards int    `json:"total_cards"`
		Cards      []struct {
			Name string `json:"name"`
		} `json:"cards"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Query != "c:w t:creature" {
		t.Errorf("expected translated query c:w t:creature, got %q", resp.Query)
	}
	if resp.TotalCards != 1 || len(resp.Cards) != 1 {
		t.Errorf("unexpected result %+v", resp)
	}
	if resp.Cards[0].Name != "Serra Angel" {
		t.Errorf("expected Serra Angel, got %s", resp.Cards[0].Name)
	}
}

func TestSearchEndpoint_RequiresQuery(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/search", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing query, got %d", w.Code)
	}
}

func TestSearchEndpoint_EmptyResult(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/search?q=t:impossible", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty result, got %d", w.Code)
	}
	var resp struct {
		TotalCards int `json:"total_cards"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalCards != 0 {
		t.Errorf("expected 0 cards, got %d", resp.TotalCards)
	}
}

func TestQueryEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "POST", "/api/query", `{"query":"パワー3以上"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Result models.BuiltQuery `json:"result"`
		Valid  bool              `json:"valid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Result.ScryfallQuery != "p>=3" {
		t.Errorf("expected p>=3, got %q", resp.Result.ScryfallQuery)
	}
	if resp.Result.Metadata.Language != "ja" {
		t.Errorf("expected detected language ja, got %s", resp.Result.Metadata.Language)
	}
	if !resp.Valid {
		t.Error("expected built query to validate")
	}
}

func TestQueryEndpoint_RequiresBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "POST", "/api/query", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing query field, got %d", w.Code)
	}
}

func TestAutocompleteEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/cards/autocomplete?q=serra", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Suggestions) != 2 || resp.Suggestions[0] != "Serra Angel" {
		t.Errorf("unexpected suggestions %v", resp.Suggestions)
	}
}

func TestGetCardEndpoint_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/cards/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown card, got %d", w.Code)
	}
}

func TestLatestSetEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/sets/latest", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "abc" {
		t.Errorf("expected abc, got %s", resp.Code)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	router, history := newTestRouter(t)

	built := &models.BuiltQuery{
		ScryfallQuery: "c:w",
		OriginalQuery: "white cards",
		Metadata:      models.QueryMetadata{Language: "en", Intent: models.IntentCardSearch},
	}
	if err := history.Record(context.Background(), built, 5, time.Millisecond); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	w := doRequest(t, router, "GET", "/api/history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Searches []models.SearchRecord `json:"searches"`
		Total    int                   `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || resp.Searches[0].OriginalQuery != "white cards" {
		t.Errorf("unexpected history %+v", resp)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health payload %s", w.Body.String())
	}
}
