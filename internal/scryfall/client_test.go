package scryfall

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cardsage/scryfall-search/internal/cache"
	"github.com/cardsage/scryfall-search/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := cache.NewMemory(100, time.Minute)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	client := NewClient(Config{
		BaseURL:      server.URL,
		RateInterval: time.Millisecond,
		MaxRetries:   2,
	}, store, cache.DefaultTTLs())
	client.sleep = func(context.Context, time.Duration) error { return nil }
	client.limiter.sleep = func(context.Context, time.Duration) error { return nil }
	return client, server
}

func TestSearchCards(t *testing.T) {
	var gotQuery, gotUA string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"object":"list","total_cards":1,"has_more":false,"data":[{"id":"abc","name":"Serra Angel"}]}`))
	}))

	result, err := client.SearchCards(context.Background(), "c:w t:creature", models.SearchOptions{})
	if err != nil {
		t.Fatalf("SearchCards failed: %v", err)
	}
	if gotQuery != "c:w t:creature" {
		t.Errorf("expected query passed through, got %q", gotQuery)
	}
	if gotUA == "" {
		t.Error("expected a User-Agent header")
	}
	if result.TotalCards != 1 || len(result.Data) != 1 {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Data[0].Name != "Serra Angel" {
		t.Errorf("expected Serra Angel, got %s", result.Data[0].Name)
	}
}

func TestSearchCards_AppliesFilters(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"object":"list","data":[]}`))
	}))

	_, err := client.SearchCards(context.Background(), "c:r", models.SearchOptions{
		FormatFilter: "modern",
		Language:     "ja",
	})
	if err != nil {
		t.Fatalf("SearchCards failed: %v", err)
	}
	if gotQuery != "c:r f:modern lang:ja" {
		t.Errorf("expected auxiliary filters appended, got %q", gotQuery)
	}
}

func TestSearchCards_NotFoundIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"object":"error","code":"not_found","status":404,"details":"no cards found"}`))
	}))

	result, err := client.SearchCards(context.Background(), "c:w t:impossible", models.SearchOptions{})
	if err != nil {
		t.Fatalf("expected empty result for 404, got error %v", err)
	}
	if result.TotalCards != 0 || len(result.Data) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestSearchCards_CachesResponses(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"object":"list","total_cards":1,"data":[{"id":"abc","name":"Serra Angel"}]}`))
	}))

	for i := 0; i < 3; i++ {
		if _, err := client.SearchCards(context.Background(), "c:w", models.SearchOptions{}); err != nil {
			t.Fatalf("SearchCards failed: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call with caching, got %d", calls)
	}
}

func TestSearchCards_RetriesOnThrottle(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"object":"error","code":"too_many_requests","status":429}`))
			return
		}
		w.Write([]byte(`{"object":"list","total_cards":1,"data":[{"id":"abc","name":"Serra Angel"}]}`))
	}))

	result, err := client.SearchCards(context.Background(), "c:w", models.SearchOptions{})
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
	if result.TotalCards != 1 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestSearchCards_SurfacesAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"object":"error","code":"bad_request","status":400,"details":"Invalid search"}`))
	}))

	_, err := client.SearchCards(context.Background(), "((", models.SearchOptions{})
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	apiErr, ok := err.(*models.APIError)
	if !ok {
		t.Fatalf("expected *models.APIError, got %T", err)
	}
	if apiErr.Status != 400 || apiErr.Code != "bad_request" {
		t.Errorf("unexpected error payload %+v", apiErr)
	}
	if apiErr.Details != "Invalid search" {
		t.Errorf("expected API details preserved, got %q", apiErr.Details)
	}
}

func TestGetCard_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	card, err := client.GetCard(context.Background(), "nope")
	if err != nil {
		t.Fatalf("expected nil error for 404, got %v", err)
	}
	if card != nil {
		t.Errorf("expected nil card, got %+v", card)
	}
}

func TestGetCardByName_Fuzzy(t *testing.T) {
	var gotFuzzy string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFuzzy = r.URL.Query().Get("fuzzy")
		w.Write([]byte(`{"id":"abc","name":"Lightning Bolt"}`))
	}))

	card, err := client.GetCardByName(context.Background(), "lightnin bolt", false, "")
	if err != nil {
		t.Fatalf("GetCardByName failed: %v", err)
	}
	if gotFuzzy != "lightnin bolt" {
		t.Errorf("expected fuzzy param, got %q", gotFuzzy)
	}
	if card.Name != "Lightning Bolt" {
		t.Errorf("unexpected card %+v", card)
	}
}

func TestAutocomplete(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/autocomplete" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"object":"catalog","total_values":2,"data":["Lightning Bolt","Lightning Helix"]}`))
	}))

	names, err := client.Autocomplete(context.Background(), "lightn")
	if err != nil {
		t.Fatalf("Autocomplete failed: %v", err)
	}
	if len(names) != 2 || names[0] != "Lightning Bolt" {
		t.Errorf("unexpected completions %v", names)
	}
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	b := NewCircuitBreaker(3, time.Minute)

	for i := 0; i < 3; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("expected closed circuit on attempt %d, got %v", i, err)
		}
		b.RecordFailure()
	}

	if err := b.Allow(); err != ErrCircuitOpen {
		t.Errorf("expected ErrCircuitOpen, got %v", err)
	}
	if b.State() != "open" {
		t.Errorf("expected open state, got %s", b.State())
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute)
	now := time.Now()
	b.now = func() time.Time { return now }

	b.RecordFailure()
	if err := b.Allow(); err != ErrCircuitOpen {
		t.Fatalf("expected open circuit, got %v", err)
	}

	now = now.Add(2 * time.Minute)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe allowed, got %v", err)
	}
	if b.State() != "half_open" {
		t.Errorf("expected half_open, got %s", b.State())
	}

	b.RecordSuccess()
	if b.State() != "closed" {
		t.Errorf("expected closed after success, got %s", b.State())
	}
}

func TestLimiter_BackoffOnThrottle(t *testing.T) {
	l := NewLimiter(time.Millisecond)
	now := time.Now()
	l.now = func() time.Time { return now }

	l.RecordFailure(429)
	if l.BackoffRemaining() <= 0 {
		t.Error("expected active backoff after 429")
	}

	l.RecordSuccess()
	if l.BackoffRemaining() != 0 {
		t.Error("expected backoff cleared after success")
	}

	// Non-throttling failures do not trigger backoff.
	l.RecordFailure(500)
	if l.BackoffRemaining() != 0 {
		t.Error("expected no backoff for plain 500")
	}
}

func TestLimiter_BackoffCapped(t *testing.T) {
	l := NewLimiter(time.Millisecond)
	now := time.Now()
	l.now = func() time.Time { return now }

	for i := 0; i < 20; i++ {
		l.RecordFailure(429)
	}
	if remaining := l.BackoffRemaining(); remaining > maxBackoff {
		t.Errorf("expected backoff capped at %v, got %v", maxBackoff, remaining)
	}
}
