package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akyairhashvil/clubkitty/internal/models"
)

func TestExtractParsesSuggestion(t *testing.T) {
	var gotAuth, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req struct {
			Text string `json:"text"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gotText = req.Text
		json.NewEncoder(w).Encode(map[string]any{
			"name":     "Hall hire",
			"amount":   120.5,
			"month":    "mar",
			"category": "venue",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key")
	got, ok := c.Extract(context.Background(), "rent the hall in march, about 120")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotText != "rent the hall in march, about 120" {
		t.Errorf("request text = %q", gotText)
	}
	if got.Name != "Hall hire" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Amount.String() != "120.5" {
		t.Errorf("Amount = %s", got.Amount)
	}
	if got.Month != models.MonthMar {
		t.Errorf("Month = %s", got.Month)
	}
	if got.Category != models.CategoryVenue {
		t.Errorf("Category = %s", got.Category)
	}
}

func TestExtractFallsBackOnBadDomainValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"name":     "Mystery outing",
			"amount":   -50.0,
			"month":    "summer",
			"category": "fun stuff",
		})
	}))
	defer srv.Close()

	got, ok := New(srv.URL, "k").Extract(context.Background(), "something")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got.Month != models.MonthJan {
		t.Errorf("unknown month should fall back to jan, got %s", got.Month)
	}
	if got.Category != models.CategoryOther {
		t.Errorf("unknown category should fall back to other, got %s", got.Category)
	}
	if !got.Amount.IsZero() {
		t.Errorf("negative amount should clamp to zero, got %s", got.Amount)
	}
}

func TestExtractFailsClosed(t *testing.T) {
	errSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer errSrv.Close()
	junkSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer junkSrv.Close()
	namelessSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"amount": 10}`))
	}))
	defer namelessSrv.Close()

	cases := []struct {
		name   string
		client *Client
		text   string
	}{
		{"no endpoint", New("", "key"), "text"},
		{"no key", New(errSrv.URL, ""), "text"},
		{"empty text", New(errSrv.URL, "key"), ""},
		{"http error", New(errSrv.URL, "key"), "text"},
		{"junk body", New(junkSrv.URL, "key"), "text"},
		{"missing name", New(namelessSrv.URL, "key"), "text"},
		{"unreachable", New("http://127.0.0.1:1", "key"), "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.client.Extract(context.Background(), tc.text)
			if ok || got != nil {
				t.Errorf("expected (nil, false), got (%+v, %v)", got, ok)
			}
		})
	}
}

func TestConfigured(t *testing.T) {
	if New("", "").Configured() {
		t.Error("empty client reported configured")
	}
	if New("http://x", "").Configured() {
		t.Error("missing key reported configured")
	}
	if !New("http://x", "k").Configured() {
		t.Error("full client reported unconfigured")
	}
}
