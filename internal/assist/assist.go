// Package assist extracts a draft event expense from free-form text by
// calling an external classification endpoint. The whole package fails
// closed: without a configured endpoint, a credential, or a well-formed
// response, the caller simply gets no suggestion.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/util"
)

const requestTimeout = 15 * time.Second

// Suggestion is a draft expense extracted from free text. Month and
// Category are always valid domain values; unrecognized input falls back
// to January and the "other" category.
type Suggestion struct {
	Name     string
	Amount   decimal.Decimal
	Month    models.MonthKey
	Category models.EventCategory
}

// Client talks to the classification endpoint.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// New builds a client. Either value may be empty; Extract then reports
// not-configured instead of calling out.
func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether the client has both an endpoint and a key.
func (c *Client) Configured() bool {
	return c.endpoint != "" && c.apiKey != ""
}

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
	Category string  `json:"category"`
}

// Extract sends the text off for classification. The second return is
// false when no usable suggestion came back, for any reason.
func (c *Client) Extract(ctx context.Context, text string) (*Suggestion, bool) {
	if !c.Configured() || text == "" {
		return nil, false
	}

	body, err := json.Marshal(extractRequest{Text: text})
	if err != nil {
		return nil, false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		util.LogError("assist request failed", err)
		return nil, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		util.LogError("assist request rejected", errors.New(resp.Status))
		return nil, false
	}

	var parsed extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		util.LogError("assist response unreadable", err)
		return nil, false
	}
	if parsed.Name == "" {
		return nil, false
	}

	amount := decimal.NewFromFloat(parsed.Amount)
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return &Suggestion{
		Name:     parsed.Name,
		Amount:   amount,
		Month:    models.ParseMonthKey(parsed.Month),
		Category: models.ParseCategory(parsed.Category),
	}, true
}
