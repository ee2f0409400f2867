// Package currency converts amounts between currencies using the
// exchangerate-api.com rate service.
package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

var ErrRateUnavailable = errors.New("no exchange rate available for the requested currency")

// Client fetches exchange rates from the rate service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the rate service. The URL can be
// overridden with EXCHANGE_RATE_API_URL, which the tests use to point
// the client at a local stub.
func NewClient() *Client {
	baseURL, ok := os.LookupEnv("EXCHANGE_RATE_API_URL")
	if !ok {
		baseURL = defaultBaseURL
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ratesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// rates fetches all exchange rates for a base currency.
func (c *Client) rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s", c.BaseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rate service returned status %d", ErrRateUnavailable, resp.StatusCode)
	}

	var rates ratesResponse
	err = json.NewDecoder(resp.Body).Decode(&rates)
	if err != nil {
		return nil, fmt.Errorf("decoding exchange rates: %w", err)
	}

	return rates.Rates, nil
}

// Convert converts an amount from one currency to another. Converting
// a currency to itself returns the amount unchanged without calling
// the rate service.
func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if from == to {
		return amount, nil
	}

	rates, err := c.rates(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrRateUnavailable, to)
	}

	return amount.Mul(rate), nil
}
