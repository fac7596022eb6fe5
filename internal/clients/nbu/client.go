// Package nbu fetches official reference rates from the National Bank of
// Ukraine statdirectory endpoint.
package nbu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// The full statdirectory listing carries a few dozen currencies.
const maxBodyBytes = 256 << 10

type Rate struct {
	Cc           string          `json:"cc"`
	Txt          string          `json:"txt"`
	Rate         decimal.Decimal `json:"rate"`
	ExchangeDate Date            `json:"exchangedate"`
}

type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func New(timeout time.Duration) *Client {
	return &Client{
		BaseURL: "https://bank.gov.ua/NBUStatService/v1/statdirectory/exchange?json",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Rates fetches the current official rates for every listed currency.
func (c *Client) Rates(ctx context.Context) ([]Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nbu http %d: %s", resp.StatusCode, string(body))
	}

	var out []Rate
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return out, nil
}
