package privatbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxBodyBytes = 64 << 10

// Rate is one entry of the pubinfo card-rate feed. Buy and Sale stay
// strings: the feed quotes them as text and the table prints them as-is.
type Rate struct {
	Ccy     string `json:"ccy"`
	BaseCcy string `json:"base_ccy"`
	Buy     string `json:"buy"`
	Sale    string `json:"sale"`
}

type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func New(timeout time.Duration) *Client {
	return &Client{
		BaseURL: "https://api.privatbank.ua/p24api/pubinfo?exchange&json&coursid=11",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Rates fetches the current card buy/sale quotes.
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
		return nil, fmt.Errorf("privatbank http %d: %s", resp.StatusCode, string(body))
	}

	var out []Rate
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return out, nil
}
