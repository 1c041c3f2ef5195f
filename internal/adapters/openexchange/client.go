package openexchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portsprov "github.com/fxease/currency_exchange_app/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Client talks to the openexchangerates.org HTTP API.
type Client struct {
	httpClient    *http.Client
	latestURL     string
	currenciesURL string
	appID         string
}

// NewClient creates a provider client for the given endpoint URLs.
func NewClient(latestURL, currenciesURL, appID string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: defaultTimeout},
		latestURL:     latestURL,
		currenciesURL: currenciesURL,
		appID:         appID,
	}
}

var _ portsprov.RateProvider = (*Client)(nil)

// latestResponse mirrors the provider's latest.json payload. Extra fields
// (disclaimer, license) are ignored.
type latestResponse struct {
	Base      string                     `json:"base"`
	Timestamp int64                      `json:"timestamp"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// FetchLatestRates retrieves the provider's current rates against its base currency.
func (c *Client) FetchLatestRates(ctx context.Context) (*domain.RateBatch, error) {
	var payload latestResponse
	if err := c.getJSON(ctx, c.latestURL, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch latest rates: %w", err)
	}
	if payload.Timestamp == 0 || payload.Base == "" || len(payload.Rates) == 0 {
		return nil, fmt.Errorf("malformed latest rates payload from %s", c.latestURL)
	}

	return &domain.RateBatch{
		Base:      payload.Base,
		Timestamp: payload.Timestamp,
		Rates:     payload.Rates,
	}, nil
}

// FetchCurrencies retrieves the provider's full currency list (code -> name).
func (c *Client) FetchCurrencies(ctx context.Context) (map[string]string, error) {
	currencies := map[string]string{}
	if err := c.getJSON(ctx, c.currenciesURL, &currencies); err != nil {
		return nil, fmt.Errorf("failed to fetch currency list: %w", err)
	}
	return currencies, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid provider URL %q: %w", rawURL, err)
	}
	if c.appID != "" {
		q := u.Query()
		q.Set("app_id", c.appID)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
