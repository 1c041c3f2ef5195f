package openexchange_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fxease/currency_exchange_app/internal/adapters/openexchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latestPayload = `{
	"disclaimer": "Usage subject to terms: https://openexchangerates.org/terms",
	"license": "https://openexchangerates.org/license",
	"timestamp": 1575309600,
	"base": "USD",
	"rates": {"CZK": 23.0653, "EUR": 0.9029, "PLN": 3.871849}
}`

const currenciesPayload = `{
	"CZK": "Czech Republic Koruna",
	"EUR": "Euro",
	"GBP": "British Pound Sterling",
	"PLN": "Polish Zloty",
	"USD": "United States Dollar"
}`

func TestFetchLatestRates(t *testing.T) {
	var gotAppID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAppID = r.URL.Query().Get("app_id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(latestPayload))
	}))
	defer srv.Close()

	client := openexchange.NewClient(srv.URL+"/latest.json", srv.URL+"/currencies.json", "test-app-id")

	batch, err := client.FetchLatestRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-app-id", gotAppID)
	assert.Equal(t, "USD", batch.Base)
	assert.Equal(t, int64(1575309600), batch.Timestamp)
	require.Len(t, batch.Rates, 3)
	assert.InDelta(t, 23.0653, batch.Rates["CZK"].InexactFloat64(), 0.000001)
}

func TestFetchLatestRates_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := openexchange.NewClient(srv.URL+"/latest.json", srv.URL+"/currencies.json", "")

	_, err := client.FetchLatestRates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestFetchLatestRates_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base": "USD"}`))
	}))
	defer srv.Close()

	client := openexchange.NewClient(srv.URL+"/latest.json", srv.URL+"/currencies.json", "")

	_, err := client.FetchLatestRates(context.Background())
	require.Error(t, err)
}

func TestFetchCurrencies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currenciesPayload))
	}))
	defer srv.Close()

	client := openexchange.NewClient(srv.URL+"/latest.json", srv.URL+"/currencies.json", "")

	currencies, err := client.FetchCurrencies(context.Background())
	require.NoError(t, err)

	assert.Len(t, currencies, 5)
	assert.Equal(t, "Euro", currencies["EUR"])
}
