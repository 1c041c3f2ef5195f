package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Components receive it at
// construction time; there is no process-wide mutable settings object.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate provider
	ProviderAppID         string
	ProviderLatestURL     string
	ProviderCurrenciesURL string
	FetchMaxRetries       int
	FetchRetryPause       time.Duration
	IngestInterval        time.Duration

	// Domain
	BaseCurrencyCode string
	// ActiveCurrencies is the allow-list: provider's full currency name ->
	// customer-facing alias. Only currencies named here are synced.
	ActiveCurrencies map[string]string

	// HTTP
	RateLimit string // ulule/limiter formatted rate, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("EXCHANGERATES_API_APP_ID", "")
	viper.SetDefault("EXCHANGERATES_API_LATEST_URL", "https://openexchangerates.org/api/latest.json")
	viper.SetDefault("EXCHANGERATES_API_CURRENCIES_URL", "https://openexchangerates.org/api/currencies.json")
	viper.SetDefault("EXCHANGERATES_API_MAX_RETRIES", 3)
	viper.SetDefault("EXCHANGERATES_API_RETRY_PAUSE", "5s")
	viper.SetDefault("INGEST_INTERVAL", "24h")
	viper.SetDefault("BASE_CURRENCY_CODE", "USD")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ACTIVE_CURRENCIES", map[string]string{
		"Czech Republic Koruna": "Czech koruna",
		"Euro":                  "Euro",
		"Polish Zloty":          "Polish złoty",
		"United States Dollar":  "US dollar",
	})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ProviderAppID = viper.GetString("EXCHANGERATES_API_APP_ID")
	if cfg.ProviderAppID == "" {
		log.Println("Warning: EXCHANGERATES_API_APP_ID not set. Provider requests will be unauthenticated.")
	}
	cfg.ProviderLatestURL = viper.GetString("EXCHANGERATES_API_LATEST_URL")
	cfg.ProviderCurrenciesURL = viper.GetString("EXCHANGERATES_API_CURRENCIES_URL")

	cfg.FetchMaxRetries = viper.GetInt("EXCHANGERATES_API_MAX_RETRIES")
	if cfg.FetchMaxRetries <= 0 {
		cfg.FetchMaxRetries = 3
		log.Printf("Warning: Invalid EXCHANGERATES_API_MAX_RETRIES. Defaulting to %d.\n", cfg.FetchMaxRetries)
	}

	retryPauseStr := viper.GetString("EXCHANGERATES_API_RETRY_PAUSE")
	retryPause, err := time.ParseDuration(retryPauseStr)
	if err != nil {
		retryPause = 5 * time.Second
		log.Printf("Warning: Invalid value for EXCHANGERATES_API_RETRY_PAUSE ('%s'). Defaulting to %s.\n", retryPauseStr, retryPause)
	}
	cfg.FetchRetryPause = retryPause

	ingestIntervalStr := viper.GetString("INGEST_INTERVAL")
	ingestInterval, err := time.ParseDuration(ingestIntervalStr)
	if err != nil {
		ingestInterval = 24 * time.Hour
		log.Printf("Warning: Invalid value for INGEST_INTERVAL ('%s'). Defaulting to %s.\n", ingestIntervalStr, ingestInterval)
	}
	cfg.IngestInterval = ingestInterval

	cfg.BaseCurrencyCode = viper.GetString("BASE_CURRENCY_CODE")
	cfg.ActiveCurrencies = viper.GetStringMapString("ACTIVE_CURRENCIES")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
