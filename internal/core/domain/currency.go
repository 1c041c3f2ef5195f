package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	Code  string `json:"code"`  // Primary Key, 3-letter ISO code (e.g., "USD")
	Name  string `json:"name"`  // Provider's full name (e.g., "Euro")
	Alias string `json:"alias"` // Customer-facing display alias (e.g., "Euro")
}
