package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates that a conversion amount could not be parsed as a number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidCurrency indicates that one side of a conversion pair has no known rate.
var ErrInvalidCurrency = errors.New("invalid currency code")

// ErrDataInconsistency indicates that the stored rates for a pair belong to
// different ingestion batches. This is a server-side integrity error, never
// the client's fault.
var ErrDataInconsistency = errors.New("rate data inconsistency")

// ErrIncompleteBatch indicates that a fetched rate batch is missing a known
// currency and was discarded without being persisted.
var ErrIncompleteBatch = errors.New("incomplete rate batch")

// ErrUpstreamUnavailable indicates that the rate provider could not be
// reached within the retry budget.
var ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
