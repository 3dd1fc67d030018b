package domain

import "errors"

// Sentinel errors for the ledger domain. Use errors.Is() to check these.
var (
	// ErrValidation indicates missing or malformed required input.
	// Detected before any mutation; safe to retry with corrected input.
	ErrValidation = errors.New("validation failed")

	// ErrProductNotFound indicates the referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock indicates an outbound quantity exceeds the
	// product's current stock. The ledger is left untouched.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrPersistence indicates the durable snapshot write failed after the
	// in-memory mutation already applied. Memory and disk have diverged;
	// a restart reloads the last successfully written snapshot.
	ErrPersistence = errors.New("snapshot write failed")
)
