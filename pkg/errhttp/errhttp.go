// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ledgerdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, ledgerdomain.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, ledgerdomain.ErrInsufficientStock):
		return http.StatusBadRequest // 400
	case errors.Is(err, ledgerdomain.ErrPersistence):
		// The in-memory mutation applied but the durable write failed.
		// Surfaced as a server error, never conflated with bad input.
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
