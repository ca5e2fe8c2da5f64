package models

import "fmt"

// Error codes used in diagnostics and internal error handling.
const (
	// ErrCodeTransport covers network failures and non-success HTTP
	// statuses during a page fetch.
	ErrCodeTransport = "TRANSPORT_ERROR"

	// ErrCodeMalformed covers response bodies that cannot be decoded
	// into the expected page shape.
	ErrCodeMalformed = "MALFORMED_RESPONSE"

	// ErrCodePriceFormat covers raw price values that cannot be
	// coerced to a number.
	ErrCodePriceFormat = "PRICE_FORMAT"
)

// CatalogError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type CatalogError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(code, message string, err error) *CatalogError {
	return &CatalogError{Code: code, Message: message, Err: err}
}
