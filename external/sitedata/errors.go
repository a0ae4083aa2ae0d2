package sitedata

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// FetchError reports a document that could not be loaded: either the server
// answered with a non-success status, or the request/decoding failed (Status 0).
type FetchError struct {
	Path   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("No se pudo cargar %s: %d", e.Path, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("No se pudo cargar %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("No se pudo cargar %s", e.Path)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError extracts a *FetchError from err's chain.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if crerr.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
