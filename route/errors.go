package route

import "errors"

var (
	// ErrUnknownCountry indicates a query identifier absent from the
	// country registry.
	ErrUnknownCountry = errors.New("route: unknown country")

	// ErrNotFound indicates that no distance is known between two valid
	// identifiers.
	ErrNotFound = errors.New("route: distance not found")
)
