package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Catalog related errors
var (
	// ErrInvalidCatalog is returned when a bundle catalog fails validation at
	// load time. It is fatal: no resolution can be attempted against a
	// catalog that did not load.
	ErrInvalidCatalog = errors.New("invalid bundle catalog")

	// ErrUnknownBundle is returned by strict resolvers when asked to expand a
	// bundle key absent from the catalog. Lenient resolvers treat the same
	// key as a no-op.
	ErrUnknownBundle = errors.Wrap(BadParameterError, "unknown bundle key")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
