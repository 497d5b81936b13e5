package services

import "errors"

// Sentinel errors shared by all domain services. Handlers map each kind to a
// distinct HTTP status; the services themselves never translate to transport.
var (
	ErrInvalidID           = errors.New("invalid id")
	ErrNotFound            = errors.New("record not found")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("invalid credentials")
	ErrConflict            = errors.New("duplicate value for unique field")
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
)
