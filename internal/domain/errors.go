package domain

import "errors"

// Sentinel error kinds shared across services. Handlers and the error
// middleware match on these with errors.Is; services wrap them with
// fmt.Errorf("...: %w", Err...) to add context.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
