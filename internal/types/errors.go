package types

import "errors"

// Sentinel errors for sieve operations.
var (
	// ErrFilterNotFound indicates a filter_id with no stored filter.
	ErrFilterNotFound = errors.New("filter not found")

	// ErrFilterNameTaken indicates a filter name already in use by the
	// tenant.
	ErrFilterNameTaken = errors.New("filter name already in use")

	// ErrFilterNameInvalid indicates an empty or oversized filter name.
	ErrFilterNameInvalid = errors.New("invalid filter name")

	// ErrTooManyFilters indicates the tenant reached MaxStoredFilters.
	ErrTooManyFilters = errors.New("stored filter limit reached")

	// ErrInvalidAction indicates an action outside allow/block/log.
	ErrInvalidAction = errors.New("invalid filter action")

	// ErrValuesTooLarge indicates a values document over MaxValuesSize.
	ErrValuesTooLarge = errors.New("values document exceeds maximum size")

	// ErrSchemaIncompatible indicates a filter saved against a different
	// schema than the server currently runs.
	ErrSchemaIncompatible = errors.New("filter schema fingerprint does not match current schema")
)
