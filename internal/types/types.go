// Package types provides domain models shared across sieve components.
//
// Zero-dependency design: types.go and errors.go use only the standard
// library. ID utilities in ids.go import uuid but are isolated so callers
// that only need the model types avoid the dependency.
//
// Separation from protobuf: generated proto types live in
// internal/protobuf. This package contains hand-written types for concepts
// that don't belong in proto (error types, helper methods) or need to
// avoid pulling in proto deps.
package types

// FilterID represents a UUIDv7 filter identifier.
// String alias enables type safety while maintaining JSON string
// serialization. UUIDv7 time-ordering ensures sequential IDs cluster in
// B-tree indexes and makes ID order match creation order.
type FilterID string

// Action is what a matching filter asks the caller to do with the
// traffic. Stored as text in the database and mapped to the proto enum
// at the API boundary.
type Action string

const (
	ActionAllow Action = "allow"
	ActionBlock Action = "block"
	ActionLog   Action = "log"
)

// Valid reports whether a is one of the three known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionAllow, ActionBlock, ActionLog:
		return true
	default:
		return false
	}
}

// ParseAction converts a string to an Action, rejecting unknown values.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !a.Valid() {
		return "", ErrInvalidAction
	}
	return a, nil
}

// Resource limits enforced at the service boundary. The expression-level
// limits (length, nesting depth, set size) live in internal/filter next
// to the parser that enforces them.
const (
	// MaxFilterNameLength bounds filter names. 256 chars accommodates
	// descriptive names without blob-sized rows.
	MaxFilterNameLength = 256

	// MaxStoredFilters caps filters per tenant. 10,000 keeps MatchTraffic
	// latency predictable and bounds registry memory.
	MaxStoredFilters = 10_000

	// MaxValuesSize limits the values JSON document per request.
	// 1MB allows generous field sets; larger payloads indicate misuse.
	MaxValuesSize = 1024 * 1024
)
