package types

/*
 * Domain representation of a stored filter.
 *
 * StoredFilter is the filters table row as the rest of the system sees
 * it, wire-format agnostic: proto conversion happens at the API boundary
 * and SQL mapping in the handlers that query it. The compiled form lives
 * only in the API layer's registry, never here, so these types stay free
 * of engine dependencies.
 */

import "time"

// StoredFilter is a persisted filter definition.
type StoredFilter struct {
	ID                FilterID
	TenantID          string
	Name              string
	Expression        string // canonical source, as printed by the parser
	Action            Action
	Enabled           bool
	SchemaFingerprint string // sha256 over the ordered field/type list
	CreatedAt         time.Time
}

// CompatibleWith reports whether the filter was saved against the given
// schema fingerprint. Incompatible filters are listed but never match.
func (f *StoredFilter) CompatibleWith(fingerprint string) bool {
	return f.SchemaFingerprint == fingerprint
}
