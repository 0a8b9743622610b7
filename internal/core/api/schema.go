package api

import (
	"crypto/sha256"
	"fmt"

	"github.com/solatis/sieve/internal/core/config"
	"github.com/solatis/sieve/internal/filter"
)

// BuildScheme constructs the filter scheme from configured field
// declarations, preserving declaration order. Field order matters: it
// assigns the slot indices compiled filters use.
func BuildScheme(fields []config.SchemaField) (*filter.Scheme, error) {
	scheme := &filter.Scheme{}
	for i, f := range fields {
		t, err := filter.ParseType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("schema.fields[%d] (%s): %w", i, f.Name, err)
		}
		if err := scheme.AddField(f.Name, t); err != nil {
			return nil, fmt.Errorf("schema.fields[%d]: %w", i, err)
		}
	}
	return scheme, nil
}

// SchemaFingerprint hashes the ordered field/type list. Stored filters
// carry the fingerprint they were saved under; a mismatch means the
// schema changed and the filter's slot indices and type checks no longer
// hold, so it must not run.
func SchemaFingerprint(scheme *filter.Scheme) string {
	h := sha256.New()
	for _, f := range scheme.Fields() {
		fmt.Fprintf(h, "%s=%s\n", f.Name, f.Type)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
