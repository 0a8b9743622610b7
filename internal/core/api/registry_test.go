package api

import (
	"testing"
	"time"

	"github.com/solatis/sieve/internal/types"
)

func storedAt(id, tenant, name string, at time.Time) types.StoredFilter {
	return types.StoredFilter{
		ID:        types.FilterID(id),
		TenantID:  tenant,
		Name:      name,
		Action:    types.ActionBlock,
		Enabled:   true,
		CreatedAt: at,
	}
}

func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// Insert out of creation order; Tenant must return creation order.
	r.Put(storedAt("cccc", "t1", "third", base.Add(2*time.Hour)), nil)
	r.Put(storedAt("aaaa", "t1", "first", base), nil)
	r.Put(storedAt("bbbb", "t1", "second", base.Add(time.Hour)), nil)

	entries := r.Tenant("t1")
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Name != want {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].Name, want)
		}
	}
}

func TestRegistryTiebreakByID(t *testing.T) {
	r := NewRegistry()
	at := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	r.Put(storedAt("bbbb", "t1", "b", at), nil)
	r.Put(storedAt("aaaa", "t1", "a", at), nil)

	entries := r.Tenant("t1")
	if entries[0].ID != "aaaa" || entries[1].ID != "bbbb" {
		t.Errorf("tie not broken by ID: got %s, %s", entries[0].ID, entries[1].ID)
	}
}

func TestRegistryPutReplaces(t *testing.T) {
	r := NewRegistry()
	at := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	r.Put(storedAt("aaaa", "t1", "old-name", at), nil)
	r.Put(storedAt("aaaa", "t1", "new-name", at), nil)

	if n := r.CountTenant("t1"); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
	entry, ok := r.Get("t1", "aaaa")
	if !ok || entry.Name != "new-name" {
		t.Errorf("entry = %+v, want new-name", entry)
	}
}

func TestRegistryTenantIsolation(t *testing.T) {
	r := NewRegistry()
	at := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	r.Put(storedAt("aaaa", "t1", "mine", at), nil)

	if _, ok := r.Get("t2", "aaaa"); ok {
		t.Error("tenant t2 can read tenant t1's filter")
	}
	if r.Remove("t2", "aaaa") {
		t.Error("tenant t2 can remove tenant t1's filter")
	}
	if _, ok := r.Get("t1", "aaaa"); !ok {
		t.Error("tenant t1 lost its filter")
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	at := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	r.Put(storedAt("aaaa", "t1", "a", at), nil)
	r.Put(storedAt("bbbb", "t1", "b", at.Add(time.Minute)), nil)

	if !r.Remove("t1", "aaaa") {
		t.Fatal("Remove returned false for existing filter")
	}
	if r.Remove("t1", "aaaa") {
		t.Error("Remove returned true for already-removed filter")
	}
	entries := r.Tenant("t1")
	if len(entries) != 1 || entries[0].ID != "bbbb" {
		t.Errorf("remaining = %+v, want only bbbb", entries)
	}
}
