package api

import (
	"sort"
	"sync"

	"github.com/solatis/sieve/internal/filter"
	"github.com/solatis/sieve/internal/types"
)

// RegistryEntry pairs a stored filter with its compiled form. Compiled
// is nil when the filter cannot run against the current schema; such
// entries are listed but never match.
type RegistryEntry struct {
	types.StoredFilter
	Compiled *filter.Filter
}

// Registry is the in-memory index of stored filters, one compiled form
// per filter, kept per tenant in evaluation order: created_at ascending
// with filter_id breaking ties. UUIDv7 IDs make the tiebreak follow
// creation order too.
//
// Reads vastly outnumber writes (every MatchTraffic reads, only admin
// RPCs write), so a single RWMutex over both indexes is enough.
type Registry struct {
	mu       sync.RWMutex
	byID     map[types.FilterID]*RegistryEntry
	byTenant map[string][]*RegistryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:     make(map[types.FilterID]*RegistryEntry),
		byTenant: make(map[string][]*RegistryEntry),
	}
}

// Put inserts or replaces the entry for stored.ID, keeping the tenant's
// slice in evaluation order. Entries must not be mutated after Put.
func (r *Registry) Put(stored types.StoredFilter, compiled *filter.Filter) {
	entry := &RegistryEntry{StoredFilter: stored, Compiled: compiled}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byID[stored.ID]; ok {
		r.removeFromTenant(old.TenantID, stored.ID)
	}
	r.byID[stored.ID] = entry

	list := r.byTenant[stored.TenantID]
	i := sort.Search(len(list), func(i int) bool {
		if !list[i].CreatedAt.Equal(entry.CreatedAt) {
			return list[i].CreatedAt.After(entry.CreatedAt)
		}
		return list[i].ID > entry.ID
	})
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = entry
	r.byTenant[stored.TenantID] = list
}

// Remove deletes the entry for id if it belongs to the tenant. Returns
// whether anything was removed.
func (r *Registry) Remove(tenantID string, id types.FilterID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[id]
	if !ok || entry.TenantID != tenantID {
		return false
	}
	delete(r.byID, id)
	r.removeFromTenant(tenantID, id)
	return true
}

// Get returns the entry for id if it belongs to the tenant.
func (r *Registry) Get(tenantID string, id types.FilterID) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[id]
	if !ok || entry.TenantID != tenantID {
		return nil, false
	}
	return entry, true
}

// Tenant returns a snapshot of the tenant's entries in evaluation order.
// The slice is a copy; the entries it points to are immutable.
func (r *Registry) Tenant(tenantID string) []*RegistryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byTenant[tenantID]
	out := make([]*RegistryEntry, len(list))
	copy(out, list)
	return out
}

// CountTenant returns the number of entries stored for the tenant.
func (r *Registry) CountTenant(tenantID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byTenant[tenantID])
}

// removeFromTenant drops id from the tenant's ordered slice. Caller
// holds the write lock.
func (r *Registry) removeFromTenant(tenantID string, id types.FilterID) {
	list := r.byTenant[tenantID]
	for i, e := range list {
		if e.ID == id {
			r.byTenant[tenantID] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}
