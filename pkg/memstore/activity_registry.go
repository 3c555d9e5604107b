// pkg/memstore/activity_registry.go
package memstore

import (
	"sync"

	"reactivities/internal/models/domain_models"
)

// ActivityRegistry is the authoritative in-memory store of activities for
// the current client session. It is the single owner of Activity instances
// once they are loaded; callers get direct references and mutate between
// suspension points only, so a plain mutex is enough.
type ActivityRegistry interface {
	// Upsert inserts or replaces the entry keyed by activity.ID.
	// Safe to call repeatedly with the same id.
	Upsert(activity *domain_models.Activity)

	// Get returns the entry for id, or nil if absent. No I/O.
	Get(id string) *domain_models.Activity

	// Remove evicts the entry. No-op if absent.
	Remove(id string)

	// ListAll returns an unordered snapshot of the current contents.
	ListAll() []*domain_models.Activity

	// Len reports the number of entries.
	Len() int
}

type activityRegistry struct {
	mu   sync.RWMutex
	data map[string]*domain_models.Activity
}

func NewActivityRegistry() ActivityRegistry {
	return &activityRegistry{
		data: make(map[string]*domain_models.Activity),
	}
}

func (r *activityRegistry) Upsert(activity *domain_models.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[activity.ID] = activity
}

func (r *activityRegistry) Get(id string) *domain_models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data[id]
}

func (r *activityRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
}

func (r *activityRegistry) ListAll() []*domain_models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain_models.Activity, 0, len(r.data))
	for _, activity := range r.data {
		all = append(all, activity)
	}
	return all
}

func (r *activityRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
