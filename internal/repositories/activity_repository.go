package repositories

import (
	"context"
	"sync"

	"reactivities/internal/models/domain_models"
)

// ActivityRepository backs the bundled development API. Storage is an
// in-memory map so the server runs with zero infrastructure; it lives only
// as long as the process, which is all the client layer expects.
type ActivityRepositoryInterface interface {
	List(ctx context.Context) ([]*domain_models.Activity, error)
	GetByID(ctx context.Context, id string) (*domain_models.Activity, error)
	Insert(ctx context.Context, activity *domain_models.Activity) error
	Update(ctx context.Context, activity *domain_models.Activity) error
	Delete(ctx context.Context, id string) error
}

func NewActivityRepository() ActivityRepositoryInterface {
	return &ActivityRepository{
		data: make(map[string]*domain_models.Activity),
	}
}

type ActivityRepository struct {
	mu   sync.RWMutex
	data map[string]*domain_models.Activity
}

func (r *ActivityRepository) List(ctx context.Context) ([]*domain_models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := make([]*domain_models.Activity, 0, len(r.data))
	for _, activity := range r.data {
		activities = append(activities, activity.Clone())
	}
	return activities, nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*domain_models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	return activity.Clone(), nil
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain_models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[activity.ID] = activity.Clone()
	return nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *domain_models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[activity.ID] = activity.Clone()
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
	return nil
}
