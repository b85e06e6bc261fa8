package memory

import (
	"context"
	"sort"

	"github.com/shiftwise/staffing-backend-go/internal/domain/employer"
)

type employerRepository struct {
	store *Store
}

func NewEmployerRepository(store *Store) employer.EmployerRepository {
	return &employerRepository{store: store}
}

func (r *employerRepository) GetByID(_ context.Context, id string) (employer.Employer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.employers[id]
	if !ok {
		return employer.Employer{}, employer.ErrEmployerNotFound
	}
	return e, nil
}

func (r *employerRepository) ListIDs(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := make([]string, 0, len(r.store.employers))
	for id := range r.store.employers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
