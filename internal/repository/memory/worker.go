package memory

import (
	"context"

	"github.com/shiftwise/staffing-backend-go/internal/domain/worker"
)

type workerRepository struct {
	store *Store
}

func NewWorkerRepository(store *Store) worker.WorkerRepository {
	return &workerRepository{store: store}
}

func (r *workerRepository) GetByID(_ context.Context, id string) (worker.Worker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	w, ok := r.store.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (r *workerRepository) GetByIDs(_ context.Context, ids []string) (map[string]worker.Worker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	workers := make(map[string]worker.Worker, len(ids))
	for _, id := range ids {
		if w, ok := r.store.workers[id]; ok {
			workers[id] = w
		}
	}
	return workers, nil
}
