package worker

import (
	"context"
	"errors"
)

var ErrWorkerNotFound = errors.New("worker not found")

// WorkerRepository defines the read surface the finalizer needs on workers.
type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (Worker, error)

	// GetByIDs returns profiles keyed by id; missing ids are absent.
	GetByIDs(ctx context.Context, ids []string) (map[string]Worker, error)
}
