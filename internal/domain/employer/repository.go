package employer

import "context"

// EmployerRepository defines the read surface the engine needs on employers.
type EmployerRepository interface {
	GetByID(ctx context.Context, id string) (Employer, error)

	// ListIDs returns every employer id; the generation schedule iterates it.
	ListIDs(ctx context.Context) ([]string, error)
}
