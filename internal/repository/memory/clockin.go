package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/clockin"
)

type clockinRepository struct {
	store *Store
}

func NewClockinRepository(store *Store) clockin.ClockinRepository {
	return &clockinRepository{store: store}
}

func (r *clockinRepository) Create(_ context.Context, record clockin.Clockin) (clockin.Clockin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record.ID = newID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.store.clockins[record.ID] = record
	return record, nil
}

func (r *clockinRepository) GetOpenByWorker(_ context.Context, workerID string) (*clockin.Clockin, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var latest *clockin.Clockin
	for _, c := range r.store.clockins {
		if c.WorkerID != workerID || !c.Open() {
			continue
		}
		if latest == nil || c.StartedAt.After(latest.StartedAt) {
			c := c
			latest = &c
		}
	}
	return latest, nil
}

func (r *clockinRepository) GetOpenByShiftAndWorker(_ context.Context, shiftID, workerID string) (*clockin.Clockin, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.clockins {
		if c.ShiftID == shiftID && c.WorkerID == workerID && c.Open() {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *clockinRepository) Update(_ context.Context, record clockin.Clockin) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.clockins[record.ID]
	if !ok {
		return clockin.ErrClockinNotFound
	}
	existing.EndedAt = record.EndedAt
	existing.LatitudeOut = record.LatitudeOut
	existing.LongitudeOut = record.LongitudeOut
	existing.AutomaticallyClosed = record.AutomaticallyClosed
	existing.UpdatedAt = time.Now()
	r.store.clockins[record.ID] = existing
	return nil
}

func (r *clockinRepository) ListOpen(_ context.Context) ([]clockin.Clockin, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []clockin.Clockin
	for _, c := range r.store.clockins {
		if c.Open() {
			records = append(records, c)
		}
	}
	sortClockins(records)
	return records, nil
}

func (r *clockinRepository) ListByEmployerStartedBetween(_ context.Context, employerID string, from, to time.Time) ([]clockin.Clockin, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []clockin.Clockin
	for _, c := range r.store.clockins {
		if c.EmployerID != employerID {
			continue
		}
		if c.StartedAt.Before(from) || c.StartedAt.After(to) {
			continue
		}
		records = append(records, c)
	}
	sortClockins(records)
	return records, nil
}

func sortClockins(records []clockin.Clockin) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].StartedAt.Equal(records[j].StartedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].StartedAt.Before(records[j].StartedAt)
	})
}
