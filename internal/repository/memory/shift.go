package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/domain/shift"
)

type shiftRepository struct {
	store *Store
}

func NewShiftRepository(store *Store) shift.ShiftRepository {
	return &shiftRepository{store: store}
}

func (r *shiftRepository) GetByID(_ context.Context, id string) (shift.Shift, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *shiftRepository) GetByIDs(_ context.Context, ids []string) (map[string]shift.Shift, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	shifts := make(map[string]shift.Shift, len(ids))
	for _, id := range ids {
		if s, ok := r.store.shifts[id]; ok {
			shifts[id] = s
		}
	}
	return shifts, nil
}

func (r *shiftRepository) ListExpirable(_ context.Context, now time.Time) ([]shift.Shift, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var shifts []shift.Shift
	for _, s := range r.store.shifts {
		if (s.Status == shift.StatusOpen || s.Status == shift.StatusFilled) && !s.EndingAt.After(now) {
			shifts = append(shifts, s)
		}
	}
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].EndingAt.Before(shifts[j].EndingAt) })
	return shifts, nil
}

func (r *shiftRepository) UpdateStatus(_ context.Context, id string, status shift.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.shifts[id]
	if !ok {
		return shift.ErrShiftNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	r.store.shifts[id] = s
	return nil
}

type inviteRepository struct {
	store *Store
}

func NewInviteRepository(store *Store) shift.InviteRepository {
	return &inviteRepository{store: store}
}

func (r *inviteRepository) ListPendingByShiftStatus(_ context.Context, status shift.Status) ([]shift.Invite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var invites []shift.Invite
	for _, inv := range r.store.invites {
		if inv.Status != shift.InviteStatusPending {
			continue
		}
		if s, ok := r.store.shifts[inv.ShiftID]; ok && s.Status == status {
			invites = append(invites, inv)
		}
	}
	sort.Slice(invites, func(i, j int) bool { return invites[i].ID < invites[j].ID })
	return invites, nil
}

func (r *inviteRepository) UpdateStatus(_ context.Context, id string, status shift.InviteStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	inv, ok := r.store.invites[id]
	if !ok {
		return shift.ErrInviteNotFound
	}
	inv.Status = status
	inv.UpdatedAt = time.Now()
	r.store.invites[id] = inv
	return nil
}

type applicationRepository struct {
	store *Store
}

func NewApplicationRepository(store *Store) shift.ApplicationRepository {
	return &applicationRepository{store: store}
}

func (r *applicationRepository) DeleteByShiftStatuses(_ context.Context, statuses []shift.Status) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	match := make(map[shift.Status]bool, len(statuses))
	for _, st := range statuses {
		match[st] = true
	}

	var removed int64
	for id, app := range r.store.applications {
		if s, ok := r.store.shifts[app.ShiftID]; ok && match[s.Status] {
			delete(r.store.applications, id)
			removed++
		}
	}
	return removed, nil
}
