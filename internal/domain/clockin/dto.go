package clockin

import (
	"time"

	"github.com/shiftwise/staffing-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	ShiftID   string  `json:"shift_id"`
	WorkerID  string  `json:"-"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	ShiftID   string  `json:"shift_id"`
	WorkerID  string  `json:"-"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockinResponse struct {
	ID                  string  `json:"id"`
	ShiftID             string  `json:"shift_id"`
	WorkerID            string  `json:"worker_id"`
	StartedAt           string  `json:"started_at"`
	EndedAt             *string `json:"ended_at,omitempty"`
	AutomaticallyClosed bool    `json:"automatically_closed"`
}

// ToResponse converts an entity to its wire form.
func ToResponse(c Clockin) ClockinResponse {
	resp := ClockinResponse{
		ID:                  c.ID,
		ShiftID:             c.ShiftID,
		WorkerID:            c.WorkerID,
		StartedAt:           c.StartedAt.UTC().Format(time.RFC3339),
		AutomaticallyClosed: c.AutomaticallyClosed,
	}
	if c.EndedAt != nil {
		ended := c.EndedAt.UTC().Format(time.RFC3339)
		resp.EndedAt = &ended
	}
	return resp
}
