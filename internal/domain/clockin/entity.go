package clockin

import "time"

// Clockin is a worker's attendance record for a shift. EndedAt == nil means
// the record is still open. At most one record per worker may be open at any
// time, across all shifts; the storage layer enforces this with a partial
// unique index and the service checks-and-sets it inside one transaction.
type Clockin struct {
	ID                  string
	ShiftID             string
	WorkerID            string
	EmployerID          string
	StartedAt           time.Time
	EndedAt             *time.Time
	LatitudeIn          float64
	LongitudeIn         float64
	LatitudeOut         *float64
	LongitudeOut        *float64
	AutomaticallyClosed bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Open reports whether the record has not been clocked out yet.
func (c Clockin) Open() bool {
	return c.EndedAt == nil
}
