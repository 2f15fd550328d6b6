package model

import "time"

// Participant records one identity's code assignment.
// At most one record exists per normalized handle; once created it is
// immutable and holds its code reference forever.
type Participant struct {
	Handle    Handle
	Code      string
	Prize     string
	CreatedAt time.Time
}
