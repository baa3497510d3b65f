package order

import (
	"time"
)

// TrackingEntry is one row of the order's append-only history. Every status
// change appends exactly one entry; entries are never updated or removed.
type TrackingEntry struct {
	status      Status
	description string
	occurredAt  time.Time
}

// NewTrackingEntry creates a history row for a status change.
func NewTrackingEntry(status Status, description string, occurredAt time.Time) TrackingEntry {
	return TrackingEntry{
		status:      status,
		description: description,
		occurredAt:  occurredAt,
	}
}

// Status returns the status the order entered.
func (t TrackingEntry) Status() Status {
	return t.status
}

// Description returns the human-readable explanation of the change.
func (t TrackingEntry) Description() string {
	return t.description
}

// OccurredAt returns when the change happened.
func (t TrackingEntry) OccurredAt() time.Time {
	return t.occurredAt
}
