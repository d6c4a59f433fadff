package order

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
	// created through the aggregate or RestoreHistoryEntry.
	ErrHistoryEntryIsNotConstructed = errors.New(
		"HistoryEntry must be created via the order aggregate or RestoreHistoryEntry",
	)
)

// HistoryEntry is one record of the order's append-only status ledger:
// the status value and the time it was recorded.
//
// Entries are created exclusively by the aggregate, one at order creation
// and one per genuine status change. They are never updated or deleted, and
// the type exposes no mutating operation.
type HistoryEntry struct {
	id         kernel.UUID
	status     Status
	recordedAt time.Time

	isConstructed bool
}

// RestoreHistoryEntry reconstructs a ledger entry from persistence.
func RestoreHistoryEntry(id kernel.UUID, status Status, recordedAt time.Time) (HistoryEntry, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{
		id:            id,
		status:        status,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// newHistoryEntry creates a fresh ledger entry. Only the aggregate appends.
func newHistoryEntry(status Status, now time.Time) HistoryEntry {
	return HistoryEntry{
		id:            kernel.NewUUID(),
		status:        status,
		recordedAt:    now.UTC(),
		isConstructed: true,
	}
}

// Validate ensures the entry was properly constructed.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h HistoryEntry) ID() kernel.UUID {
	return h.id
}

// Status returns the recorded status value.
func (h HistoryEntry) Status() Status {
	return h.status
}

// RecordedAt returns the append time of the entry.
func (h HistoryEntry) RecordedAt() time.Time {
	return h.recordedAt
}
