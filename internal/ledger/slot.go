package ledger

import (
	"time"

	"github.com/mesafina/mesafina-backend/pkg/errors"
)

// NormalizeSlot converts a requested time to UTC and floors it to the
// booking granularity. All ledger keys use normalized slots so the same
// wall-clock request always lands on the same row.
func NormalizeSlot(ts time.Time, granularity time.Duration) time.Time {
	if granularity <= 0 {
		granularity = 30 * time.Minute
	}
	return ts.UTC().Truncate(granularity)
}

// ValidateSlotInFuture rejects slots at or before the current time. A
// slot beginning exactly now has already started and cannot be booked.
func ValidateSlotInFuture(slot, now time.Time) error {
	if !slot.After(now.UTC()) {
		return errors.New(errors.CodeSlotInPast, "slot start is in the past").
			WithDetails(map[string]any{"slotStart": slot.Format(time.RFC3339)})
	}
	return nil
}
