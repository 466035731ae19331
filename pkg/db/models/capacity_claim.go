package models

import (
	"time"

	"github.com/google/uuid"
)

// CapacityClaim is the explicit handle for a hold on an AvailabilityRecord.
// Exactly one live claim backs each active reservation; releasing deletes
// the row so a second release observes UnknownClaim instead of
// double-decrementing the counter.
type CapacityClaim struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"column:restaurant_id;type:uuid;not null;index:idx_capacity_claims_key"`
	SlotStart    time.Time `gorm:"column:slot_start;not null;index:idx_capacity_claims_key"`
	SeatingType  string    `gorm:"column:seating_type;not null;index:idx_capacity_claims_key"`
	PartySize    int       `gorm:"column:party_size;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
