package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mesafina/mesafina-backend/pkg/types"
)

// Restaurant is the catalog record capacity accounting hangs off.
// Mutated only by catalog management, never inside a booking transaction.
type Restaurant struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	Name            string                `gorm:"column:name;not null"`
	Cuisines        types.StringList      `gorm:"column:cuisines;type:jsonb;not null"`
	Address         string                `gorm:"column:address;not null"`
	City            string                `gorm:"column:city;not null;index"`
	Latitude        *float64              `gorm:"column:latitude"`
	Longitude       *float64              `gorm:"column:longitude"`
	CapacityMax     int                   `gorm:"column:capacity_max;not null"`
	SeatingTypes    types.StringList      `gorm:"column:seating_types;type:jsonb;not null"`
	SeatingCapacity types.SeatingCapacity `gorm:"column:seating_capacity;type:jsonb;not null"`
	OpeningHour     string                `gorm:"column:opening_hour;not null"`
	ClosingHour     string                `gorm:"column:closing_hour;not null"`
	Rating          decimal.Decimal       `gorm:"column:rating;type:numeric(3,2);not null"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

// CapacityFor returns the seat total backing an availability key.
// An empty seating type draws from the whole room.
func (r Restaurant) CapacityFor(seatingType string) int {
	if seatingType == "" {
		return r.CapacityMax
	}
	if seats, ok := r.SeatingCapacity[seatingType]; ok {
		return seats
	}
	return 0
}

// WithinOpeningHours reports whether a slot's time of day falls inside the
// service window. A closing hour at or before the opening hour means the
// window wraps past midnight.
func (r Restaurant) WithinOpeningHours(slot time.Time) bool {
	open, okOpen := parseClock(r.OpeningHour)
	close_, okClose := parseClock(r.ClosingHour)
	if !okOpen || !okClose {
		return true
	}
	minutes := slot.Hour()*60 + slot.Minute()
	if close_ <= open {
		return minutes >= open || minutes < close_
	}
	return minutes >= open && minutes < close_
}

func parseClock(value string) (int, bool) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
