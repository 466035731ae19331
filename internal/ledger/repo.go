package ledger

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mesafina/mesafina-backend/pkg/db"
	"github.com/mesafina/mesafina-backend/pkg/db/models"
)

// SlotKey identifies one availability row. SeatingType "" means the
// whole room.
type SlotKey struct {
	RestaurantID uuid.UUID
	SlotStart    time.Time
	SeatingType  string
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(gdb *gorm.DB) *Repository {
	return &Repository{db: gdb}
}

func (r *Repository) GetRecord(ctx context.Context, key SlotKey) (*models.AvailabilityRecord, error) {
	var row models.AvailabilityRecord
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND slot_start = ? AND seating_type = ?",
			key.RestaurantID, key.SlotStart, key.SeatingType).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// EnsureRecordTx materializes the availability row for a key, sizing it
// from the restaurant's capacity template. A concurrent insert of the
// same key is absorbed by re-reading after a unique violation.
func (r *Repository) EnsureRecordTx(tx *gorm.DB, restaurant *models.Restaurant, key SlotKey) (*models.AvailabilityRecord, error) {
	var row models.AvailabilityRecord
	err := tx.Where("restaurant_id = ? AND slot_start = ? AND seating_type = ?",
		key.RestaurantID, key.SlotStart, key.SeatingType).
		First(&row).Error
	if err == nil {
		return &row, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row = models.AvailabilityRecord{
		RestaurantID:  key.RestaurantID,
		SlotStart:     key.SlotStart,
		SeatingType:   key.SeatingType,
		CapacityTotal: restaurant.CapacityFor(key.SeatingType),
		SeatsReserved: 0,
	}
	if err := tx.Create(&row).Error; err != nil {
		if db.IsUniqueViolation(err, "") {
			rerr := tx.Where("restaurant_id = ? AND slot_start = ? AND seating_type = ?",
				key.RestaurantID, key.SlotStart, key.SeatingType).
				First(&row).Error
			if rerr != nil {
				return nil, rerr
			}
			return &row, nil
		}
		return nil, err
	}
	return &row, nil
}

// ReserveSeatsTx atomically takes partySize seats from a key. It returns
// false when the guarded update matches no row, meaning the remaining
// capacity is short.
func (r *Repository) ReserveSeatsTx(tx *gorm.DB, key SlotKey, partySize int) (bool, error) {
	result := tx.Model(&models.AvailabilityRecord{}).
		Where("restaurant_id = ? AND slot_start = ? AND seating_type = ? AND seats_reserved + ? <= capacity_total",
			key.RestaurantID, key.SlotStart, key.SeatingType, partySize).
		Update("seats_reserved", gorm.Expr("seats_reserved + ?", partySize))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ReleaseSeatsTx returns partySize seats to a key. The guard keeps the
// counter from going negative if the ledger is ever inconsistent.
func (r *Repository) ReleaseSeatsTx(tx *gorm.DB, key SlotKey, partySize int) (bool, error) {
	result := tx.Model(&models.AvailabilityRecord{}).
		Where("restaurant_id = ? AND slot_start = ? AND seating_type = ? AND seats_reserved - ? >= 0",
			key.RestaurantID, key.SlotStart, key.SeatingType, partySize).
		Update("seats_reserved", gorm.Expr("seats_reserved - ?", partySize))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) CreateClaimTx(tx *gorm.DB, claim *models.CapacityClaim) error {
	if claim.ID == uuid.Nil {
		claim.ID = uuid.New()
	}
	return tx.Create(claim).Error
}

func (r *Repository) FindClaimTx(tx *gorm.DB, id uuid.UUID) (*models.CapacityClaim, error) {
	var row models.CapacityClaim
	if err := tx.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteClaimTx removes a claim row and reports whether it existed.
// The delete doubles as the release guard: under concurrent releases
// exactly one caller sees true.
func (r *Repository) DeleteClaimTx(tx *gorm.DB, id uuid.UUID) (bool, error) {
	result := tx.Delete(&models.CapacityClaim{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
