package reservations

import (
	"context"

	"gorm.io/gorm"

	"github.com/mesafina/mesafina-backend/pkg/db/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(gdb *gorm.DB) *Repository {
	return &Repository{db: gdb}
}

func (r *Repository) CreateTx(tx *gorm.DB, row *models.Reservation) error {
	return tx.Create(row).Error
}

func (r *Repository) SaveTx(tx *gorm.DB, row *models.Reservation) error {
	return tx.Save(row).Error
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	var row models.Reservation
	if err := r.db.WithContext(ctx).First(&row, "booking_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) FindByCodeTx(tx *gorm.DB, code string) (*models.Reservation, error) {
	var row models.Reservation
	if err := tx.First(&row, "booking_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByCustomer returns every reservation a customer has made, earliest
// slot first. Cancelled rows stay visible for the audit trail.
func (r *Repository) ListByCustomer(ctx context.Context, customerRef string) ([]models.Reservation, error) {
	var rows []models.Reservation
	err := r.db.WithContext(ctx).
		Where("customer_ref = ?", customerRef).
		Order("slot_start ASC, booking_code ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
