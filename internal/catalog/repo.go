package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mesafina/mesafina-backend/pkg/db/models"
)

// ListFilter narrows the catalog listing. Zero values mean "no constraint".
// Cuisine and seating-type matching happens in memory because both columns
// are jsonb lists; city, capacity and rating are pushed into SQL.
type ListFilter struct {
	City        string
	Cuisine     string
	SeatingType string
	MinCapacity int
	RatingFloor *decimal.Decimal
	IDs         []uuid.UUID
	Limit       int
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	var row models.Restaurant
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*models.Restaurant, error) {
	var row models.Restaurant
	if err := tx.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Restaurant, error) {
	q := r.db.WithContext(ctx).Model(&models.Restaurant{})
	if filter.City != "" {
		q = q.Where("LOWER(city) = ?", strings.ToLower(filter.City))
	}
	if filter.MinCapacity > 0 {
		q = q.Where("capacity_max >= ?", filter.MinCapacity)
	}
	if filter.RatingFloor != nil {
		q = q.Where("rating >= ?", filter.RatingFloor)
	}
	if len(filter.IDs) > 0 {
		q = q.Where("id IN ?", filter.IDs)
	}

	var rows []models.Restaurant
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := rows[:0]
	for i := range rows {
		if filter.Cuisine != "" && !rows[i].Cuisines.Contains(filter.Cuisine) {
			continue
		}
		if filter.SeatingType != "" && !rows[i].SeatingTypes.Contains(filter.SeatingType) {
			continue
		}
		out = append(out, rows[i])
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

// SearchByArea matches a free-text area against city names and addresses.
func (r *Repository) SearchByArea(ctx context.Context, area string) ([]models.Restaurant, error) {
	needle := "%" + strings.ToLower(strings.TrimSpace(area)) + "%"
	var rows []models.Restaurant
	err := r.db.WithContext(ctx).
		Where("LOWER(city) LIKE ? OR LOWER(address) LIKE ?", needle, needle).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
