package catalog

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mesafina/mesafina-backend/pkg/db/models"
	"github.com/mesafina/mesafina-backend/pkg/errors"
)

type restaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	List(ctx context.Context, filter ListFilter) ([]models.Restaurant, error)
	SearchByArea(ctx context.Context, area string) ([]models.Restaurant, error)
}

type Service interface {
	GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context, filter ListFilter) ([]RestaurantDTO, error)
	ResolveArea(ctx context.Context, area string) ([]uuid.UUID, error)
}

type service struct {
	repo restaurantRepository
}

func NewService(repo restaurantRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog: repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeUnknownRestaurant, "restaurant not found")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "lookup restaurant")
	}
	return row, nil
}

func (s *service) ListRestaurants(ctx context.Context, filter ListFilter) ([]RestaurantDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list restaurants")
	}
	out := make([]RestaurantDTO, 0, len(rows))
	for i := range rows {
		out = append(out, RestaurantFromModel(&rows[i]))
	}
	return out, nil
}

// ResolveArea maps a free-text neighbourhood or city to restaurant IDs.
// An empty result is not an error; callers decide how to report it.
func (s *service) ResolveArea(ctx context.Context, area string) ([]uuid.UUID, error) {
	if area == "" {
		return nil, nil
	}
	rows, err := s.repo.SearchByArea(ctx, area)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "resolve area")
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}
	return ids, nil
}
