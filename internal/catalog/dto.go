package catalog

import (
	"github.com/google/uuid"

	"github.com/mesafina/mesafina-backend/pkg/db/models"
	"github.com/mesafina/mesafina-backend/pkg/types"
)

type RestaurantDTO struct {
	ID              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	Cuisines        types.StringList      `json:"cuisines"`
	Address         string                `json:"address"`
	City            string                `json:"city"`
	Latitude        *float64              `json:"latitude,omitempty"`
	Longitude       *float64              `json:"longitude,omitempty"`
	CapacityMax     int                   `json:"capacityMax"`
	SeatingTypes    types.StringList      `json:"seatingTypes"`
	SeatingCapacity types.SeatingCapacity `json:"seatingCapacity"`
	OpeningHour     string                `json:"openingHour"`
	ClosingHour     string                `json:"closingHour"`
	Rating          string                `json:"rating"`
}

func RestaurantFromModel(m *models.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:              m.ID,
		Name:            m.Name,
		Cuisines:        m.Cuisines,
		Address:         m.Address,
		City:            m.City,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		CapacityMax:     m.CapacityMax,
		SeatingTypes:    m.SeatingTypes,
		SeatingCapacity: m.SeatingCapacity,
		OpeningHour:     m.OpeningHour,
		ClosingHour:     m.ClosingHour,
		Rating:          m.Rating.StringFixed(1),
	}
}
