package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mesafina/mesafina-backend/api/responses"
	"github.com/mesafina/mesafina-backend/api/validators"
	"github.com/mesafina/mesafina-backend/internal/catalog"
	pkgerrors "github.com/mesafina/mesafina-backend/pkg/errors"
	"github.com/mesafina/mesafina-backend/pkg/logger"
)

func RestaurantList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := catalog.ListFilter{
			City:        validators.SanitizeString(r.URL.Query().Get("city"), 64),
			Cuisine:     validators.SanitizeString(r.URL.Query().Get("cuisine"), 64),
			SeatingType: validators.SanitizeString(r.URL.Query().Get("seating_type"), 32),
		}

		minCapacity, err := validators.ParseQueryInt(r, "min_capacity", 0, 0, 1000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.MinCapacity = minCapacity

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.Limit = limit

		if raw := strings.TrimSpace(r.URL.Query().Get("rating_floor")); raw != "" {
			floor, derr := decimal.NewFromString(raw)
			if derr != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "rating_floor must be a decimal"))
				return
			}
			filter.RatingFloor = &floor
		}

		rows, err := svc.ListRestaurants(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func RestaurantDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "restaurantId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "restaurant id must be a UUID"))
			return
		}

		row, err := svc.GetRestaurant(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.RestaurantFromModel(row))
	}
}
