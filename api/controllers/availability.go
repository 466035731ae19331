package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mesafina/mesafina-backend/api/responses"
	"github.com/mesafina/mesafina-backend/api/validators"
	"github.com/mesafina/mesafina-backend/internal/ledger"
	pkgerrors "github.com/mesafina/mesafina-backend/pkg/errors"
	"github.com/mesafina/mesafina-backend/pkg/logger"
)

func AvailabilityCheck(svc ledger.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurantID, err := uuid.Parse(chi.URLParam(r, "restaurantId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "restaurant id must be a UUID"))
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("slot_start"))
		slot, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "slot_start must be RFC3339").
					WithDetails(map[string]any{"field": "slot_start"}))
			return
		}

		partySize, err := validators.ParseQueryInt(r, "party_size", 0, 1, 1000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		avail, err := svc.CheckAvailability(r.Context(), ledger.ReserveInput{
			RestaurantID: restaurantID,
			SlotStart:    slot,
			SeatingType:  validators.SanitizeString(r.URL.Query().Get("seating_type"), 32),
			PartySize:    partySize,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, avail)
	}
}
