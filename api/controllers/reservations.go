package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mesafina/mesafina-backend/api/middleware"
	"github.com/mesafina/mesafina-backend/api/responses"
	"github.com/mesafina/mesafina-backend/api/validators"
	"github.com/mesafina/mesafina-backend/internal/reservations"
	pkgerrors "github.com/mesafina/mesafina-backend/pkg/errors"
	"github.com/mesafina/mesafina-backend/pkg/logger"
)

type CreateReservationBody struct {
	RestaurantID string `json:"restaurantId" validate:"required,uuid4"`
	SlotStart    string `json:"slotStart" validate:"required"`
	SeatingType  string `json:"seatingType,omitempty" validate:"omitempty,max=32"`
	PartySize    int    `json:"partySize" validate:"required,min=1"`
	CustomerRef  string `json:"customerRef,omitempty" validate:"omitempty,max=128"`
}

type ModifyReservationBody struct {
	SlotStart   *string `json:"slotStart,omitempty"`
	SeatingType *string `json:"seatingType,omitempty" validate:"omitempty,max=32"`
	PartySize   *int    `json:"partySize,omitempty" validate:"omitempty,min=1"`
}

func ReservationCreate(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body CreateReservationBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		restaurantID, err := uuid.Parse(body.RestaurantID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "restaurantId must be a UUID"))
			return
		}
		slot, err := time.Parse(time.RFC3339, body.SlotStart)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "slotStart must be RFC3339").
					WithDetails(map[string]any{"field": "slotStart"}))
			return
		}

		customerRef := strings.TrimSpace(body.CustomerRef)
		if customerRef == "" {
			customerRef = middleware.CustomerRefFromContext(r.Context())
		}

		dto, err := svc.Create(r.Context(), reservations.CreateInput{
			RestaurantID: restaurantID,
			SlotStart:    slot,
			SeatingType:  body.SeatingType,
			PartySize:    body.PartySize,
			CustomerRef:  customerRef,
			Channel:      middleware.ChannelFromContext(r.Context()),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func ReservationModify(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body ModifyReservationBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := reservations.ModifyInput{
			SeatingType: body.SeatingType,
			PartySize:   body.PartySize,
		}
		if body.SlotStart != nil {
			slot, err := time.Parse(time.RFC3339, *body.SlotStart)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "slotStart must be RFC3339").
						WithDetails(map[string]any{"field": "slotStart"}))
				return
			}
			input.SlotStart = &slot
		}

		dto, err := svc.Modify(r.Context(), bookingCodeParam(r), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func ReservationCancel(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, err := svc.Cancel(r.Context(), bookingCodeParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func ReservationDetail(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, err := svc.GetByCode(r.Context(), bookingCodeParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func ReservationList(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerRef := validators.SanitizeString(r.URL.Query().Get("customer_ref"), 128)
		if customerRef == "" {
			customerRef = middleware.CustomerRefFromContext(r.Context())
		}

		rows, err := svc.ListByCustomer(r.Context(), customerRef)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func bookingCodeParam(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "bookingCode")))
}
