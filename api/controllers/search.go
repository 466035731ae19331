package controllers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesafina/mesafina-backend/api/responses"
	"github.com/mesafina/mesafina-backend/api/validators"
	"github.com/mesafina/mesafina-backend/internal/search"
	pkgerrors "github.com/mesafina/mesafina-backend/pkg/errors"
	"github.com/mesafina/mesafina-backend/pkg/logger"
)

type SearchBody struct {
	SlotStart           string `json:"slotStart" validate:"required"`
	PartySize           int    `json:"partySize" validate:"required,min=1"`
	Cuisine             string `json:"cuisine,omitempty" validate:"omitempty,max=64"`
	Area                string `json:"area,omitempty" validate:"omitempty,max=128"`
	City                string `json:"city,omitempty" validate:"omitempty,max=64"`
	SeatingType         string `json:"seatingType,omitempty" validate:"omitempty,max=32"`
	RatingFloor         string `json:"ratingFloor,omitempty"`
	IncludeAlternatives bool   `json:"includeAlternatives,omitempty"`
}

func Search(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body SearchBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		slot, err := time.Parse(time.RFC3339, body.SlotStart)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "slotStart must be RFC3339").
					WithDetails(map[string]any{"field": "slotStart"}))
			return
		}

		input := search.Input{
			SlotStart:           slot,
			PartySize:           body.PartySize,
			Cuisine:             validators.SanitizeString(body.Cuisine, 64),
			Area:                validators.SanitizeString(body.Area, 128),
			City:                validators.SanitizeString(body.City, 64),
			SeatingType:         validators.SanitizeString(body.SeatingType, 32),
			IncludeAlternatives: body.IncludeAlternatives,
		}
		if body.RatingFloor != "" {
			floor, derr := decimal.NewFromString(body.RatingFloor)
			if derr != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "ratingFloor must be a decimal"))
				return
			}
			input.RatingFloor = &floor
		}

		result, err := svc.Search(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
