package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mesafina/mesafina-backend/api/responses"
	"github.com/mesafina/mesafina-backend/internal/preferences"
	pkgerrors "github.com/mesafina/mesafina-backend/pkg/errors"
	"github.com/mesafina/mesafina-backend/pkg/logger"
)

func customerRefParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "customerRef"))
}

// PreferencesGet returns the stored preference map for a customer.
// Missing customers come back as an empty object, not a 404.
func PreferencesGet(svc preferences.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := svc.Get(r.Context(), customerRefParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, prefs)
	}
}

// PreferencesPut merges the supplied keys into the customer's stored
// preference map. Keys the body does not mention are left alone.
func PreferencesPut(svc preferences.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body preferences.Preferences
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "invalid request body").
					WithDetails(map[string]string{"reason": err.Error()}))
			return
		}
		if err := svc.Put(r.Context(), customerRefParam(r), body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PreferencesDelete forgets everything stored for a customer.
func PreferencesDelete(svc preferences.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), customerRefParam(r)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
