package controllers

import (
	"net/http"

	"github.com/mesafina/mesafina-backend/api/middleware"
	"github.com/mesafina/mesafina-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if ref := middleware.CustomerRefFromContext(r.Context()); ref != "" {
			payload["customer_ref"] = ref
		}
		responses.WriteSuccess(w, payload)
	}
}
