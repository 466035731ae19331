package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mesafina/mesafina-backend/api/controllers"
	"github.com/mesafina/mesafina-backend/api/middleware"
	"github.com/mesafina/mesafina-backend/internal/catalog"
	"github.com/mesafina/mesafina-backend/internal/ledger"
	"github.com/mesafina/mesafina-backend/internal/preferences"
	"github.com/mesafina/mesafina-backend/internal/reservations"
	"github.com/mesafina/mesafina-backend/internal/search"
	"github.com/mesafina/mesafina-backend/pkg/config"
	"github.com/mesafina/mesafina-backend/pkg/logger"
	"github.com/mesafina/mesafina-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	pubsubP controllers.Pinger,
	catalogService catalog.Service,
	ledgerService ledger.Service,
	reservationsService reservations.Service,
	searchService search.Service,
	preferencesService preferences.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	bookingPolicy := middleware.NewBookingRateLimitPolicy(
		"booking",
		cfg.RateLimit.BookingWindow,
		cfg.RateLimit.BookingIPLimit,
		cfg.RateLimit.BookingCustomerLimit,
	)
	searchPolicy := middleware.NewBookingRateLimitPolicy(
		"search",
		cfg.RateLimit.SearchWindow,
		cfg.RateLimit.SearchIPLimit,
		cfg.RateLimit.SearchCustomerLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient, pubsubP))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.ClientContext(logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", controllers.RestaurantList(catalogService, logg))
			r.Get("/{restaurantId}", controllers.RestaurantDetail(catalogService, logg))
			r.Get("/{restaurantId}/availability", controllers.AvailabilityCheck(ledgerService, logg))
		})

		r.With(middleware.BookingRateLimit(searchPolicy, redisClient, logg)).
			Post("/search", controllers.Search(searchService, logg))

		r.Route("/reservations", func(r chi.Router) {
			r.With(middleware.BookingRateLimit(bookingPolicy, redisClient, logg)).
				Post("/", controllers.ReservationCreate(reservationsService, logg))
			r.Get("/", controllers.ReservationList(reservationsService, logg))
			r.Route("/{bookingCode}", func(r chi.Router) {
				r.Get("/", controllers.ReservationDetail(reservationsService, logg))
				r.Patch("/", controllers.ReservationModify(reservationsService, logg))
				r.With(middleware.BookingRateLimit(bookingPolicy, redisClient, logg)).
					Post("/cancel", controllers.ReservationCancel(reservationsService, logg))
			})
		})

		r.Route("/preferences/{customerRef}", func(r chi.Router) {
			r.Get("/", controllers.PreferencesGet(preferencesService, logg))
			r.Put("/", controllers.PreferencesPut(preferencesService, logg))
			r.Delete("/", controllers.PreferencesDelete(preferencesService, logg))
		})
	})

	return r
}
