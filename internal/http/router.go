package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	clientHandler "github.com/pinklegion/stand/internal/http/client"
	contractHandler "github.com/pinklegion/stand/internal/http/contract"
	paymentHandler "github.com/pinklegion/stand/internal/http/payment"
	reportHandler "github.com/pinklegion/stand/internal/http/report"
	validationHandler "github.com/pinklegion/stand/internal/http/validation"
	vehicleHandler "github.com/pinklegion/stand/internal/http/vehicle"
)

func New(
	clientsV1 *clientHandler.Handler,
	vehiclesV1 *vehicleHandler.Handler,
	contractsV1 *contractHandler.Handler,
	paymentsV1 *paymentHandler.Handler,
	reportsV1 *reportHandler.Handler,
	validationV1 *validationHandler.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clientsV1.Routes(r)
		})

		r.Route("/cars", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			vehiclesV1.Routes(r)
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			contractsV1.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			paymentsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/validate", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			validationV1.Routes(r)
		})
	})

	return router
}
