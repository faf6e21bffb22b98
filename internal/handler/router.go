package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Auth        *Auth
	AuthAPI     *AuthHandler
	Events      *EventHandler
	Reservation *ReservationHandler
	Guests      *GuestHandler
	Carousel    *CarouselHandler
	Admin       *AdminHandler
}

// NewRouter builds the full route tree: public discovery and booking,
// hoster management behind hoster auth, and platform operations behind
// admin auth.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger)
	r.Use(CORS)

	r.Get("/health", HealthCheck)

	// Public
	r.Route("/auth", func(r chi.Router) {
		r.Post("/hosters/register", h.AuthAPI.RegisterHoster)
		r.Post("/hosters/login", h.AuthAPI.LoginHoster)
		r.Post("/admin/login", h.AuthAPI.LoginAdmin)
	})
	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.Events.Discover)
		r.Get("/categories", h.Events.Categories)
		r.Get("/{id}", h.Events.GetPublic)
	})
	r.Get("/carousel", h.Carousel.Public)
	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", h.Reservation.Create)
		r.Get("/", h.Reservation.Lookup)
		r.Get("/{id}", h.Reservation.Get)
		r.Get("/{id}/ticket", h.Reservation.Ticket)
	})
	r.Post("/guests", h.Guests.Admit)

	// Hoster
	r.Route("/hoster", func(r chi.Router) {
		r.Use(h.Auth.RequireHoster)

		r.Get("/me", h.AuthAPI.Me)
		r.Get("/dashboard", h.Admin.HosterDashboard)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.Events.ListMine)
			r.Post("/", h.Events.Create)
			r.Put("/{id}", h.Events.Update)
			r.Delete("/{id}", h.Events.Delete)
			r.Get("/{id}/guests", h.Guests.ListByEvent)
			r.Get("/{id}/guests/stats", h.Guests.Stats)
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", h.Reservation.ListMine)
			r.Patch("/{id}/status", h.Reservation.SetStatus)
			r.Patch("/{id}/payment", h.Reservation.SetPaymentStatus)
		})

		r.Route("/guests", func(r chi.Router) {
			r.Patch("/{id}", h.Guests.Update)
			r.Post("/{id}/checkin", h.Guests.CheckIn)
			r.Delete("/{id}", h.Guests.Remove)
		})
	})

	// Admin
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.Auth.RequireAdmin)

		r.Get("/dashboard", h.Admin.Dashboard)

		r.Route("/hosters", func(r chi.Router) {
			r.Get("/", h.Admin.ListHosters)
			r.Get("/{id}", h.Admin.GetHoster)
			r.Patch("/{id}/status", h.Admin.SetHosterStatus)
			r.Patch("/{id}/commission", h.Admin.SetCommissionRate)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.Events.AdminList)
			r.Patch("/{id}/status", h.Events.SetStatus)
			r.Delete("/{id}", h.Events.Delete)
		})

		r.Get("/reservations", h.Reservation.AdminList)

		r.Route("/carousel", func(r chi.Router) {
			r.Get("/", h.Carousel.All)
			r.Post("/{eventID}", h.Carousel.Feature)
			r.Delete("/{eventID}", h.Carousel.Unfeature)
			r.Put("/order", h.Carousel.Reorder)
		})
	})

	return r
}
