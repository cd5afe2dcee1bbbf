package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/convert/today
//	GET /api/v1/convert/{date}
//	GET /api/v1/tzolkin/calendar|next|last|diff
//	GET /api/v1/haab/calendar|next|last|diff
func SetupRoutes(handlers *Handlers, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/convert/today", handlers.ConvertToday)
		r.Get("/convert/{date}", handlers.ConvertDate)

		r.Route("/tzolkin", func(r chi.Router) {
			r.Get("/calendar", handlers.TzolkinCalendarList)
			r.Get("/next", handlers.TzolkinNext)
			r.Get("/last", handlers.TzolkinLast)
			r.Get("/diff", handlers.TzolkinDiff)
		})

		r.Route("/haab", func(r chi.Router) {
			r.Get("/calendar", handlers.HaabCalendarList)
			r.Get("/next", handlers.HaabNext)
			r.Get("/last", handlers.HaabLast)
			r.Get("/diff", handlers.HaabDiff)
		})
	})

	return r
}
