package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/andrewpaige1/wisdom-compass-api/handlers"
	"github.com/andrewpaige1/wisdom-compass-api/metrics"
	"github.com/andrewpaige1/wisdom-compass-api/middleware"
)

// Routes is everything NewRouter mounts.
type Routes struct {
	API            *handlers.DBHandler
	Auth           *handlers.AuthHandler
	Authenticator  *middleware.Authenticator
	Metrics        *metrics.Recorder
	Gatherer       prometheus.Gatherer
	Logger         *zap.Logger
	AllowedOrigins []string
}

func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(rt.Logger))
	r.Use(middleware.Metrics(rt.Metrics))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			rt.Logger.Error("Failed to write health check response", zap.Error(err))
		}
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(rt.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		// Auth
		r.Get("/login", rt.Auth.Login)
		r.Get("/callback", rt.Auth.Callback)
		r.Get("/logout", rt.Auth.Logout)

		// Catalog
		r.Get("/characters", rt.API.GetCharacters)
		r.Get("/philosophies", rt.API.GetPhilosophies)

		r.Group(func(r chi.Router) {
			r.Use(rt.Authenticator.RequireUser)

			r.Get("/auth/user", rt.API.GetAuthUser)

			// Setup
			r.Post("/setup/characters", rt.API.SaveCharacters)
			r.Post("/setup/philosophies", rt.API.SavePhilosophies)
			r.Post("/setup/complete", rt.API.CompleteSetup)

			// Settings
			r.Get("/settings/preferences", rt.API.GetPreferences)
			r.Put("/settings/characters", rt.API.SaveCharacters)
			r.Put("/settings/philosophies", rt.API.SavePhilosophies)

			// Quotes
			r.Get("/quotes/daily", rt.API.GetDailyQuote)
			r.Get("/quotes/all", rt.API.GetAllQuotes)
			r.Get("/quotes/suggestions/{text}", rt.API.GetQuoteSuggestions)
			r.Post("/quotes/{id}/pin", rt.API.PinQuote)

			// Journal
			r.Get("/journal", rt.API.GetJournalEntries)
			r.Post("/journal", rt.API.CreateJournalEntry)
			r.Patch("/journal/{id}/pin", rt.API.ToggleJournalPin)

			// Reminders
			r.Get("/reminders", rt.API.GetReminders)
			r.Post("/reminders", rt.API.CreateReminder)
			r.Patch("/reminders/{id}/toggle", rt.API.ToggleReminder)
		})
	})

	return cors.New(cors.Options{
		AllowedOrigins:   rt.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(r)
}
