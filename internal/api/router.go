package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/hydrobuddy/hydro-tracker/docs"
	"github.com/hydrobuddy/hydro-tracker/internal/api/handler"
	"github.com/hydrobuddy/hydro-tracker/internal/api/middleware"
)

type Router struct {
	profileHandler  *handler.ProfileHandler
	drinkLogHandler *handler.DrinkLogHandler
	statsHandler    *handler.StatsHandler
	analysisHandler *handler.AnalysisHandler
	reminderHandler *handler.ReminderHandler
	allowedOrigins  []string
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	drinkLogHandler *handler.DrinkLogHandler,
	statsHandler *handler.StatsHandler,
	analysisHandler *handler.AnalysisHandler,
	reminderHandler *handler.ReminderHandler,
	allowedOrigins []string,
) *Router {
	return &Router{
		profileHandler:  profileHandler,
		drinkLogHandler: drinkLogHandler,
		statsHandler:    statsHandler,
		analysisHandler: analysisHandler,
		reminderHandler: reminderHandler,
		allowedOrigins:  allowedOrigins,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(middleware.Monitoring)
	r.Use(middleware.RateLimit)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Profile (singleton resource)
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", rt.profileHandler.Get)
			r.Put("/", rt.profileHandler.Save)
			r.Get("/recommended-goal", rt.profileHandler.RecommendedGoal)
		})

		// Drink logs
		r.Route("/drinks", func(r chi.Router) {
			r.Post("/", rt.drinkLogHandler.Create)
			r.Get("/", rt.drinkLogHandler.List)
		})

		// Stats
		r.Route("/stats", func(r chi.Router) {
			r.Get("/today", rt.statsHandler.Today)
			r.Get("/week", rt.statsHandler.Week)
		})

		// AI coaching
		r.Get("/analysis", rt.analysisHandler.Analyze)
		r.Post("/analysis/feedback", rt.analysisHandler.Feedback)
		r.Route("/chat/sessions", func(r chi.Router) {
			r.Post("/", rt.analysisHandler.CreateChatSession)
			r.Post("/{sessionId}/messages", rt.analysisHandler.SendChatMessage)
		})

		// Reminder
		r.Get("/reminder", rt.reminderHandler.Status)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})

	return c.Handler(r)
}
