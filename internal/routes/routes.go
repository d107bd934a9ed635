package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"JAPLAN_BACK-END/internal/config"
	"JAPLAN_BACK-END/internal/handlers"
	"JAPLAN_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	googleAuthHandler *handlers.GoogleAuthHandler,
	plansHandler *handlers.PlansHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(authHandler.Profile, &cfg.JWT))
	http.HandleFunc("/api/auth/google/login", googleAuthHandler.GoogleLogin)
	http.HandleFunc("/api/auth/google/callback", googleAuthHandler.GoogleCallback)

	// Plan routes: anonymous allowed, owner attached when a token is present
	http.HandleFunc("/api/plans", middleware.OptionalAuth(plansHandler.Collection, &cfg.JWT))
	http.HandleFunc("/api/plans/", middleware.OptionalAuth(plansHandler.Item, &cfg.JWT))

	// Catalog palette
	http.HandleFunc("/api/catalog", catalogHandler.Catalog)

	// Swagger UI
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Japlan backend is running."))
}
