package router

import (
	"net/http"

	"github.com/janidumadawa/GameStore/internal/config"
	"github.com/janidumadawa/GameStore/internal/handlers"
	"github.com/janidumadawa/GameStore/internal/middleware"
	"github.com/janidumadawa/GameStore/internal/services"
	"github.com/janidumadawa/GameStore/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"
)

// route binds a handler to its declared capability. The guard enforces the
// capability before the handler runs, so the policy lives in one table.
type route struct {
	method     string
	path       string
	handler    http.HandlerFunc
	capability middleware.Capability
}

func SetupRouter(database *mongo.Database, cfg config.Config, logger zerolog.Logger) *mux.Router {
	userStore := store.NewUserStore(database)
	gameStore := store.NewGameStore(database)
	newsStore := store.NewNewsStore(database)

	authService := services.NewAuthService(cfg.JWTSecret, logger)
	userService := services.NewUserService(userStore, logger)
	gameService := services.NewGameService(gameStore, logger)
	newsService := services.NewNewsService(newsStore, logger)

	authHandler := handlers.NewAuthHandler(userService, authService, logger)
	gameHandler := handlers.NewGameHandler(gameService, logger)
	newsHandler := handlers.NewNewsHandler(newsService, logger)

	guard := middleware.NewGuard(authService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api").Subrouter()

	routes := []route{
		{"POST", "/auth/register", authHandler.Register, middleware.CapabilityPublic},
		{"POST", "/auth/login", authHandler.Login, middleware.CapabilityPublic},

		{"GET", "/games", gameHandler.List, middleware.CapabilityPublic},
		{"GET", "/games/{id}", gameHandler.Get, middleware.CapabilityPublic},
		{"POST", "/games", gameHandler.Create, middleware.CapabilityAdmin},
		{"PUT", "/games/{id}", gameHandler.Update, middleware.CapabilityAdmin},
		{"DELETE", "/games/{id}", gameHandler.Delete, middleware.CapabilityAdmin},

		{"GET", "/news", newsHandler.List, middleware.CapabilityPublic},
		{"GET", "/news/{id}", newsHandler.Get, middleware.CapabilityPublic},
		{"POST", "/news", newsHandler.Create, middleware.CapabilityAdmin},
		{"PUT", "/news/{id}", newsHandler.Update, middleware.CapabilityAdmin},
		{"DELETE", "/news/{id}", newsHandler.Delete, middleware.CapabilityAdmin},
	}

	for _, rt := range routes {
		api.HandleFunc(rt.path, guard.Protect(rt.capability, rt.handler)).Methods(rt.method)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
