package api

import (
	"net/http"
	"time"

	"newgen_backend/internal/api/handler"
	"newgen_backend/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(
	authService *service.AuthService,
	profileService *service.ProfileService,
	careerService *service.CareerService,
	chatService *service.ChatService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	// The frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Liveness endpoints. /test is the plain-text probe clients already rely on.
	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Server is working!"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Endpoint paths are part of the compatibility contract; no version prefix.
	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterRoutes(r)

	profileHandler := handler.NewProfileHandler(profileService)
	profileHandler.RegisterRoutes(r)

	careerHandler := handler.NewCareerHandler(careerService)
	careerHandler.RegisterRoutes(r)

	chatHandler := handler.NewChatHandler(chatService)
	chatHandler.RegisterRoutes(r)

	return r
}
