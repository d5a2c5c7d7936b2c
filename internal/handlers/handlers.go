package handlers

import (
	"ItemGate/internal/config"
	"ItemGate/internal/middleware"
	"ItemGate/internal/service"
	"ItemGate/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	authService *service.AuthService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRecovery)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithCORS)
	r.Use(middleware.WithGzip)

	// Handlers
	userHandler := NewUserHandler(authService, logger, config)
	itemHandler := NewItemHandler(itemService, logger, config)
	healthHandler := NewHealthHandler(logger)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// Auth
	r.Post("/login", userHandler.Login)

	// Items
	r.Route("/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Post("/", itemHandler.Create)
		r.Put("/{id}", itemHandler.Update)
		r.Delete("/{id}", itemHandler.Delete)
	})

	r.Get("/health", healthHandler.Health)

	// браузерный клиент
	r.Get("/", web.Handler().ServeHTTP)

	return &Handler{Router: r}
}
