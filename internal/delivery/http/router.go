package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/electromart/storefront/internal/config"
	"github.com/electromart/storefront/internal/delivery/http/handler"
	"github.com/electromart/storefront/internal/delivery/http/middleware"
	"github.com/electromart/storefront/internal/delivery/http/response"
	"github.com/electromart/storefront/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
	authHandler    *handler.AuthHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	userHandler    *handler.UserHandler
	sessions       middleware.SessionResolver
	logger         *logger.Logger
	cfg            *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	authHandler *handler.AuthHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
	sessions middleware.SessionResolver,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		productHandler: productHandler,
		reviewHandler:  reviewHandler,
		authHandler:    authHandler,
		cartHandler:    cartHandler,
		orderHandler:   orderHandler,
		userHandler:    userHandler,
		sessions:       sessions,
		logger:         log,
		cfg:            cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Identity(rt.sessions))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", rt.authHandler.Signup)
			r.Post("/login", rt.authHandler.Login)
			r.Post("/logout", rt.authHandler.Logout)
			r.Get("/me", rt.authHandler.Me)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", rt.productHandler.List)
			r.Get("/{id}", rt.productHandler.GetByID)
			r.Post("/{id}/reviews/{reviewID}/like", rt.reviewHandler.Like)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Post("/{id}/reviews", rt.reviewHandler.Create)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", rt.productHandler.Create)
				r.Put("/{id}", rt.productHandler.Update)
				r.Delete("/{id}", rt.productHandler.Delete)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/", rt.cartHandler.Get)
			r.Delete("/", rt.cartHandler.Clear)
			r.Post("/items", rt.cartHandler.AddItem)
			r.Put("/items/{productID}", rt.cartHandler.UpdateItem)
			r.Delete("/items/{productID}", rt.cartHandler.RemoveItem)
			r.Post("/checkout", rt.cartHandler.Checkout)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/", rt.orderHandler.ListMine)
			r.Get("/{id}", rt.orderHandler.GetByID)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/orders", rt.orderHandler.ListAll)
			r.Put("/orders/{id}/status", rt.orderHandler.UpdateStatus)
			r.Get("/users", rt.userHandler.List)
			r.Get("/stats", rt.orderHandler.Stats)
		})
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
