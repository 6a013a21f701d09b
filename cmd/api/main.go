package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/electromart/storefront/docs"
	"github.com/electromart/storefront/internal/config"
	"github.com/electromart/storefront/internal/delivery/events"
	httpDelivery "github.com/electromart/storefront/internal/delivery/http"
	"github.com/electromart/storefront/internal/delivery/http/handler"
	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/cache"
	"github.com/electromart/storefront/internal/pkg/database"
	"github.com/electromart/storefront/internal/pkg/logger"
	cacheRepo "github.com/electromart/storefront/internal/repository/cache"
	"github.com/electromart/storefront/internal/repository/document"
	"github.com/electromart/storefront/internal/store"
	"github.com/electromart/storefront/internal/usecase/auth"
	"github.com/electromart/storefront/internal/usecase/cart"
	"github.com/electromart/storefront/internal/usecase/catalog"
	"github.com/electromart/storefront/internal/usecase/order"
)

// @title ElectroMart Storefront API
// @version 1.0
// @description Commerce backend for an electrical goods storefront: catalog, reviews, carts, orders and sessions.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@electromart.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Auth
// @tag.description Signup, login and session endpoints

// @tag.name Products
// @tag.description Catalog and review endpoints

// @tag.name Cart
// @tag.description Shopping cart and checkout endpoints

// @tag.name Orders
// @tag.description Order tracking and administration endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting ElectroMart Storefront API...")

	docStore, sessions, closers, err := buildStores(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", err)
	}
	defer func() {
		for _, c := range closers {
			c()
		}
	}()

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	productRepo := document.NewProductRepository(docStore, appLogger)
	orderRepo := document.NewOrderRepository(docStore, appLogger)
	userRepo := document.NewUserRepository(docStore, appLogger)
	cartRepo := document.NewCartRepository(docStore, appLogger)

	catalogService := catalog.NewService(productRepo, publisher, appLogger)
	authService := auth.NewService(userRepo, sessions, appLogger)
	cartService := cart.NewService(cartRepo, productRepo, orderRepo, appLogger)
	orderService := order.NewService(orderRepo, userRepo, productRepo, appLogger)

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startCancel()

	if cfg.Admin.Password != "" {
		if err := authService.EnsureAdmin(startCtx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			appLogger.Fatal("Failed to provision admin account", err)
		}
	} else {
		appLogger.Warn("ADMIN_PASSWORD not set, skipping admin provisioning")
	}

	if err := catalogService.Seed(startCtx); err != nil {
		appLogger.Fatal("Failed to seed catalog", err)
	}

	productHandler := handler.NewProductHandler(catalogService, appLogger)
	reviewHandler := handler.NewReviewHandler(catalogService, appLogger)
	authHandler := handler.NewAuthHandler(authService, appLogger)
	cartHandler := handler.NewCartHandler(cartService, appLogger)
	orderHandler := handler.NewOrderHandler(orderService, appLogger)
	userHandler := handler.NewUserHandler(authService, appLogger)

	router := httpDelivery.NewRouter(
		productHandler,
		reviewHandler,
		authHandler,
		cartHandler,
		orderHandler,
		userHandler,
		authService,
		cfg,
		appLogger,
	)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}

// buildStores wires the document store backend selected by STORE_BACKEND
// and a matching session store. Sessions live in Redis whenever Redis is
// reachable through the chosen backend, otherwise in process memory.
func buildStores(cfg *config.Config, appLogger *logger.Logger) (store.Store, domain.SessionStore, []func(), error) {
	var closers []func()

	switch cfg.Store.Backend {
	case "postgres":
		appLogger.Info("Connecting to PostgreSQL...")
		db, err := database.WaitForDB(cfg, 10, 2*time.Second)
		if err != nil {
			return nil, nil, closers, err
		}
		closers = append(closers, func() { db.Close() })
		appLogger.Info("Connected to PostgreSQL successfully")

		if err := database.RunMigrations(db); err != nil {
			return nil, nil, closers, err
		}

		appLogger.Info("Connecting to Redis...")
		redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
		if err != nil {
			return nil, nil, closers, err
		}
		closers = append(closers, func() { redisClient.Close() })
		appLogger.Info("Connected to Redis successfully")

		return store.NewPostgres(db), cacheRepo.NewSessionStore(redisClient, cfg.Session.TTL), closers, nil

	case "redis":
		appLogger.Info("Connecting to Redis...")
		redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
		if err != nil {
			return nil, nil, closers, err
		}
		closers = append(closers, func() { redisClient.Close() })
		appLogger.Info("Connected to Redis successfully")

		return store.NewRedis(redisClient), cacheRepo.NewSessionStore(redisClient, cfg.Session.TTL), closers, nil

	default:
		appLogger.Warn("Using in-memory storage, data will not survive restarts")
		return store.NewMemory(), cacheRepo.NewMemorySessionStore(cfg.Session.TTL), closers, nil
	}
}
