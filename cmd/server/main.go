package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/vitrinedev/vitrine/internal"
	"github.com/vitrinedev/vitrine/internal/billing"
	"github.com/vitrinedev/vitrine/internal/checkout"
	"github.com/vitrinedev/vitrine/internal/gateway"
	adminhandler "github.com/vitrinedev/vitrine/internal/handler/admin"
	"github.com/vitrinedev/vitrine/internal/handler/storefront"
	"github.com/vitrinedev/vitrine/internal/middleware"
	"github.com/vitrinedev/vitrine/internal/router"
	"github.com/vitrinedev/vitrine/internal/routes"
	"github.com/vitrinedev/vitrine/internal/service"
	"github.com/vitrinedev/vitrine/internal/session"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Session store: Redis when configured, in-memory otherwise
	var sessions session.Store
	if cfg.Redis.URL != "" {
		redisStore, err := session.NewRedisStore(cfg.Redis.URL, cfg.Redis.SessionTTL)
		if err != nil {
			return fmt.Errorf("redis session store failed: %w", err)
		}
		defer redisStore.Close()
		sessions = redisStore
		logger.Info("Session store initialized", "backend", "redis")
	} else {
		sessions = session.NewMemoryStore()
		logger.Info("Session store initialized", "backend", "memory")
	}

	// Commerce backend client
	backendMetrics := gateway.NewMetrics("vitrine")
	backend := gateway.New(gateway.Config{
		BaseURL:        cfg.Backend.BaseURL,
		Timeout:        cfg.Backend.Timeout,
		BreakerEnabled: cfg.Backend.BreakerEnabled,
	}, sessions, backendMetrics, logger)
	logger.Info("Commerce backend client initialized", "base_url", cfg.Backend.BaseURL)

	// Stripe billing provider
	billingProvider, err := billing.NewStripeProvider(billing.StripeConfig{
		APIKey: cfg.Stripe.SecretKey,
	})
	if err != nil {
		return fmt.Errorf("stripe provider failed: %w", err)
	}
	logger.Info("Stripe billing provider initialized")

	// Services
	cartService := service.NewCartService(backend, logger)
	catalogService := service.NewCatalogService(backend, logger)
	accountService := service.NewAccountService(backend, sessions, logger)
	adminService := service.NewAdminService(backend, catalogService, cartService, logger)

	// Checkout flows, released when their session is cleared
	checkoutManager := checkout.NewManager(billingProvider, cartService, logger)
	unsubscribe := checkoutManager.WatchSessions(sessions)
	defer unsubscribe()

	// Route dependencies
	storefrontDeps := routes.StorefrontDeps{
		AuthHandler:     storefront.NewAuthHandler(accountService),
		ProductHandler:  storefront.NewProductHandler(catalogService),
		CartHandler:     storefront.NewCartHandler(cartService),
		CheckoutHandler: storefront.NewCheckoutHandler(checkoutManager, cfg.Stripe.PublishableKey),
	}
	adminDeps := routes.AdminDeps{
		ProductHandler:   adminhandler.NewProductHandler(catalogService),
		UserHandler:      adminhandler.NewUserHandler(adminService),
		DashboardHandler: adminhandler.NewDashboardHandler(adminService, cartService),
		AccessHandler:    adminhandler.NewAccessHandler(adminService),
	}

	// Prometheus metrics for the HTTP surface
	metrics := middleware.NewMetrics("vitrine")

	// Router and global middleware
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.CORS(cfg.AllowedOrigins),
		middleware.WithSession(sessions),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterAdminRoutes(r, adminDeps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront gateway", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
