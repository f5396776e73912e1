package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agromarket-cm/agromarket/internal"
	"github.com/agromarket-cm/agromarket/internal/auth"
	"github.com/agromarket-cm/agromarket/internal/cart"
	"github.com/agromarket-cm/agromarket/internal/catalog"
	"github.com/agromarket-cm/agromarket/internal/checkout"
	"github.com/agromarket-cm/agromarket/internal/cookie"
	"github.com/agromarket-cm/agromarket/internal/delivery"
	"github.com/agromarket-cm/agromarket/internal/handler/storefront"
	"github.com/agromarket-cm/agromarket/internal/middleware"
	"github.com/agromarket-cm/agromarket/internal/router"
	"github.com/agromarket-cm/agromarket/internal/routes"
	"github.com/agromarket-cm/agromarket/internal/session"
	"github.com/agromarket-cm/agromarket/internal/tax"
	"github.com/agromarket-cm/agromarket/internal/telemetry"
)

// sessionPruneInterval is how often expired sessions are reclaimed.
const sessionPruneInterval = time.Hour

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// ==========================================================================
	// Initialize the catalog and services
	// ==========================================================================

	store, err := catalog.New(catalog.SeedProducts(), catalog.SeedCategories(), logger)
	if err != nil {
		return fmt.Errorf("catalog load failed: %w", err)
	}
	logger.Info("catalog loaded",
		"products", len(store.Products()),
		"categories", len(store.Categories()),
	)

	registry := auth.NewRegistry()
	if err := registry.SeedDemo(); err != nil {
		return fmt.Errorf("demo account seed failed: %w", err)
	}

	businessMetrics := telemetry.NewBusinessMetrics(cfg.MetricsNamespace)

	pricer := cart.NewPricer(
		tax.NewPercentageCalculator(tax.VATRate),
		delivery.NewDefaultProvider(),
	)

	sessions := session.NewStore(cfg.SessionTTL)
	checkoutService := checkout.NewService(pricer, cfg.CheckoutDelay, logger, businessMetrics)

	// ==========================================================================
	// Initialize handlers
	// ==========================================================================

	cookies := cookie.NewConfig(cfg.SecureCookies)

	storefrontDeps := routes.StorefrontDeps{
		ProductHandler:  storefront.NewProductHandler(store, businessMetrics),
		CategoryHandler: storefront.NewCategoryHandler(store),
		CartHandler:     storefront.NewCartHandler(store, pricer, businessMetrics),
		CheckoutHandler: storefront.NewCheckoutHandler(checkoutService),
		AuthHandler:     storefront.NewAuthHandler(registry, businessMetrics),
	}

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	metrics := middleware.NewMetrics(cfg.MetricsNamespace)

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.SecurityHeaders,
		router.CORS([]string{cfg.BaseURL}),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	routes.RegisterOpsRoutes(r, routes.OpsDeps{MetricsHandler: metrics.Handler()})

	// Customer routes get a session and a body cap on top of the globals.
	api := r.Group(
		middleware.BodyLimit(middleware.DefaultMaxBodyBytes),
		middleware.WithSession(sessions, cookies, cfg.SessionTTL),
	)
	routes.RegisterStorefrontRoutes(api, storefrontDeps)

	// ==========================================================================
	// Start server
	// ==========================================================================

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(sessionPruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sessions.PruneExpired(); n > 0 {
					logger.Info("pruned expired sessions", "count", n)
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "address", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
