// Package routes wires handlers into the router. Handlers are constructed
// in cmd/server and passed in; this package only knows paths and methods.
package routes

import (
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for the storefront API routes.
type StorefrontDeps struct {
	// Catalog
	ProductHandler  *storefront.ProductHandler
	CategoryHandler *storefront.CategoryHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout
	CheckoutHandler *storefront.CheckoutHandler

	// Auth (demo accounts for checkout pre-fill)
	AuthHandler *storefront.AuthHandler
}

// OpsDeps contains dependencies for the operational routes.
type OpsDeps struct {
	// MetricsHandler serves the Prometheus scrape endpoint.
	MetricsHandler http.Handler
}
