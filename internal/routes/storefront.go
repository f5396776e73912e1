package routes

import (
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/router"
)

// RegisterStorefrontRoutes registers the customer-facing API routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Catalog
	r.Get("/products", deps.ProductHandler.List)
	r.Get("/products/{id}", deps.ProductHandler.Detail)
	r.Get("/categories", deps.CategoryHandler.List)
	r.Get("/categories/{slug}", deps.CategoryHandler.Detail)

	// Cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/add", deps.CartHandler.Add)
	r.Post("/cart/update", deps.CartHandler.Update)
	r.Post("/cart/remove", deps.CartHandler.Remove)
	r.Post("/cart/clear", deps.CartHandler.Clear)

	// Checkout
	r.Get("/checkout/meta", deps.CheckoutHandler.Meta)
	r.Post("/checkout", deps.CheckoutHandler.Submit)

	// Auth
	r.Post("/login", deps.AuthHandler.Login)
	r.Post("/logout", deps.AuthHandler.Logout)
	r.Get("/session", deps.AuthHandler.Session)
}

// RegisterOpsRoutes registers health and metrics endpoints. These sit
// outside the session middleware; scrapers get no cookies.
func RegisterOpsRoutes(r *router.Router, deps OpsDeps) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle(http.MethodGet, "/metrics", deps.MetricsHandler)
}
