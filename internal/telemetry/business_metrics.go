package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability.
type BusinessMetrics struct {
	// Catalog engagement
	ProductViews    *prometheus.CounterVec
	ProductSearches *prometheus.CounterVec

	// Cart
	CartItemsAdded  *prometheus.CounterVec
	CartAddsClamped prometheus.Counter
	CartCleared     prometheus.Counter

	// Checkout funnel
	CheckoutSubmitted *prometheus.CounterVec
	CheckoutFailed    *prometheus.CounterVec
	OrdersCreated     *prometheus.CounterVec
	OrderValue        prometheus.Histogram
	OrderItemCount    prometheus.Histogram

	// Auth
	Logins      prometheus.Counter
	LoginFailed prometheus.Counter
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "agromarket"
	}

	subsystem := "business"

	return &BusinessMetrics{
		ProductViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_views_total",
				Help:      "Total product detail views",
			},
			[]string{"product_id"},
		),
		ProductSearches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_searches_total",
				Help:      "Total catalog queries, labeled by whether a text search was used",
			},
			[]string{"with_text"},
		),

		CartItemsAdded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_added_total",
				Help:      "Total add to cart actions",
			},
			[]string{"product_id"},
		),
		CartAddsClamped: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_adds_clamped_total",
				Help:      "Add or update actions capped by available stock",
			},
		),
		CartCleared: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_cleared_total",
				Help:      "Total explicit cart clears",
			},
		),

		CheckoutSubmitted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_submitted_total",
				Help:      "Total checkout submissions",
			},
			[]string{"payment_method"},
		),
		CheckoutFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_failed_total",
				Help:      "Total rejected checkout submissions",
			},
			[]string{"reason"}, // reason: empty_cart, validation, canceled
		),
		OrdersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_created_total",
				Help:      "Total confirmed orders",
			},
			[]string{"payment_method"},
		),
		OrderValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_fcfa",
				Help:      "Grand total of confirmed orders in FCFA",
				Buckets:   []float64{5000, 10000, 25000, 50000, 100000, 250000, 500000},
			},
		),
		OrderItemCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of units in confirmed orders",
				Buckets:   []float64{1, 2, 5, 10, 20, 50},
			},
		),

		Logins: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "logins_total",
				Help:      "Total successful logins",
			},
		),
		LoginFailed: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "login_failed_total",
				Help:      "Total failed login attempts",
			},
		),
	}
}
