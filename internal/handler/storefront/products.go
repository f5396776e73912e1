// Package storefront holds the customer-facing JSON handlers.
package storefront

import (
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/catalog"
	"github.com/agromarket-cm/agromarket/internal/handler"
	"github.com/agromarket-cm/agromarket/internal/telemetry"
)

// ProductHandler serves catalog listing and detail routes.
type ProductHandler struct {
	store   *catalog.Store
	metrics *telemetry.BusinessMetrics
}

// NewProductHandler creates a new product handler. metrics may be nil.
func NewProductHandler(store *catalog.Store, metrics *telemetry.BusinessMetrics) *ProductHandler {
	return &ProductHandler{store: store, metrics: metrics}
}

// ProductListResponse is the payload for GET /products.
type ProductListResponse struct {
	Products []ProductListItemView `json:"products"`
	Count    int                   `json:"count"`
	Total    int                   `json:"total"`
	// Params is the normalized filter state as a query string, ready to
	// put in the address bar or share as a link. Empty for an all-default
	// query.
	Params string `json:"params"`
}

// List handles GET /products. The query string carries the filter and sort
// state; invalid values are clamped, never rejected.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, sortKey := catalog.Decode(r.URL.Query())
	items, normalized := h.store.Search(criteria, sortKey)

	if h.metrics != nil {
		withText := "false"
		if normalized.Search != "" {
			withText = "true"
		}
		h.metrics.ProductSearches.WithLabelValues(withText).Inc()
	}

	views := make([]ProductListItemView, 0, len(items))
	for _, it := range items {
		views = append(views, listItemView(it))
	}

	handler.RespondJSON(w, http.StatusOK, ProductListResponse{
		Products: views,
		Count:    len(views),
		Total:    len(h.store.Products()),
		Params:   catalog.Encode(normalized, sortKey).Encode(),
	})
}

// Detail handles GET /products/{id}.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Product(r.PathValue("id"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ProductViews.WithLabelValues(p.ID).Inc()
	}

	handler.RespondJSON(w, http.StatusOK, detailView(p))
}
