package storefront

import (
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/catalog"
	"github.com/agromarket-cm/agromarket/internal/handler"
	"github.com/agromarket-cm/agromarket/internal/money"
)

// CategoryHandler serves category browsing and filter facet routes.
type CategoryHandler struct {
	store *catalog.Store
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(store *catalog.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// FacetsView is the filter sidebar metadata.
type FacetsView struct {
	MinPrice        int64  `json:"minPrice"`
	MinPriceDisplay string `json:"minPriceDisplay"`
	MaxPrice        int64  `json:"maxPrice"`
	MaxPriceDisplay string `json:"maxPriceDisplay"`
	InStock         int    `json:"inStock"`
	OutOfStock      int    `json:"outOfStock"`
}

// CategoryListResponse is the payload for GET /categories.
type CategoryListResponse struct {
	Categories []CategoryView `json:"categories"`
	Facets     FacetsView     `json:"facets"`
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats := h.store.Categories()
	views := make([]CategoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, categoryView(c))
	}

	f := h.store.Facets()
	handler.RespondJSON(w, http.StatusOK, CategoryListResponse{
		Categories: views,
		Facets: FacetsView{
			MinPrice:        f.MinPriceCents,
			MinPriceDisplay: money.Format(f.MinPriceCents),
			MaxPrice:        f.MaxPriceCents,
			MaxPriceDisplay: money.Format(f.MaxPriceCents),
			InStock:         f.InStock,
			OutOfStock:      f.OutOfStock,
		},
	})
}

// Detail handles GET /categories/{slug}.
func (h *CategoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.Category(r.PathValue("slug"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, categoryView(c))
}
