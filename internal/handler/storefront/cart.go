package storefront

import (
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/cart"
	"github.com/agromarket-cm/agromarket/internal/catalog"
	"github.com/agromarket-cm/agromarket/internal/domain"
	"github.com/agromarket-cm/agromarket/internal/handler"
	"github.com/agromarket-cm/agromarket/internal/middleware"
	"github.com/agromarket-cm/agromarket/internal/telemetry"
)

// CartHandler serves the cart routes. The session middleware supplies the
// per-visitor cart; this handler validates input, mutates, and responds with
// the freshly priced cart so the client never needs a follow-up fetch.
type CartHandler struct {
	store   *catalog.Store
	pricer  *cart.Pricer
	metrics *telemetry.BusinessMetrics
}

// NewCartHandler creates a new cart handler. metrics may be nil.
func NewCartHandler(store *catalog.Store, pricer *cart.Pricer, metrics *telemetry.BusinessMetrics) *CartHandler {
	return &CartHandler{store: store, pricer: pricer, metrics: metrics}
}

// CartResponse wraps the priced cart, plus the clamp signal for mutations
// that were capped against stock.
type CartResponse struct {
	Cart CartView `json:"cart"`
	// Clamped is set when the requested quantity exceeded available stock
	// and was reduced. The front end shows a notice but no error.
	Clamped bool `json:"clamped,omitempty"`
}

// View handles GET /cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	handler.RespondJSON(w, http.StatusOK, CartResponse{
		Cart: cartView(h.pricer.Summarize(sess.Cart)),
	})
}

type cartMutationRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// Add handles POST /cart/add. The product must exist in the catalog;
// quantities beyond stock clamp silently.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req cartMutationRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if req.Quantity <= 0 {
		handler.RespondError(w, r, domain.Invalid("cart.add", "Quantity must be at least 1"))
		return
	}

	product, err := h.store.Product(req.ProductID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	result := sess.Cart.AddItem(product, req.Quantity)

	if h.metrics != nil {
		h.metrics.CartItemsAdded.WithLabelValues(product.ID).Inc()
		if result.Clamped {
			h.metrics.CartAddsClamped.Inc()
		}
	}

	handler.RespondJSON(w, http.StatusOK, CartResponse{
		Cart:    cartView(h.pricer.Summarize(sess.Cart)),
		Clamped: result.Clamped,
	})
}

// Update handles POST /cart/update. Zero or negative quantity removes the
// line; an unknown product identifier leaves the cart untouched.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req cartMutationRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	before := sess.Cart.Quantity(req.ProductID)
	sess.Cart.UpdateQuantity(req.ProductID, req.Quantity)
	after := sess.Cart.Quantity(req.ProductID)

	clamped := req.Quantity > 0 && before > 0 && after < req.Quantity
	if h.metrics != nil && clamped {
		h.metrics.CartAddsClamped.Inc()
	}

	handler.RespondJSON(w, http.StatusOK, CartResponse{
		Cart:    cartView(h.pricer.Summarize(sess.Cart)),
		Clamped: clamped,
	})
}

// Remove handles POST /cart/remove.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	sess.Cart.RemoveItem(req.ProductID)

	handler.RespondJSON(w, http.StatusOK, CartResponse{
		Cart: cartView(h.pricer.Summarize(sess.Cart)),
	})
}

// Clear handles POST /cart/clear.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	sess.Cart.Clear()

	if h.metrics != nil {
		h.metrics.CartCleared.Inc()
	}

	handler.RespondJSON(w, http.StatusOK, CartResponse{
		Cart: cartView(h.pricer.Summarize(sess.Cart)),
	})
}
