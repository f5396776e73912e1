package storefront

import (
	"context"
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/checkout"
	"github.com/agromarket-cm/agromarket/internal/domain"
	"github.com/agromarket-cm/agromarket/internal/handler"
	"github.com/agromarket-cm/agromarket/internal/middleware"
	"github.com/agromarket-cm/agromarket/internal/session"
)

// OrderSubmitter is the slice of the checkout service this handler needs.
type OrderSubmitter interface {
	Submit(ctx context.Context, sess *session.Session, params checkout.SubmitParams) (*domain.Order, error)
}

// CheckoutHandler serves checkout submission and its form metadata.
type CheckoutHandler struct {
	service OrderSubmitter
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service OrderSubmitter) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// CheckoutRequest is the POST /checkout body.
type CheckoutRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Region        string `json:"region"`
	City          string `json:"city"`
	Street        string `json:"street"`
	PostalCode    string `json:"postalCode"`
	PaymentMethod string `json:"paymentMethod"`
	MobileNumber  string `json:"mobileNumber"`
}

// Submit handles POST /checkout.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	var req CheckoutRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	order, err := h.service.Submit(r.Context(), sess, checkout.SubmitParams{
		Address: domain.Address{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Phone:      req.Phone,
			Region:     req.Region,
			City:       req.City,
			Street:     req.Street,
			PostalCode: req.PostalCode,
		},
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		MobileNumber:  req.MobileNumber,
	})
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusCreated, orderView(order))
}

// CheckoutMetaResponse lists the form's closed vocabularies.
type CheckoutMetaResponse struct {
	Regions        []string `json:"regions"`
	PaymentMethods []string `json:"paymentMethods"`
}

// Meta handles GET /checkout/meta.
func (h *CheckoutHandler) Meta(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, CheckoutMetaResponse{
		Regions: checkout.Regions,
		PaymentMethods: []string{
			string(domain.PaymentMobileMoney),
			string(domain.PaymentCard),
			string(domain.PaymentCashOnDelivery),
		},
	})
}
