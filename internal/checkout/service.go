// Package checkout turns a session's cart into a confirmed order.
// No payment is captured; processing is simulated with a configurable
// delay so the storefront behaves like it is talking to a real gateway.
package checkout

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agromarket-cm/agromarket/internal/cart"
	"github.com/agromarket-cm/agromarket/internal/domain"
	"github.com/agromarket-cm/agromarket/internal/session"
	"github.com/agromarket-cm/agromarket/internal/telemetry"
)

// DefaultProcessingDelay mimics a payment gateway round trip.
const DefaultProcessingDelay = 2 * time.Second

// Regions are the ten regions of Cameroon accepted as delivery destinations.
var Regions = []string{
	"Adamaoua",
	"Centre",
	"Est",
	"Extrême-Nord",
	"Littoral",
	"Nord",
	"Nord-Ouest",
	"Ouest",
	"Sud",
	"Sud-Ouest",
}

// ValidRegion reports whether name is a known delivery region.
func ValidRegion(name string) bool {
	for _, r := range Regions {
		if r == name {
			return true
		}
	}
	return false
}

// SubmitParams carries everything the checkout form collects.
type SubmitParams struct {
	Address       domain.Address
	PaymentMethod domain.PaymentMethod
	// MobileNumber is the money transfer number, required for mobile-money.
	MobileNumber string
}

// Service validates and submits orders.
type Service struct {
	pricer  *cart.Pricer
	delay   time.Duration
	logger  *slog.Logger
	metrics *telemetry.BusinessMetrics
	now     func() time.Time
}

// NewService creates a checkout service. A non-positive delay falls back to
// DefaultProcessingDelay; metrics may be nil.
func NewService(pricer *cart.Pricer, delay time.Duration, logger *slog.Logger, metrics *telemetry.BusinessMetrics) *Service {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	return &Service{
		pricer:  pricer,
		delay:   delay,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// Submit validates the form, simulates payment processing, and returns the
// confirmed order. The cart is cleared only after the order is confirmed, so
// a canceled or failed submission leaves it intact.
func (s *Service) Submit(ctx context.Context, sess *session.Session, params SubmitParams) (*domain.Order, error) {
	const op = "checkout.submit"

	if s.metrics != nil {
		s.metrics.CheckoutSubmitted.WithLabelValues(string(params.PaymentMethod)).Inc()
	}

	if sess.Cart.Len() == 0 {
		s.failed("empty_cart")
		return nil, domain.ErrEmptyCart
	}
	if err := validate(params); err != nil {
		s.failed("validation")
		return nil, err
	}

	// Snapshot lines and totals before the simulated gateway call so the
	// order records what the customer saw at submission.
	summary := s.pricer.Summarize(sess.Cart)

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		s.failed("canceled")
		return nil, domain.WrapError(ctx.Err(), domain.EINTERNAL, op, "Checkout was interrupted")
	}

	lines := make([]domain.OrderLine, 0, len(summary.Items))
	for _, item := range summary.Items {
		lines = append(lines, domain.OrderLine{
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.LineTotalCents,
		})
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		Lines:           lines,
		SubtotalCents:   summary.Totals.SubtotalCents,
		DeliveryCents:   summary.Totals.DeliveryCents,
		TaxCents:        summary.Totals.TaxCents,
		GrandTotalCents: summary.Totals.GrandTotalCents,
		Status:          domain.OrderStatusConfirmed,
		PaymentMethod:   params.PaymentMethod,
		MobileNumber:    params.MobileNumber,
		ShippingAddress: params.Address,
		CreatedAt:       s.now(),
	}
	if u := sess.User(); u != nil {
		order.UserID = u.ID
	}

	sess.Cart.Clear()

	if s.logger != nil {
		s.logger.Info("order confirmed",
			slog.String("order_id", order.ID),
			slog.String("payment_method", string(order.PaymentMethod)),
			slog.Int64("grand_total_cents", order.GrandTotalCents),
			slog.Int("line_count", len(order.Lines)),
		)
	}
	if s.metrics != nil {
		s.metrics.OrdersCreated.WithLabelValues(string(order.PaymentMethod)).Inc()
		s.metrics.OrderValue.Observe(float64(order.GrandTotalCents))
		s.metrics.OrderItemCount.Observe(float64(summary.Totals.ItemCount))
	}

	return order, nil
}

func (s *Service) failed(reason string) {
	if s.metrics != nil {
		s.metrics.CheckoutFailed.WithLabelValues(reason).Inc()
	}
}

func validate(params SubmitParams) error {
	var err error

	addr := params.Address
	if strings.TrimSpace(addr.FirstName) == "" {
		err = domain.AddFieldError(err, "firstName", "First name is required")
	}
	if strings.TrimSpace(addr.LastName) == "" {
		err = domain.AddFieldError(err, "lastName", "Last name is required")
	}
	if strings.TrimSpace(addr.Phone) == "" {
		err = domain.AddFieldError(err, "phone", "Phone number is required")
	}
	if strings.TrimSpace(addr.City) == "" {
		err = domain.AddFieldError(err, "city", "City is required")
	}
	switch {
	case strings.TrimSpace(addr.Region) == "":
		err = domain.AddFieldError(err, "region", "Region is required")
	case !ValidRegion(addr.Region):
		err = domain.AddFieldError(err, "region", "Unknown region")
	}

	switch {
	case !params.PaymentMethod.Valid():
		err = domain.AddFieldError(err, "paymentMethod", "Unknown payment method")
	case params.PaymentMethod == domain.PaymentMobileMoney && strings.TrimSpace(params.MobileNumber) == "":
		err = domain.AddFieldError(err, "mobileNumber", "Mobile money number is required")
	}

	return err
}
