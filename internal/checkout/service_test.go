package checkout

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromarket-cm/agromarket/internal/cart"
	"github.com/agromarket-cm/agromarket/internal/delivery"
	"github.com/agromarket-cm/agromarket/internal/domain"
	"github.com/agromarket-cm/agromarket/internal/session"
	"github.com/agromarket-cm/agromarket/internal/tax"
)

func testProduct(id string, priceCents, stock int64) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        "Produit " + id,
		Description: "desc",
		PriceCents:  priceCents,
		ImageURL:    "/img/" + id + ".jpg",
		Category:    "semences",
		Stock:       stock,
		Rating:      4.5,
	}
}

func testService(t *testing.T, delay time.Duration) *Service {
	t.Helper()
	pricer := cart.NewPricer(tax.NewPercentageCalculator(tax.VATRate), delivery.NewDefaultProvider())
	return NewService(pricer, delay, slog.New(slog.DiscardHandler), nil)
}

func validParams() SubmitParams {
	return SubmitParams{
		Address: domain.Address{
			FirstName: "Jean",
			LastName:  "Mbarga",
			Phone:     "+237 6 70 00 00 00",
			Region:    "Centre",
			City:      "Yaoundé",
			Street:    "Rue 1.234",
		},
		PaymentMethod: domain.PaymentMobileMoney,
		MobileNumber:  "670000000",
	}
}

func TestSubmitSuccess(t *testing.T) {
	svc := testService(t, time.Millisecond)
	store := session.NewStore(0)
	sess := store.GetOrCreate("")
	sess.Cart.AddItem(testProduct("1", 20000, 100), 2)
	sess.Cart.AddItem(testProduct("2", 5000, 100), 3)

	order, err := svc.Submit(context.Background(), sess, validParams())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "Produit 1", order.Lines[0].ProductName)
	assert.Equal(t, int64(40000), order.Lines[0].LineTotalCents)

	// 55000 subtotal clears the free delivery threshold.
	assert.Equal(t, int64(55000), order.SubtotalCents)
	assert.Equal(t, int64(0), order.DeliveryCents)
	assert.Equal(t, int64(10588), order.TaxCents)
	assert.Equal(t, order.SubtotalCents+order.DeliveryCents+order.TaxCents, order.GrandTotalCents)
	assert.Equal(t, domain.PaymentMobileMoney, order.PaymentMethod)
	assert.Equal(t, "Yaoundé", order.ShippingAddress.City)

	// Confirmed orders empty the cart.
	assert.Equal(t, 0, sess.Cart.Len())
}

func TestSubmitRecordsUser(t *testing.T) {
	svc := testService(t, time.Millisecond)
	store := session.NewStore(0)
	sess := store.GetOrCreate("")
	sess.SetUser(&domain.User{ID: "u42", Email: "jean@example.cm"})
	sess.Cart.AddItem(testProduct("1", 2500, 10), 1)

	order, err := svc.Submit(context.Background(), sess, validParams())
	require.NoError(t, err)
	assert.Equal(t, "u42", order.UserID)
}

func TestSubmitEmptyCart(t *testing.T) {
	svc := testService(t, time.Millisecond)
	store := session.NewStore(0)
	sess := store.GetOrCreate("")

	_, err := svc.Submit(context.Background(), sess, validParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitParams)
		field  string
	}{
		{"missing first name", func(p *SubmitParams) { p.Address.FirstName = " " }, "firstName"},
		{"missing last name", func(p *SubmitParams) { p.Address.LastName = "" }, "lastName"},
		{"missing phone", func(p *SubmitParams) { p.Address.Phone = "" }, "phone"},
		{"missing city", func(p *SubmitParams) { p.Address.City = "" }, "city"},
		{"missing region", func(p *SubmitParams) { p.Address.Region = "" }, "region"},
		{"unknown region", func(p *SubmitParams) { p.Address.Region = "Bretagne" }, "region"},
		{"mobile money without number", func(p *SubmitParams) { p.MobileNumber = "" }, "mobileNumber"},
		{"unknown payment method", func(p *SubmitParams) { p.PaymentMethod = "bitcoin" }, "paymentMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testService(t, time.Millisecond)
			store := session.NewStore(0)
			sess := store.GetOrCreate("")
			sess.Cart.AddItem(testProduct("1", 2500, 10), 1)

			params := validParams()
			tt.mutate(&params)

			_, err := svc.Submit(context.Background(), sess, params)
			require.Error(t, err)
			fields := domain.GetValidationFields(err)
			require.NotNil(t, fields)
			assert.Contains(t, fields, tt.field)

			// Failed submissions never touch the cart.
			assert.Equal(t, 1, sess.Cart.Len())
		})
	}
}

func TestSubmitReportsAllFieldErrorsAtOnce(t *testing.T) {
	svc := testService(t, time.Millisecond)
	store := session.NewStore(0)
	sess := store.GetOrCreate("")
	sess.Cart.AddItem(testProduct("1", 2500, 10), 1)

	params := validParams()
	params.Address.City = ""
	params.PaymentMethod = "bitcoin"

	_, err := svc.Submit(context.Background(), sess, params)
	require.Error(t, err)

	// One response names every problem; the customer fixes the form in
	// a single pass.
	fields := domain.GetValidationFields(err)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "paymentMethod")
	assert.Equal(t, 1, sess.Cart.Len())
}

func TestSubmitCashOnDeliveryNeedsNoNumber(t *testing.T) {
	svc := testService(t, time.Millisecond)
	store := session.NewStore(0)
	sess := store.GetOrCreate("")
	sess.Cart.AddItem(testProduct("1", 2500, 10), 1)

	params := validParams()
	params.PaymentMethod = domain.PaymentCashOnDelivery
	params.MobileNumber = ""

	order, err := svc.Submit(context.Background(), sess, params)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCashOnDelivery, order.PaymentMethod)
}

func TestSubmitCanceledContextKeepsCart(t *testing.T) {
	svc := testService(t, 200*time.Millisecond)
	store := session.NewStore(0)
	sess := store.GetOrCreate("")
	sess.Cart.AddItem(testProduct("1", 2500, 10), 2)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Submit(ctx, sess, validParams())
	require.Error(t, err)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
	assert.Equal(t, 1, sess.Cart.Len())
	assert.Equal(t, int64(2), sess.Cart.Quantity("1"))
}

func TestValidRegion(t *testing.T) {
	assert.True(t, ValidRegion("Littoral"))
	assert.True(t, ValidRegion("Extrême-Nord"))
	assert.False(t, ValidRegion("littoral"))
	assert.False(t, ValidRegion(""))
}
