package storefront

import (
	"time"

	"github.com/agromarket-cm/agromarket/internal/cart"
	"github.com/agromarket-cm/agromarket/internal/catalog"
	"github.com/agromarket-cm/agromarket/internal/domain"
	"github.com/agromarket-cm/agromarket/internal/money"
)

// Prices are whole FCFA; the JSON fields carry both the integer amount and
// a display string so the front end never reimplements formatting.

// ProductListItemView is one row of a catalog listing response.
type ProductListItemView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	PriceDisplay  string  `json:"priceDisplay"`
	OriginalPrice int64   `json:"originalPrice,omitempty"`
	ImageURL      string  `json:"imageUrl"`
	Category      string  `json:"category"`
	Subcategory   string  `json:"subcategory,omitempty"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Stock         int64   `json:"stock"`
	LowStock      bool    `json:"lowStock"`
	IsNew         bool    `json:"isNew"`
	IsFeatured    bool    `json:"isFeatured"`
	IsOnSale      bool    `json:"isOnSale"`
}

func listItemView(it domain.ProductListItem) ProductListItemView {
	return ProductListItemView{
		ID:            it.ID,
		Name:          it.Name,
		Price:         it.PriceCents,
		PriceDisplay:  money.Format(it.PriceCents),
		OriginalPrice: it.OriginalPrice,
		ImageURL:      it.ImageURL,
		Category:      it.Category,
		Subcategory:   it.Subcategory,
		Rating:        it.Rating,
		ReviewCount:   it.ReviewCount,
		Stock:         it.Stock,
		LowStock:      it.LowStock,
		IsNew:         it.IsNew,
		IsFeatured:    it.IsFeatured,
		IsOnSale:      it.IsOnSale,
	}
}

// ProductDetailView is the full product record for a detail page.
type ProductDetailView struct {
	ProductListItemView
	Description string            `json:"description"`
	ImageURLs   []string          `json:"imageUrls,omitempty"`
	Specs       map[string]string `json:"specs,omitempty"`
	Features    []string          `json:"features,omitempty"`
}

func detailView(p *domain.Product) ProductDetailView {
	return ProductDetailView{
		ProductListItemView: listItemView(catalog.ListItem(p)),
		Description:         p.Description,
		ImageURLs:           p.ImageURLs,
		Specs:               p.Specs,
		Features:            p.Features,
	}
}

// CategoryView is one browsable category with its subcategories.
type CategoryView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
}

func categoryView(c *domain.Category) CategoryView {
	return CategoryView{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		Subcategories: c.Subcategories,
	}
}

// CartItemView is one priced cart line.
type CartItemView struct {
	ProductID        string `json:"productId"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	ImageURL         string `json:"imageUrl"`
	UnitPrice        int64  `json:"unitPrice"`
	UnitPriceDisplay string `json:"unitPriceDisplay"`
	Quantity         int64  `json:"quantity"`
	LineTotal        int64  `json:"lineTotal"`
	LineTotalDisplay string `json:"lineTotalDisplay"`
	MaxQuantity      int64  `json:"maxQuantity"`
}

// CartTotalsView is the totals block of a cart or order response.
type CartTotalsView struct {
	Subtotal                int64   `json:"subtotal"`
	SubtotalDisplay         string  `json:"subtotalDisplay"`
	Delivery                int64   `json:"delivery"`
	DeliveryDisplay         string  `json:"deliveryDisplay"`
	Tax                     int64   `json:"tax"`
	TaxDisplay              string  `json:"taxDisplay"`
	TaxRate                 float64 `json:"taxRate"`
	GrandTotal              int64   `json:"grandTotal"`
	GrandTotalDisplay       string  `json:"grandTotalDisplay"`
	ItemCount               int64   `json:"itemCount"`
	FreeDelivery            bool    `json:"freeDelivery"`
	RemainingForFree        int64   `json:"remainingForFree"`
	RemainingForFreeDisplay string  `json:"remainingForFreeDisplay,omitempty"`
}

// CartView is the full cart response.
type CartView struct {
	Items  []CartItemView `json:"items"`
	Totals CartTotalsView `json:"totals"`
}

func cartView(s cart.Summary) CartView {
	items := make([]CartItemView, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, CartItemView{
			ProductID:        it.ProductID,
			Name:             it.ProductName,
			Category:         it.Category,
			ImageURL:         it.ImageURL,
			UnitPrice:        it.UnitPriceCents,
			UnitPriceDisplay: money.Format(it.UnitPriceCents),
			Quantity:         it.Quantity,
			LineTotal:        it.LineTotalCents,
			LineTotalDisplay: money.Format(it.LineTotalCents),
			MaxQuantity:      it.MaxQuantity,
		})
	}
	return CartView{Items: items, Totals: totalsView(s.Totals)}
}

func totalsView(t cart.Totals) CartTotalsView {
	v := CartTotalsView{
		Subtotal:          t.SubtotalCents,
		SubtotalDisplay:   money.Format(t.SubtotalCents),
		Delivery:          t.DeliveryCents,
		DeliveryDisplay:   money.Format(t.DeliveryCents),
		Tax:               t.TaxCents,
		TaxDisplay:        money.Format(t.TaxCents),
		TaxRate:           t.TaxRate,
		GrandTotal:        t.GrandTotalCents,
		GrandTotalDisplay: money.Format(t.GrandTotalCents),
		ItemCount:         t.ItemCount,
		FreeDelivery:      t.FreeDelivery,
		RemainingForFree:  t.RemainingForFreeCents,
	}
	if t.RemainingForFreeCents > 0 {
		v.RemainingForFreeDisplay = money.Format(t.RemainingForFreeCents)
	}
	return v
}

// OrderLineView is one immutable order line.
type OrderLineView struct {
	ProductID        string `json:"productId"`
	Name             string `json:"name"`
	Quantity         int64  `json:"quantity"`
	UnitPrice        int64  `json:"unitPrice"`
	LineTotal        int64  `json:"lineTotal"`
	LineTotalDisplay string `json:"lineTotalDisplay"`
}

// OrderView is the confirmation payload returned by checkout.
type OrderView struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	PaymentMethod     string          `json:"paymentMethod"`
	Lines             []OrderLineView `json:"lines"`
	Subtotal          int64           `json:"subtotal"`
	Delivery          int64           `json:"delivery"`
	Tax               int64           `json:"tax"`
	GrandTotal        int64           `json:"grandTotal"`
	GrandTotalDisplay string          `json:"grandTotalDisplay"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func orderView(o *domain.Order) OrderView {
	lines := make([]OrderLineView, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineView{
			ProductID:        l.ProductID,
			Name:             l.ProductName,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPriceCents,
			LineTotal:        l.LineTotalCents,
			LineTotalDisplay: money.Format(l.LineTotalCents),
		})
	}
	return OrderView{
		ID:                o.ID,
		Status:            string(o.Status),
		PaymentMethod:     string(o.PaymentMethod),
		Lines:             lines,
		Subtotal:          o.SubtotalCents,
		Delivery:          o.DeliveryCents,
		Tax:               o.TaxCents,
		GrandTotal:        o.GrandTotalCents,
		GrandTotalDisplay: money.Format(o.GrandTotalCents),
		CreatedAt:         o.CreatedAt,
	}
}

// UserView is the session identity payload.
type UserView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Region    string `json:"region,omitempty"`
}

func userView(u *domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Region:    u.Region,
	}
}
