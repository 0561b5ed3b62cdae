package dto

import (
	"github.com/printline/printline-manager/internal/entity"
)

// OrderSubmission is the public order-form payload. It is deliberately
// loose: everything beyond the always-required fields is optional at decode
// time and the conditional rules live in the form validator.
type OrderSubmission struct {
	FullName        string                `json:"fullName"`
	ShopName        string                `json:"shopName"`
	Tel             string                `json:"tel"`
	Email           string                `json:"email,omitempty"`
	Facebook        string                `json:"facebook,omitempty"`
	Line            string                `json:"line,omitempty"`
	ServiceTypeCode string                `json:"serviceTypeCode"`
	ShippingName    string                `json:"shippingName,omitempty"`
	ShippingTel     string                `json:"shippingTel,omitempty"`
	ShippingAddress string                `json:"shippingAddress,omitempty"`
	ThemeCode       string                `json:"themeCode,omitempty"`
	ColorCodes      []string              `json:"colorCodes,omitempty"`
	DesignInfoText  string                `json:"designInfoText,omitempty"`
	Items           []OrderItemSubmission `json:"items,omitempty"`
}

// OrderItemSubmission is one repeated item sub-form. Numeric fields use
// Number so that "10" and 10 are both accepted.
type OrderItemSubmission struct {
	ProductCode     string `json:"productCode,omitempty"`
	ProductOther    string `json:"productOther,omitempty"`
	SizeCode        string `json:"sizeCode,omitempty"`
	SizeWidth       Number `json:"sizeWidth,omitempty"`
	SizeHeight      Number `json:"sizeHeight,omitempty"`
	OrientationCode string `json:"orientationCode,omitempty"`
	CoatingCode     string `json:"coatingCode,omitempty"`
	PageOptionCode  string `json:"pageOptionCode,omitempty"`
	ImageOptionCode string `json:"imageOptionCode,omitempty"`
	BrandOptionCode string `json:"brandOptionCode,omitempty"`
	Quantity        Number `json:"quantity,omitempty"`
}

// ToOrder converts a validated submission into the domain order, assigning
// the initial workflow codes. Numeric fields that do not parse are left
// absent; the validator has already rejected the ones that matter.
func (s *OrderSubmission) ToOrder() *entity.Order {
	o := &entity.Order{
		FullName:          s.FullName,
		ShopName:          s.ShopName,
		Tel:               s.Tel,
		Email:             s.Email,
		Facebook:          s.Facebook,
		Line:              s.Line,
		ServiceTypeCode:   entity.ServiceType(s.ServiceTypeCode),
		StatusCode:        entity.StatusPending,
		PaymentStatusCode: entity.PaymentStatusPending,
		ShippingName:      s.ShippingName,
		ShippingTel:       s.ShippingTel,
		ShippingAddress:   s.ShippingAddress,
		ThemeCode:         s.ThemeCode,
		DesignInfoText:    s.DesignInfoText,
	}
	if len(s.ColorCodes) > 0 {
		o.ColorCodes = append([]string(nil), s.ColorCodes...)
	}
	o.Items = ToOrderItems(s.Items)
	return o
}

// ToOrderItems converts submitted item sub-forms to domain items.
func ToOrderItems(items []OrderItemSubmission) []entity.OrderItem {
	var out []entity.OrderItem
	for _, it := range items {
		out = append(out, it.toOrderItem())
	}
	return out
}

func (it *OrderItemSubmission) toOrderItem() entity.OrderItem {
	item := entity.OrderItem{
		ProductCode:     it.ProductCode,
		ProductOther:    it.ProductOther,
		SizeCode:        it.SizeCode,
		OrientationCode: it.OrientationCode,
		CoatingCode:     it.CoatingCode,
		PageOptionCode:  it.PageOptionCode,
		ImageOptionCode: it.ImageOptionCode,
		BrandOptionCode: it.BrandOptionCode,
	}
	if w, err := it.SizeWidth.Float64(); err == nil {
		item.SizeWidth = &w
	}
	if h, err := it.SizeHeight.Float64(); err == nil {
		item.SizeHeight = &h
	}
	if q, err := it.Quantity.Int(); err == nil {
		item.Quantity = &q
	}
	return item
}

// OrderPatch is the partial admin update payload. Pointer fields
// distinguish "absent, leave alone" from "present, set (possibly to
// empty)". A non-nil Items slice replaces the full item set.
type OrderPatch struct {
	FullName          *string                `json:"fullName,omitempty"`
	ShopName          *string                `json:"shopName,omitempty"`
	Tel               *string                `json:"tel,omitempty"`
	Email             *string                `json:"email,omitempty"`
	Facebook          *string                `json:"facebook,omitempty"`
	Line              *string                `json:"line,omitempty"`
	ServiceTypeCode   *string                `json:"serviceTypeCode,omitempty"`
	StatusCode        *string                `json:"statusCode,omitempty"`
	PaymentStatusCode *string                `json:"paymentStatusCode,omitempty"`
	ShippingName      *string                `json:"shippingName,omitempty"`
	ShippingTel       *string                `json:"shippingTel,omitempty"`
	ShippingAddress   *string                `json:"shippingAddress,omitempty"`
	ThemeCode         *string                `json:"themeCode,omitempty"`
	ColorCodes        *[]string              `json:"colorCodes,omitempty"`
	DesignInfoText    *string                `json:"designInfoText,omitempty"`
	Price             *Number                `json:"price,omitempty"`
	DesignerBudget    *Number                `json:"designerBudget,omitempty"`
	Discount          *Number                `json:"discount,omitempty"`
	Paid              *Number                `json:"paid,omitempty"`
	ShippingPrice     *Number                `json:"shippingPrice,omitempty"`
	FileURL           *string                `json:"fileUrl,omitempty"`
	CoPartnerID       *int                   `json:"coPartnerId,omitempty"`
	DesignerOwnerID   *int                   `json:"designerOwnerId,omitempty"`
	JobOwnerID        *int                   `json:"jobOwnerId,omitempty"`
	ShipperOwnerID    *int                   `json:"shipperOwnerId,omitempty"`
	Items             *[]OrderItemSubmission `json:"items,omitempty"`
}
