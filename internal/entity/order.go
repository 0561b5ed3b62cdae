package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType is the discriminant that decides which parts of an order
// submission are required: design fields, shipping fields, or both.
type ServiceType string

const (
	DesignOnly          ServiceType = "DESIGN_ONLY"
	ProductionOnly      ServiceType = "PRODUCTION_ONLY"
	DesignAndProduction ServiceType = "DESIGN_AND_PRODUCTION"
)

func (st ServiceType) String() string {
	return string(st)
}

// RequiresDesign reports whether orders of this service type must carry
// theme, colors and at least one fully specified item.
func (st ServiceType) RequiresDesign() bool {
	return st == DesignOnly || st == DesignAndProduction
}

// RequiresShipping reports whether orders of this service type must carry
// shipping name, phone and address.
func (st ServiceType) RequiresShipping() bool {
	return st == ProductionOnly || st == DesignAndProduction
}

// ValidServiceTypes is the set of accepted service type codes.
var ValidServiceTypes = map[ServiceType]bool{
	DesignOnly:          true,
	ProductionOnly:      true,
	DesignAndProduction: true,
}

// Sentinel codes compared case-sensitively by the intake validator.
const (
	ProductOther = "OTHER"
	SizeCustom   = "CUSTOM"
)

// Initial workflow codes assigned to a freshly submitted order.
const (
	StatusPending        = "PENDING"
	PaymentStatusPending = "PENDING"
)

// Order is the canonical in-memory representation of a print-job request.
// String fields use "" for absent values; numeric optionals are pointers so
// that a stored NULL survives a round trip through the row mapper.
type Order struct {
	ID                int         `json:"id"`
	Code              string      `json:"code"`
	FullName          string      `json:"fullName"`
	ShopName          string      `json:"shopName"`
	Tel               string      `json:"tel"`
	Email             string      `json:"email,omitempty"`
	Facebook          string      `json:"facebook,omitempty"`
	Line              string      `json:"line,omitempty"`
	ServiceTypeCode   ServiceType `json:"serviceTypeCode"`
	StatusCode        string      `json:"statusCode"`
	PaymentStatusCode string      `json:"paymentStatusCode"`
	ShippingName      string      `json:"shippingName,omitempty"`
	ShippingTel       string      `json:"shippingTel,omitempty"`
	ShippingAddress   string      `json:"shippingAddress,omitempty"`
	ThemeCode         string      `json:"themeCode,omitempty"`
	ColorCodes        []string    `json:"colorCodes,omitempty"`
	DesignInfoText    string      `json:"designInfoText,omitempty"`
	Items             []OrderItem `json:"items,omitempty"`

	// Staff-managed fields, never set by the public submission path.
	Price                decimal.NullDecimal `json:"price"`
	DesignerBudget       decimal.NullDecimal `json:"designerBudget"`
	Discount             decimal.NullDecimal `json:"discount"`
	Paid                 decimal.NullDecimal `json:"paid"`
	ShippingPrice        decimal.NullDecimal `json:"shippingPrice"`
	FileURL              string              `json:"fileUrl,omitempty"`
	CoPartnerID          *int                `json:"coPartnerId,omitempty"`
	DesignerOwnerID      *int                `json:"designerOwnerId,omitempty"`
	PreProductionOwnerID *int                `json:"preProductionOwnerId,omitempty"`
	JobOwnerID           *int                `json:"jobOwnerId,omitempty"`
	ShipperOwnerID       *int                `json:"shipperOwnerId,omitempty"`
	AcceptDate           *time.Time          `json:"acceptDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem is one produced artifact within an order.
type OrderItem struct {
	ID              int      `json:"id"`
	OrderID         int      `json:"orderId"`
	ProductCode     string   `json:"productCode,omitempty"`
	ProductOther    string   `json:"productOther,omitempty"`
	SizeCode        string   `json:"sizeCode,omitempty"`
	SizeWidth       *float64 `json:"sizeWidth,omitempty"`
	SizeHeight      *float64 `json:"sizeHeight,omitempty"`
	OrientationCode string   `json:"orientationCode,omitempty"`
	CoatingCode     string   `json:"coatingCode,omitempty"`
	PageOptionCode  string   `json:"pageOptionCode,omitempty"`
	ImageOptionCode string   `json:"imageOptionCode,omitempty"`
	BrandOptionCode string   `json:"brandOptionCode,omitempty"`
	Quantity        *int     `json:"quantity,omitempty"`

	// Staff-managed fields.
	MaterialCode      string              `json:"materialCode,omitempty"`
	MaterialOther     string              `json:"materialOther,omitempty"`
	ItemPrice         decimal.NullDecimal `json:"itemPrice"`
	DesignerPrice     decimal.NullDecimal `json:"designerPrice"`
	ToolTypeCode      string              `json:"toolTypeCode,omitempty"`
	ProductionOwnerID *int                `json:"productionOwnerId,omitempty"`
}

// OrderQuery filters and pages the admin order list.
type OrderQuery struct {
	Keyword           string
	StatusCode        string
	PaymentStatusCode string
	ServiceTypeCode   string
	Page              int
	Size              int
}

// Limit returns the page size bounded to [1,100] with a default of 10.
func (q OrderQuery) Limit() int {
	if q.Size <= 0 {
		return 10
	}
	if q.Size > 100 {
		return 100
	}
	return q.Size
}

// Offset returns the row offset for the requested page.
func (q OrderQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.Limit()
}

// OrderStatistics is the dashboard aggregate over the orders table.
type OrderStatistics struct {
	Total           int             `json:"total"`
	ByStatus        map[string]int  `json:"byStatus"`
	ByPaymentStatus map[string]int  `json:"byPaymentStatus"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	RecentOrders    []Order         `json:"recentOrders"`
}
