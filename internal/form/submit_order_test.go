package form

import (
	"encoding/json"
	"testing"

	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() dto.OrderItemSubmission {
	return dto.OrderItemSubmission{
		ProductCode:     "BOX",
		SizeCode:        "A4",
		OrientationCode: "LANDSCAPE",
		CoatingCode:     "MATTE",
		PageOptionCode:  "SINGLE",
		ImageOptionCode: "PROVIDED",
		BrandOptionCode: "LOGO",
		Quantity:        dto.Number("100"),
	}
}

func validDesignSubmission() dto.OrderSubmission {
	return dto.OrderSubmission{
		FullName:        "Somchai P.",
		ShopName:        "Baan Kanom",
		Tel:             "0812345678",
		Facebook:        "baankanom",
		ServiceTypeCode: "DESIGN_ONLY",
		ThemeCode:       "MINIMAL",
		ColorCodes:      []string{"WARM_BROWN"},
		Items:           []dto.OrderItemSubmission{validItem()},
	}
}

func validProductionSubmission() dto.OrderSubmission {
	return dto.OrderSubmission{
		FullName:        "Somchai P.",
		ShopName:        "Baan Kanom",
		Tel:             "0812345678",
		Line:            "@baankanom",
		ServiceTypeCode: "PRODUCTION_ONLY",
		ShippingName:    "Somchai P.",
		ShippingTel:     "0899999999",
		ShippingAddress: "99 Sukhumvit Rd, Bangkok",
	}
}

func fieldErrors(t *testing.T, err error) *entity.ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*entity.ValidationError)
	require.True(t, ok, "expected *entity.ValidationError, got %T", err)
	return verr
}

func TestSubmitOrderValid(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	assert.NoError(t, f.Validate())

	f = SubmitOrder{OrderSubmission: validProductionSubmission()}
	assert.NoError(t, f.Validate())
}

func TestSubmitOrderRequiredShape(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	f.FullName = ""
	f.ShopName = "   "
	f.Tel = ""

	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("fullName"))
	assert.True(t, verr.Has("shopName"), "whitespace-only counts as absent")
	assert.True(t, verr.Has("tel"))
}

func TestSubmitOrderTelFormat(t *testing.T) {
	for _, tel := range []string{"0812345678", "081234567"} {
		f := SubmitOrder{OrderSubmission: validDesignSubmission()}
		f.Tel = tel
		assert.NoError(t, f.Validate(), "tel %q should pass", tel)
	}
	for _, tel := range []string{"812345678", "08123456", "08123456789", "081-234-5678", "abcdefghi"} {
		f := SubmitOrder{OrderSubmission: validDesignSubmission()}
		f.Tel = tel
		verr := fieldErrors(t, f.Validate())
		assert.True(t, verr.Has("tel"), "tel %q should fail", tel)
	}
}

func TestSubmitOrderContactRequired(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	f.Facebook = ""
	f.Line = ""
	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("facebook"))

	f = SubmitOrder{OrderSubmission: validDesignSubmission()}
	f.Facebook = ""
	f.Line = "@baankanom"
	assert.NoError(t, f.Validate())
}

func TestSubmitOrderEmailOptional(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	f.Email = ""
	assert.NoError(t, f.Validate())

	f.Email = "not-an-email"
	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("email"))
}

func TestSubmitOrderBadServiceTypeShortCircuits(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	f.ServiceTypeCode = "design_only"
	f.ThemeCode = ""
	f.Items = nil

	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("serviceTypeCode"))
	// Conditional rules are not evaluated when the discriminant is unusable.
	assert.False(t, verr.Has("themeCode"))
	assert.False(t, verr.Has("items"))
}

func TestSubmitOrderShippingRules(t *testing.T) {
	for _, st := range []string{"PRODUCTION_ONLY", "DESIGN_AND_PRODUCTION"} {
		f := SubmitOrder{OrderSubmission: validProductionSubmission()}
		f.ServiceTypeCode = st
		if st == "DESIGN_AND_PRODUCTION" {
			f.ThemeCode = "MINIMAL"
			f.ColorCodes = []string{"WARM_BROWN"}
			f.Items = []dto.OrderItemSubmission{validItem()}
		}
		f.ShippingName = ""
		f.ShippingTel = ""
		f.ShippingAddress = ""

		verr := fieldErrors(t, f.Validate())
		assert.True(t, verr.Has("shippingName"), st)
		assert.True(t, verr.Has("shippingTel"), st)
		assert.True(t, verr.Has("shippingAddress"), st)
	}

	// DESIGN_ONLY orders need no shipping block at all.
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	f.ShippingName = ""
	f.ShippingTel = ""
	f.ShippingAddress = ""
	assert.NoError(t, f.Validate())
}

func TestSubmitOrderShippingTelFormat(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validProductionSubmission()}
	f.ShippingTel = "12345"
	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("shippingTel"))
}

func TestSubmitOrderDesignRules(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	f.ThemeCode = ""
	f.ColorCodes = nil
	f.Items = nil

	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("themeCode"))
	assert.True(t, verr.Has("colorCodes"))
	assert.True(t, verr.Has("items"))
}

func TestSubmitOrderColorCodesBounds(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	f.ColorCodes = []string{"A", "B", "C"}
	assert.NoError(t, f.Validate())

	f.ColorCodes = []string{"A", "B", "C", "D"}
	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("colorCodes"))

	f.ColorCodes = []string{}
	verr = fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("colorCodes"))
}

func TestSubmitOrderItemSentinels(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	it := validItem()
	it.ProductCode = "OTHER"
	it.ProductOther = ""
	f.Items = []dto.OrderItemSubmission{it}

	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("items[0].productOther"))

	it.ProductOther = "sticker sheet"
	f.Items = []dto.OrderItemSubmission{it}
	assert.NoError(t, f.Validate())

	// Sentinels are case-sensitive; "other" is an ordinary code.
	it = validItem()
	it.ProductCode = "other"
	f.Items = []dto.OrderItemSubmission{it}
	assert.NoError(t, f.Validate())
}

func TestSubmitOrderCustomSizeNeedsDimensions(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	it := validItem()
	it.SizeCode = "CUSTOM"
	f.Items = []dto.OrderItemSubmission{it}

	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("items[0].sizeWidth"))
	assert.True(t, verr.Has("items[0].sizeHeight"))

	it.SizeWidth = dto.Number("21")
	it.SizeHeight = dto.Number("29.7")
	f.Items = []dto.OrderItemSubmission{it}
	assert.NoError(t, f.Validate())

	it.SizeWidth = dto.Number("wide")
	f.Items = []dto.OrderItemSubmission{it}
	verr = fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("items[0].sizeWidth"))
	assert.False(t, verr.Has("items[0].sizeHeight"))
}

func TestSubmitOrderQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`10`, ""},
		{`"10"`, ""},
		{`0`, "must be a positive integer"},
		{`-5`, "must be a positive integer"},
		{`2.5`, "must be a positive integer"},
		{`"lots"`, "must be a positive integer"},
		{`null`, "is required"},
	}
	for _, tc := range cases {
		var q dto.Number
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &q), tc.raw)

		f := SubmitOrder{OrderSubmission: validDesignSubmission()}
		it := validItem()
		it.Quantity = q
		f.Items = []dto.OrderItemSubmission{it}

		err := f.Validate()
		if tc.want == "" {
			assert.NoError(t, err, "quantity %s", tc.raw)
			continue
		}
		verr := fieldErrors(t, err)
		require.True(t, verr.Has("items[0].quantity"), "quantity %s", tc.raw)
		for _, fe := range verr.Fields {
			if fe.Path == "items[0].quantity" {
				assert.Equal(t, tc.want, fe.Message, "quantity %s", tc.raw)
			}
		}
	}
}

func TestSubmitOrderAccumulatesAcrossItems(t *testing.T) {
	f := SubmitOrder{OrderSubmission: validDesignSubmission()}
	broken := validItem()
	broken.ProductCode = ""
	broken.Quantity = ""
	other := validItem()
	other.CoatingCode = ""
	f.Items = []dto.OrderItemSubmission{broken, other}
	f.Email = "nope"

	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("email"))
	assert.True(t, verr.Has("items[0].productCode"))
	assert.True(t, verr.Has("items[0].quantity"))
	assert.True(t, verr.Has("items[1].coatingCode"))
	// The sibling item's valid fields contribute nothing.
	assert.False(t, verr.Has("items[1].productCode"))
}
