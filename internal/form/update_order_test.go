package form

import (
	"testing"

	"github.com/printline/printline-manager/internal/dto"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func numPtr(s string) *dto.Number { n := dto.Number(s); return &n }

func TestUpdateOrderEmptyPatchIsValid(t *testing.T) {
	f := UpdateOrder{}
	assert.NoError(t, f.Validate())
}

func TestUpdateOrderPresentFieldsOnly(t *testing.T) {
	f := UpdateOrder{}
	f.FullName = strPtr("")
	f.Tel = strPtr("12345")
	f.Email = strPtr("bad@")
	f.ServiceTypeCode = strPtr("EXPRESS")

	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("fullName"))
	assert.True(t, verr.Has("tel"))
	assert.True(t, verr.Has("email"))
	assert.True(t, verr.Has("serviceTypeCode"))
	// Absent fields are never checked.
	assert.False(t, verr.Has("shopName"))
}

func TestUpdateOrderClearingOptionalFields(t *testing.T) {
	f := UpdateOrder{}
	f.Email = strPtr("")
	f.ShippingTel = strPtr("")
	f.ThemeCode = strPtr("")
	assert.NoError(t, f.Validate())
}

func TestUpdateOrderColorCodesUpperBoundOnly(t *testing.T) {
	f := UpdateOrder{}
	empty := []string{}
	f.ColorCodes = &empty
	assert.NoError(t, f.Validate(), "an admin may clear the palette")

	four := []string{"A", "B", "C", "D"}
	f.ColorCodes = &four
	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("colorCodes"))
}

func TestUpdateOrderMoneyFields(t *testing.T) {
	f := UpdateOrder{}
	f.Price = numPtr("1500.50")
	f.Discount = numPtr("")
	assert.NoError(t, f.Validate())

	f.Paid = numPtr("a lot")
	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("paid"))
	assert.False(t, verr.Has("price"))
}

func TestUpdateOrderItemRules(t *testing.T) {
	items := []dto.OrderItemSubmission{
		{ProductCode: "OTHER"},
		{SizeCode: "CUSTOM", SizeWidth: dto.Number("10"), SizeHeight: dto.Number("tall")},
		{Quantity: dto.Number("0")},
	}
	f := UpdateOrder{}
	f.Items = &items

	verr := fieldErrors(t, f.Validate())
	assert.True(t, verr.Has("items[0].productOther"))
	assert.True(t, verr.Has("items[1].sizeHeight"))
	assert.False(t, verr.Has("items[1].sizeWidth"))
	assert.True(t, verr.Has("items[2].quantity"))
}
