package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
)

// UpdateOrder validates a partial admin update. Only fields present in the
// patch are checked; the per-field rules match the submission rules.
type UpdateOrder struct {
	dto.OrderPatch
}

func (f *UpdateOrder) Validate() error {
	var errs Errors

	if f.FullName != nil && blank(*f.FullName) {
		errs.Add("fullName", "cannot be blank")
	}
	if f.ShopName != nil && blank(*f.ShopName) {
		errs.Add("shopName", "cannot be blank")
	}
	if f.Tel != nil {
		errs.Check("tel", *f.Tel,
			validation.Required.Error(msgRequired),
			validation.Match(telRegexp).Error(msgPhone))
	}
	if f.Email != nil && !blank(*f.Email) {
		errs.Check("email", *f.Email, is.Email)
	}
	if f.ShippingTel != nil && !blank(*f.ShippingTel) && !telRegexp.MatchString(*f.ShippingTel) {
		errs.Add("shippingTel", msgPhone)
	}
	if f.ServiceTypeCode != nil && !entity.ValidServiceTypes[entity.ServiceType(*f.ServiceTypeCode)] {
		errs.Add("serviceTypeCode", "must be one of DESIGN_ONLY, PRODUCTION_ONLY, DESIGN_AND_PRODUCTION")
	}
	if f.ColorCodes != nil && len(*f.ColorCodes) > 3 {
		errs.Add("colorCodes", "must contain at most 3 colors")
	}

	for _, m := range []struct {
		field string
		v     *dto.Number
	}{
		{"price", f.Price},
		{"designerBudget", f.DesignerBudget},
		{"discount", f.Discount},
		{"paid", f.Paid},
		{"shippingPrice", f.ShippingPrice},
	} {
		if m.v != nil && m.v.Present() {
			if _, err := m.v.Float64(); err != nil {
				errs.Add(m.field, msgNumber)
			}
		}
	}

	if f.Items != nil {
		for i, it := range *f.Items {
			validatePatchItem(i, it, &errs)
		}
	}

	return errs.Err()
}

// validatePatchItem applies only the rules that do not depend on the
// order's service type: sentinel consistency and numeric shape.
func validatePatchItem(idx int, it dto.OrderItemSubmission, errs *Errors) {
	if it.ProductCode == entity.ProductOther && blank(it.ProductOther) {
		errs.Add(itemPath(idx, "productOther"), msgRequired)
	}
	if it.SizeCode == entity.SizeCustom {
		requireDimension(idx, "sizeWidth", it.SizeWidth, errs)
		requireDimension(idx, "sizeHeight", it.SizeHeight, errs)
	}
	if it.SizeWidth.Present() {
		if _, err := it.SizeWidth.Float64(); err != nil {
			errs.Add(itemPath(idx, "sizeWidth"), msgNumber)
		}
	}
	if it.SizeHeight.Present() {
		if _, err := it.SizeHeight.Float64(); err != nil {
			errs.Add(itemPath(idx, "sizeHeight"), msgNumber)
		}
	}
	if it.Quantity.Present() && !it.Quantity.IsPositiveInt() {
		errs.Add(itemPath(idx, "quantity"), msgPositiveInt)
	}
}
