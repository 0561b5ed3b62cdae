package form

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
)

// telRegexp matches Thai phone numbers: a leading 0 followed by 8 or 9
// further digits.
var telRegexp = regexp.MustCompile(`^0\d{8,9}$`)

const (
	msgRequired        = "is required"
	msgPhone           = "must be 9-10 digits starting with 0"
	msgPositiveInt     = "must be a positive integer"
	msgNumber          = "must be a number"
	msgContactRequired = "facebook or line is required"
	msgColorCount      = "must contain between 1 and 3 colors"
	msgItemsRequired   = "at least one design item is required"
)

// SubmitOrder validates a public order submission. The rules are applied
// in two passes: unconditional shape checks first, then the conditional
// rules keyed off the service type. Only an unresolvable service type
// short-circuits the second pass; everything else accumulates.
type SubmitOrder struct {
	dto.OrderSubmission
}

func (f *SubmitOrder) Validate() error {
	var errs Errors

	errs.Check("fullName", f.FullName,
		validation.Required.Error(msgRequired), validation.Length(0, 200))
	errs.Check("shopName", f.ShopName,
		validation.Required.Error(msgRequired), validation.Length(0, 200))
	errs.Check("tel", f.Tel,
		validation.Required.Error(msgRequired),
		validation.Match(telRegexp).Error(msgPhone))
	if !blank(f.Email) {
		errs.Check("email", f.Email, is.Email)
	}
	errs.Check("designInfoText", f.DesignInfoText, validation.Length(0, 2000))
	errs.Check("shippingAddress", f.ShippingAddress, validation.Length(0, 1000))

	if blank(f.Facebook) && blank(f.Line) {
		errs.Add("facebook", msgContactRequired)
	}

	st := entity.ServiceType(f.ServiceTypeCode)
	if !entity.ValidServiceTypes[st] {
		errs.Add("serviceTypeCode", "must be one of DESIGN_ONLY, PRODUCTION_ONLY, DESIGN_AND_PRODUCTION")
		// The conditional rules branch on the service type; without it
		// they cannot be evaluated meaningfully.
		return errs.Err()
	}

	if st.RequiresShipping() {
		if blank(f.ShippingName) {
			errs.Add("shippingName", msgRequired)
		}
		if blank(f.ShippingTel) {
			errs.Add("shippingTel", msgRequired)
		} else if !telRegexp.MatchString(f.ShippingTel) {
			errs.Add("shippingTel", msgPhone)
		}
		if blank(f.ShippingAddress) {
			errs.Add("shippingAddress", msgRequired)
		}
	}

	if st.RequiresDesign() {
		if blank(f.ThemeCode) {
			errs.Add("themeCode", msgRequired)
		}
		if n := len(f.ColorCodes); n < 1 || n > 3 {
			errs.Add("colorCodes", msgColorCount)
		}
		if len(f.Items) == 0 {
			errs.Add("items", msgItemsRequired)
		}
		// Every item is validated on its own; one broken item never
		// hides problems in its siblings.
		for i, it := range f.Items {
			validateDesignItem(i, it, &errs)
		}
	}

	return errs.Err()
}

func validateDesignItem(idx int, it dto.OrderItemSubmission, errs *Errors) {
	requireCode := func(field, value string) {
		if blank(value) {
			errs.Add(itemPath(idx, field), msgRequired)
		}
	}

	requireCode("productCode", it.ProductCode)
	// Sentinels are matched exactly and case-sensitively.
	if it.ProductCode == entity.ProductOther {
		requireCode("productOther", it.ProductOther)
	}

	requireCode("sizeCode", it.SizeCode)
	if it.SizeCode == entity.SizeCustom {
		requireDimension(idx, "sizeWidth", it.SizeWidth, errs)
		requireDimension(idx, "sizeHeight", it.SizeHeight, errs)
	}

	requireCode("orientationCode", it.OrientationCode)
	requireCode("coatingCode", it.CoatingCode)
	requireCode("pageOptionCode", it.PageOptionCode)
	requireCode("imageOptionCode", it.ImageOptionCode)
	requireCode("brandOptionCode", it.BrandOptionCode)

	if !it.Quantity.Present() {
		errs.Add(itemPath(idx, "quantity"), msgRequired)
	} else if !it.Quantity.IsPositiveInt() {
		errs.Add(itemPath(idx, "quantity"), msgPositiveInt)
	}
}

func requireDimension(idx int, field string, n dto.Number, errs *Errors) {
	if !n.Present() {
		errs.Add(itemPath(idx, field), msgRequired)
		return
	}
	if _, err := n.Float64(); err != nil {
		errs.Add(itemPath(idx, field), msgNumber)
	}
}
