package dto

import "github.com/printline/printline-manager/internal/entity"

// fieldAlias binds one domain field to its storage column names. The first
// column is canonical and is the one written; any further columns are
// legacy names from before the order_item rename migration and are still
// accepted on read, first-present-wins. Both mapping directions are derived
// from these tables so the two can never drift apart.
type fieldAlias struct {
	field   string
	columns []string
}

func alias(field string, columns ...string) fieldAlias {
	return fieldAlias{field: field, columns: columns}
}

// column returns the canonical storage column.
func (a fieldAlias) column() string {
	return a.columns[0]
}

// pick reads the concept out of a row, preferring the canonical column and
// falling back to legacy names. A key that is absent or holds SQL NULL does
// not count as present.
func (a fieldAlias) pick(row entity.Row) (any, bool) {
	for _, col := range a.columns {
		if v, ok := row[col]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Order-level concepts. colorCodes is stored JSON-encoded under mood_tone;
// designInfoText is stored under brief. Everything not listed here has no
// storage mapping and is dropped by the mapper.
var (
	aliasFullName          = alias("fullName", "full_name")
	aliasShopName          = alias("shopName", "shop_name")
	aliasTel               = alias("tel", "tel")
	aliasEmail             = alias("email", "email")
	aliasFacebook          = alias("facebook", "facebook")
	aliasLine              = alias("line", "line")
	aliasServiceTypeCode   = alias("serviceTypeCode", "service_type_code")
	aliasStatusCode        = alias("statusCode", "status_code")
	aliasPaymentStatusCode = alias("paymentStatusCode", "payment_status_code")
	aliasShippingName      = alias("shippingName", "shipping_name")
	aliasShippingTel       = alias("shippingTel", "shipping_tel")
	aliasShippingAddress   = alias("shippingAddress", "shipping_address")
	aliasThemeCode         = alias("themeCode", "theme_code")
	aliasColorCodes        = alias("colorCodes", "mood_tone", "color_codes")
	aliasDesignInfoText    = alias("designInfoText", "brief", "design_info")

	aliasPrice            = alias("price", "price")
	aliasDesignerBudget   = alias("designerBudget", "designer_budget")
	aliasDiscount         = alias("discount", "discount")
	aliasPaid             = alias("paid", "paid")
	aliasShippingPrice    = alias("shippingPrice", "shipping_price")
	aliasFileURL          = alias("fileUrl", "file_url")
	aliasCoPartner        = alias("coPartnerId", "co_partner_id")
	aliasDesignerOwner    = alias("designerOwnerId", "designer_owner_id")
	aliasPreProduction    = alias("preProductionOwnerId", "pre_production_owner_id")
	aliasJobOwner         = alias("jobOwnerId", "job_owner_id")
	aliasShipperOwner     = alias("shipperOwnerId", "shipper_owner_id")
	aliasAcceptDate       = alias("acceptDate", "accept_date")
	aliasOrderCode        = alias("code", "code")
	aliasCreatedAt        = alias("createdAt", "created_date")
	aliasUpdatedAt        = alias("updatedAt", "updated_date")
)

// Item-level concepts. The legacy names predate the rename migration that
// compacted the verbose column names (orientation_code -> layout_code and
// friends); rows written before it are still readable.
var (
	aliasItemOrderID     = alias("orderId", "order_id")
	aliasProductCode     = alias("productCode", "item_type_code", "product_code")
	aliasProductOther    = alias("productOther", "item_type_other", "product_other")
	aliasSizeCode        = alias("sizeCode", "size_code")
	aliasSizeWidth       = alias("sizeWidth", "width", "size_width")
	aliasSizeHeight      = alias("sizeHeight", "height", "size_height")
	aliasOrientationCode = alias("orientationCode", "layout_code", "orientation_code")
	aliasCoatingCode     = alias("coatingCode", "texture_code", "coating_code")
	aliasPageOptionCode  = alias("pageOptionCode", "side_code", "page_option_code")
	aliasImageOptionCode = alias("imageOptionCode", "image_code", "image_option_code")
	aliasBrandOptionCode = alias("brandOptionCode", "decorate_code", "brand_option_code")
	aliasQuantity        = alias("quantity", "quantity")

	aliasMaterialCode    = alias("materialCode", "material_code")
	aliasMaterialOther   = alias("materialOther", "material_other")
	aliasItemPrice       = alias("itemPrice", "item_price")
	aliasDesignerPrice   = alias("designerPrice", "designer_price")
	aliasToolTypeCode    = alias("toolTypeCode", "tool_type_code")
	aliasProductionOwner = alias("productionOwnerId", "production_owner_id")
)

// submissionItemAliases are the item concepts that can arrive from the
// public form. An item row is worth persisting only if at least one of
// these is non-null after mapping.
var submissionItemAliases = []fieldAlias{
	aliasProductCode, aliasProductOther, aliasSizeCode,
	aliasSizeWidth, aliasSizeHeight, aliasOrientationCode,
	aliasCoatingCode, aliasPageOptionCode, aliasImageOptionCode,
	aliasBrandOptionCode, aliasQuantity,
}
