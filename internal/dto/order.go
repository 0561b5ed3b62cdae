package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/printline/printline-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// OrderRow maps a domain order to its flat storage row. Empty strings
// become NULL (the storage layer distinguishes "not applicable" from
// "empty"), colorCodes are JSON-encoded under mood_tone with an
// empty/absent list stored as NULL, and the design brief is trimmed before
// storage. Domain fields without an alias are not written; there is no
// passthrough of arbitrary keys.
func OrderRow(o *entity.Order) entity.Row {
	row := entity.Row{
		aliasFullName.column():          nullIfBlank(o.FullName),
		aliasShopName.column():          nullIfBlank(o.ShopName),
		aliasTel.column():               nullIfBlank(o.Tel),
		aliasEmail.column():             nullIfBlank(o.Email),
		aliasFacebook.column():          nullIfBlank(o.Facebook),
		aliasLine.column():              nullIfBlank(o.Line),
		aliasServiceTypeCode.column():   nullIfBlank(string(o.ServiceTypeCode)),
		aliasStatusCode.column():        nullIfBlank(o.StatusCode),
		aliasPaymentStatusCode.column(): nullIfBlank(o.PaymentStatusCode),
		aliasShippingName.column():      nullIfBlank(o.ShippingName),
		aliasShippingTel.column():       nullIfBlank(o.ShippingTel),
		aliasShippingAddress.column():   nullIfBlank(o.ShippingAddress),
		aliasThemeCode.column():         nullIfBlank(o.ThemeCode),
		aliasColorCodes.column():        encodeColorCodes(o.ColorCodes),
		aliasDesignInfoText.column():    nullIfBlank(strings.TrimSpace(o.DesignInfoText)),
		aliasPrice.column():             nullDecimal(o.Price),
		aliasDesignerBudget.column():    nullDecimal(o.DesignerBudget),
		aliasDiscount.column():          nullDecimal(o.Discount),
		aliasPaid.column():              nullDecimal(o.Paid),
		aliasShippingPrice.column():     nullDecimal(o.ShippingPrice),
		aliasFileURL.column():           nullIfBlank(o.FileURL),
		aliasCoPartner.column():         nullIntPtr(o.CoPartnerID),
		aliasDesignerOwner.column():     nullIntPtr(o.DesignerOwnerID),
		aliasPreProduction.column():     nullIntPtr(o.PreProductionOwnerID),
		aliasJobOwner.column():          nullIntPtr(o.JobOwnerID),
		aliasShipperOwner.column():      nullIntPtr(o.ShipperOwnerID),
	}
	if o.AcceptDate != nil {
		row[aliasAcceptDate.column()] = *o.AcceptDate
	} else {
		row[aliasAcceptDate.column()] = nil
	}
	return row
}

// OrderItemRows maps the order's items to storage rows tagged with the
// parent id. Fully empty item stubs (every submission-mapped field NULL)
// are filtered out rather than persisted as blank rows.
func OrderItemRows(orderID int, items []entity.OrderItem) []entity.Row {
	rows := make([]entity.Row, 0, len(items))
	for _, it := range items {
		row := orderItemRow(orderID, &it)
		if meaningfulItemRow(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func orderItemRow(orderID int, it *entity.OrderItem) entity.Row {
	return entity.Row{
		aliasItemOrderID.column():     orderID,
		aliasProductCode.column():     nullIfBlank(it.ProductCode),
		aliasProductOther.column():    nullIfBlank(it.ProductOther),
		aliasSizeCode.column():        nullIfBlank(it.SizeCode),
		aliasSizeWidth.column():       nullFloatPtr(it.SizeWidth),
		aliasSizeHeight.column():      nullFloatPtr(it.SizeHeight),
		aliasOrientationCode.column(): nullIfBlank(it.OrientationCode),
		aliasCoatingCode.column():     nullIfBlank(it.CoatingCode),
		aliasPageOptionCode.column():  nullIfBlank(it.PageOptionCode),
		aliasImageOptionCode.column(): nullIfBlank(it.ImageOptionCode),
		aliasBrandOptionCode.column(): nullIfBlank(it.BrandOptionCode),
		aliasQuantity.column():        nullIntPtr(it.Quantity),
		aliasMaterialCode.column():    nullIfBlank(it.MaterialCode),
		aliasMaterialOther.column():   nullIfBlank(it.MaterialOther),
		aliasItemPrice.column():       nullDecimal(it.ItemPrice),
		aliasDesignerPrice.column():   nullDecimal(it.DesignerPrice),
		aliasToolTypeCode.column():    nullIfBlank(it.ToolTypeCode),
		aliasProductionOwner.column(): nullIntPtr(it.ProductionOwnerID),
	}
}

func meaningfulItemRow(row entity.Row) bool {
	for _, a := range submissionItemAliases {
		if row[a.column()] != nil {
			return true
		}
	}
	return false
}

// PatchRow builds a partial storage row from an admin update: only fields
// present in the patch appear, with empty strings normalized to NULL the
// same way the insert path does.
func PatchRow(p *OrderPatch) (entity.Row, error) {
	row := entity.Row{}
	setStr := func(a fieldAlias, v *string) {
		if v != nil {
			row[a.column()] = nullIfBlank(*v)
		}
	}
	setStr(aliasFullName, p.FullName)
	setStr(aliasShopName, p.ShopName)
	setStr(aliasTel, p.Tel)
	setStr(aliasEmail, p.Email)
	setStr(aliasFacebook, p.Facebook)
	setStr(aliasLine, p.Line)
	setStr(aliasServiceTypeCode, p.ServiceTypeCode)
	setStr(aliasStatusCode, p.StatusCode)
	setStr(aliasPaymentStatusCode, p.PaymentStatusCode)
	setStr(aliasShippingName, p.ShippingName)
	setStr(aliasShippingTel, p.ShippingTel)
	setStr(aliasShippingAddress, p.ShippingAddress)
	setStr(aliasThemeCode, p.ThemeCode)
	setStr(aliasFileURL, p.FileURL)
	if p.DesignInfoText != nil {
		row[aliasDesignInfoText.column()] = nullIfBlank(strings.TrimSpace(*p.DesignInfoText))
	}
	if p.ColorCodes != nil {
		row[aliasColorCodes.column()] = encodeColorCodes(*p.ColorCodes)
	}
	setMoney := func(a fieldAlias, v *Number) error {
		if v == nil {
			return nil
		}
		if !v.Present() {
			row[a.column()] = nil
			return nil
		}
		d, err := decimal.NewFromString(string(*v))
		if err != nil {
			return err
		}
		row[a.column()] = d
		return nil
	}
	for _, m := range []struct {
		a fieldAlias
		v *Number
	}{
		{aliasPrice, p.Price},
		{aliasDesignerBudget, p.DesignerBudget},
		{aliasDiscount, p.Discount},
		{aliasPaid, p.Paid},
		{aliasShippingPrice, p.ShippingPrice},
	} {
		if err := setMoney(m.a, m.v); err != nil {
			return nil, err
		}
	}
	setInt := func(a fieldAlias, v *int) {
		if v != nil {
			row[a.column()] = *v
		}
	}
	setInt(aliasCoPartner, p.CoPartnerID)
	setInt(aliasDesignerOwner, p.DesignerOwnerID)
	setInt(aliasJobOwner, p.JobOwnerID)
	setInt(aliasShipperOwner, p.ShipperOwnerID)
	return row, nil
}

// OrderFromRow is the read-side inverse of OrderRow. It accepts both the
// canonical and legacy column names for every concept (first present wins)
// and tolerates a malformed mood_tone JSON string by treating it as no
// colors rather than failing the whole read.
func OrderFromRow(row entity.Row) *entity.Order {
	o := &entity.Order{
		FullName:          pickString(row, aliasFullName),
		ShopName:          pickString(row, aliasShopName),
		Tel:               pickString(row, aliasTel),
		Email:             pickString(row, aliasEmail),
		Facebook:          pickString(row, aliasFacebook),
		Line:              pickString(row, aliasLine),
		ServiceTypeCode:   entity.ServiceType(pickString(row, aliasServiceTypeCode)),
		StatusCode:        pickString(row, aliasStatusCode),
		PaymentStatusCode: pickString(row, aliasPaymentStatusCode),
		ShippingName:      pickString(row, aliasShippingName),
		ShippingTel:       pickString(row, aliasShippingTel),
		ShippingAddress:   pickString(row, aliasShippingAddress),
		ThemeCode:         pickString(row, aliasThemeCode),
		ColorCodes:        decodeColorCodes(row),
		DesignInfoText:    pickString(row, aliasDesignInfoText),
		Code:              pickString(row, aliasOrderCode),
		Price:             pickDecimal(row, aliasPrice),
		DesignerBudget:    pickDecimal(row, aliasDesignerBudget),
		Discount:          pickDecimal(row, aliasDiscount),
		Paid:              pickDecimal(row, aliasPaid),
		ShippingPrice:     pickDecimal(row, aliasShippingPrice),
		FileURL:           pickString(row, aliasFileURL),
		CoPartnerID:       pickIntPtr(row, aliasCoPartner),
		DesignerOwnerID:   pickIntPtr(row, aliasDesignerOwner),
		PreProductionOwnerID: pickIntPtr(row, aliasPreProduction),
		JobOwnerID:        pickIntPtr(row, aliasJobOwner),
		ShipperOwnerID:    pickIntPtr(row, aliasShipperOwner),
		AcceptDate:        pickTimePtr(row, aliasAcceptDate),
	}
	if id, ok := row["id"]; ok {
		if n, ok := asInt(id); ok {
			o.ID = n
		}
	}
	if ts, ok := aliasCreatedAt.pick(row); ok {
		if t, ok := asTime(ts); ok {
			o.CreatedAt = t
		}
	}
	if ts, ok := aliasUpdatedAt.pick(row); ok {
		if t, ok := asTime(ts); ok {
			o.UpdatedAt = t
		}
	}
	return o
}

// OrderItemFromRow reconstructs one item from its storage row.
func OrderItemFromRow(row entity.Row) entity.OrderItem {
	it := entity.OrderItem{
		ProductCode:     pickString(row, aliasProductCode),
		ProductOther:    pickString(row, aliasProductOther),
		SizeCode:        pickString(row, aliasSizeCode),
		SizeWidth:       pickFloatPtr(row, aliasSizeWidth),
		SizeHeight:      pickFloatPtr(row, aliasSizeHeight),
		OrientationCode: pickString(row, aliasOrientationCode),
		CoatingCode:     pickString(row, aliasCoatingCode),
		PageOptionCode:  pickString(row, aliasPageOptionCode),
		ImageOptionCode: pickString(row, aliasImageOptionCode),
		BrandOptionCode: pickString(row, aliasBrandOptionCode),
		Quantity:        pickIntPtr(row, aliasQuantity),
		MaterialCode:    pickString(row, aliasMaterialCode),
		MaterialOther:   pickString(row, aliasMaterialOther),
		ItemPrice:       pickDecimal(row, aliasItemPrice),
		DesignerPrice:   pickDecimal(row, aliasDesignerPrice),
		ToolTypeCode:    pickString(row, aliasToolTypeCode),
		ProductionOwnerID: pickIntPtr(row, aliasProductionOwner),
	}
	if id, ok := row["id"]; ok {
		if n, ok := asInt(id); ok {
			it.ID = n
		}
	}
	if oid, ok := aliasItemOrderID.pick(row); ok {
		if n, ok := asInt(oid); ok {
			it.OrderID = n
		}
	}
	return it
}

// OrderFromRows composes a full order from its row and the separately
// fetched item rows.
func OrderFromRows(row entity.Row, itemRows []entity.Row) *entity.Order {
	o := OrderFromRow(row)
	for _, ir := range itemRows {
		o.Items = append(o.Items, OrderItemFromRow(ir))
	}
	return o
}

func encodeColorCodes(codes []string) any {
	if len(codes) == 0 {
		return nil
	}
	b, err := json.Marshal(codes)
	if err != nil {
		return nil
	}
	return string(b)
}

func decodeColorCodes(row entity.Row) []string {
	v, ok := aliasColorCodes.pick(row)
	if !ok {
		return nil
	}
	// Fakes may hand the slice back directly.
	if codes, ok := v.([]string); ok {
		return append([]string(nil), codes...)
	}
	var codes []string
	if err := json.Unmarshal([]byte(asString(v)), &codes); err != nil {
		return nil
	}
	return codes
}

func nullIfBlank(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIntPtr(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloatPtr(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullDecimal(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}

func pickString(row entity.Row, a fieldAlias) string {
	v, ok := a.pick(row)
	if !ok {
		return ""
	}
	return asString(v)
}

func pickIntPtr(row entity.Row, a fieldAlias) *int {
	v, ok := a.pick(row)
	if !ok {
		return nil
	}
	if n, ok := asInt(v); ok {
		return &n
	}
	return nil
}

func pickFloatPtr(row entity.Row, a fieldAlias) *float64 {
	v, ok := a.pick(row)
	if !ok {
		return nil
	}
	if f, ok := asFloat(v); ok {
		return &f
	}
	return nil
}

func pickDecimal(row entity.Row, a fieldAlias) decimal.NullDecimal {
	v, ok := a.pick(row)
	if !ok {
		return decimal.NullDecimal{}
	}
	if d, ok := asDecimal(v); ok {
		return decimal.NullDecimal{Decimal: d, Valid: true}
	}
	return decimal.NullDecimal{}
}

func pickTimePtr(row entity.Row, a fieldAlias) *time.Time {
	v, ok := a.pick(row)
	if !ok {
		return nil
	}
	if t, ok := asTime(v); ok {
		return &t
	}
	return nil
}
