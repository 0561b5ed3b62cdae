package store

import (
	"context"
	"testing"

	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		FullName:          "Somchai P.",
		ShopName:          "Baan Kanom",
		Tel:               "0812345678",
		Facebook:          "baankanom",
		ServiceTypeCode:   entity.DesignOnly,
		StatusCode:        entity.StatusPending,
		PaymentStatusCode: entity.PaymentStatusPending,
		ThemeCode:         "MINIMAL",
		ColorCodes:        []string{"WARM_BROWN"},
		DesignInfoText:    "loopy handwritten logo",
	}
}

func TestOrderLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.InsertOrder(ctx, dto.OrderRow(testOrder()))
	require.NoError(t, err)
	require.Positive(t, id)

	q := 100
	itemRows := dto.OrderItemRows(id, []entity.OrderItem{
		{ProductCode: "BOX", SizeCode: "A4", Quantity: &q},
		{ProductCode: "OTHER", ProductOther: "sticker sheet", SizeCode: "A5"},
	})
	require.NoError(t, db.InsertOrderItems(ctx, id, itemRows))

	row, err := db.GetOrderRow(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, row)

	got := dto.OrderFromRow(row)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Somchai P.", got.FullName)
	assert.Equal(t, entity.DesignOnly, got.ServiceTypeCode)
	assert.Equal(t, []string{"WARM_BROWN"}, got.ColorCodes)
	assert.True(t, len(got.Code) > 4, "order code is assigned on insert")
	assert.False(t, got.CreatedAt.IsZero())

	items, err := db.GetOrderItemRows(ctx, id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	first := dto.OrderItemFromRow(items[0])
	assert.Equal(t, "BOX", first.ProductCode)
	require.NotNil(t, first.Quantity)
	assert.Equal(t, 100, *first.Quantity)

	require.NoError(t, db.UpdateOrderRow(ctx, id, entity.Row{
		"theme_code":  "RETRO",
		"status_code": "ACCEPTED",
	}))
	row, err = db.GetOrderRow(ctx, id)
	require.NoError(t, err)
	got = dto.OrderFromRow(row)
	assert.Equal(t, "RETRO", got.ThemeCode)
	assert.Equal(t, "ACCEPTED", got.StatusCode)

	require.NoError(t, db.DeleteOrderItems(ctx, id))
	items, err = db.GetOrderItemRows(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, db.DeleteOrder(ctx, id))
	row, err = db.GetOrderRow(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestGetOrderRowMissing(t *testing.T) {
	db := newTestDB(t)

	row, err := db.GetOrderRow(context.Background(), 999999)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestListOrderRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := testOrder()
	_, err := db.InsertOrder(ctx, dto.OrderRow(a))
	require.NoError(t, err)

	b := testOrder()
	b.FullName = "Malee K."
	b.ShopName = "Dok Mai"
	b.ServiceTypeCode = entity.ProductionOnly
	b.StatusCode = "ACCEPTED"
	_, err = db.InsertOrder(ctx, dto.OrderRow(b))
	require.NoError(t, err)

	rows, total, err := db.ListOrderRows(ctx, entity.OrderQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = db.ListOrderRows(ctx, entity.OrderQuery{Keyword: "Malee"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Malee K.", dto.OrderFromRow(rows[0]).FullName)

	_, total, err = db.ListOrderRows(ctx, entity.OrderQuery{StatusCode: "ACCEPTED"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, total, err = db.ListOrderRows(ctx, entity.OrderQuery{ServiceTypeCode: "DESIGN_ONLY"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	rows, total, err = db.ListOrderRows(ctx, entity.OrderQuery{Page: 2, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 1)
}
