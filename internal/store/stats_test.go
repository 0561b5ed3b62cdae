package store

import (
	"context"
	"testing"
	"time"

	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderStatistics(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	paid := testOrder()
	paid.StatusCode = "DONE"
	paid.PaymentStatusCode = "PAID"
	paid.Paid = decimal.NullDecimal{Decimal: decimal.RequireFromString("1200.50"), Valid: true}
	_, err := db.InsertOrder(ctx, dto.OrderRow(paid))
	require.NoError(t, err)

	pending := testOrder()
	_, err = db.InsertOrder(ctx, dto.OrderRow(pending))
	require.NoError(t, err)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)
	stats, err := db.GetOrderStatistics(ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus["DONE"])
	assert.Equal(t, 1, stats.ByStatus[entity.StatusPending])
	assert.Equal(t, 1, stats.ByPaymentStatus["PAID"])
	assert.True(t, stats.TotalPaid.Equal(decimal.RequireFromString("1200.50")))
	assert.Len(t, stats.RecentOrders, 2)
}

func TestGetOrderStatisticsEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.InsertOrder(ctx, dto.OrderRow(testOrder()))
	require.NoError(t, err)

	from := time.Now().AddDate(0, 0, -30)
	to := time.Now().AddDate(0, 0, -29)
	stats, err := db.GetOrderStatistics(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.True(t, stats.TotalPaid.IsZero())
	assert.Empty(t, stats.RecentOrders)
}
