package store

import (
	"context"
	"testing"

	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaim(orderID int) *entity.ClaimInsert {
	return &entity.ClaimInsert{
		OrderID:      orderID,
		Description:  "box arrived dented",
		ReporterName: "Somchai P.",
		ReportedBy:   "somsri",
		Status:       entity.ClaimOpen,
		Priority:     entity.ClaimHigh,
		ClaimType:    entity.ClaimDelivery,
		Shipper:      true,
	}
}

func TestClaimLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	orderID, err := db.InsertOrder(ctx, dto.OrderRow(testOrder()))
	require.NoError(t, err)

	id, err := db.AddClaim(ctx, testClaim(orderID))
	require.NoError(t, err)
	require.Positive(t, id)

	c, err := db.GetClaimById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, orderID, c.OrderID)
	assert.Equal(t, entity.ClaimOpen, c.Status)
	assert.Equal(t, entity.ClaimHigh, c.Priority)
	assert.True(t, c.Shipper)
	assert.False(t, c.Designer)

	upd := testClaim(orderID)
	upd.Priority = entity.ClaimUrgent
	upd.Designer = true
	require.NoError(t, db.UpdateClaim(ctx, id, upd))
	c, err = db.GetClaimById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimUrgent, c.Priority)
	assert.True(t, c.Designer)

	require.NoError(t, db.SetClaimStatus(ctx, id, entity.ClaimResolved))
	c, err = db.GetClaimById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimResolved, c.Status)

	byOrder, err := db.ListClaimsByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	assert.Equal(t, id, byOrder[0].ID)
}

func TestListClaimsFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	orderID, err := db.InsertOrder(ctx, dto.OrderRow(testOrder()))
	require.NoError(t, err)

	open := testClaim(orderID)
	_, err = db.AddClaim(ctx, open)
	require.NoError(t, err)

	closed := testClaim(orderID)
	closed.Status = entity.ClaimClosed
	_, err = db.AddClaim(ctx, closed)
	require.NoError(t, err)

	all, total, err := db.ListClaims(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	openOnly, total, err := db.ListClaims(ctx, entity.ClaimOpen, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, openOnly, 1)
	assert.Equal(t, entity.ClaimOpen, openOnly[0].Status)
}

func TestClaimMissing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.GetClaimById(ctx, 999999)
	assert.ErrorIs(t, err, gerr.ErrClaimNotFound)

	err = db.SetClaimStatus(ctx, 999999, entity.ClaimClosed)
	assert.ErrorIs(t, err, gerr.ErrClaimNotFound)
}
