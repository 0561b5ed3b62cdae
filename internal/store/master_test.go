package store

import (
	"context"
	"testing"

	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDictionaryInfo(t *testing.T) {
	db := newTestDB(t)

	di, err := db.GetDictionaryInfo(context.Background())
	require.NoError(t, err)

	// Every category is present even when empty.
	for _, category := range entity.MasterCategories {
		_, ok := di.Items[category]
		assert.True(t, ok, string(category))
	}

	// The migration seeds the workflow vocabularies.
	codes := map[string]bool{}
	for _, item := range di.Items[entity.MasterServiceTypes] {
		codes[item.Code] = true
	}
	assert.True(t, codes["DESIGN_ONLY"])
	assert.True(t, codes["PRODUCTION_ONLY"])
	assert.True(t, codes["DESIGN_AND_PRODUCTION"])
}

func TestMasterItemLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.AddMasterItem(ctx, &entity.MasterItem{
		Category:  entity.MasterThemes,
		Code:      "TEST_LOFT",
		Label:     "Loft",
		SortOrder: 99,
		Active:    true,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	items, err := db.ListMasterItems(ctx, entity.MasterThemes)
	require.NoError(t, err)
	var found *entity.MasterItem
	for i := range items {
		if items[i].ID == id {
			found = &items[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Loft", found.Label)

	found.Label = "Loft style"
	found.Active = false
	require.NoError(t, db.UpdateMasterItem(ctx, id, found))

	require.NoError(t, db.SetMasterItemActive(ctx, id, true))

	items, err = db.ListMasterItems(ctx, entity.MasterThemes)
	require.NoError(t, err)
	for _, item := range items {
		if item.ID == id {
			assert.Equal(t, "Loft style", item.Label)
			assert.True(t, item.Active)
		}
	}
}

func TestSetMasterItemActiveMissing(t *testing.T) {
	db := newTestDB(t)
	err := db.SetMasterItemActive(context.Background(), 999999, false)
	assert.ErrorIs(t, err, gerr.ErrMasterNotFound)
}
