package cache

import (
	"testing"

	"github.com/printline/printline-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDict() *entity.DictionaryInfo {
	return &entity.DictionaryInfo{
		Items: map[entity.MasterCategory][]entity.MasterItem{
			entity.MasterThemes: {
				{Category: entity.MasterThemes, Code: "MINIMAL", Label: "Minimal", Active: true},
				{Category: entity.MasterThemes, Code: "RETRO", Label: "Retro", Active: true},
			},
			entity.MasterColors: {
				{Category: entity.MasterColors, Code: "WARM_BROWN", Label: "Warm brown", Active: true},
			},
		},
	}
}

func TestGetMasterItem(t *testing.T) {
	c := New(testDict())

	item, ok := c.GetMasterItem(entity.MasterThemes, "RETRO")
	require.True(t, ok)
	assert.Equal(t, "Retro", item.Label)

	_, ok = c.GetMasterItem(entity.MasterThemes, "retro")
	assert.False(t, ok, "codes are case-sensitive")

	_, ok = c.GetMasterItem(entity.MasterSizes, "A4")
	assert.False(t, ok, "unknown category")
}

func TestRefreshSwapsWholesale(t *testing.T) {
	c := New(testDict())

	c.Refresh(&entity.DictionaryInfo{
		Items: map[entity.MasterCategory][]entity.MasterItem{
			entity.MasterThemes: {
				{Category: entity.MasterThemes, Code: "LOFT", Label: "Loft", Active: true},
			},
		},
	})

	_, ok := c.GetMasterItem(entity.MasterThemes, "RETRO")
	assert.False(t, ok)
	_, ok = c.GetMasterItem(entity.MasterColors, "WARM_BROWN")
	assert.False(t, ok)
	item, ok := c.GetMasterItem(entity.MasterThemes, "LOFT")
	require.True(t, ok)
	assert.Equal(t, "Loft", item.Label)
}

func TestGetDict(t *testing.T) {
	di := testDict()
	c := New(di)
	assert.Same(t, di, c.GetDict())
}
