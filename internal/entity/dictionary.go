package entity

import (
	"database/sql"
	"time"
)

// MasterCategory identifies one fixed-vocabulary table of the admin UI.
type MasterCategory string

const (
	MasterServiceTypes  MasterCategory = "service_types"
	MasterThemes        MasterCategory = "themes"
	MasterColors        MasterCategory = "colors"
	MasterProducts      MasterCategory = "item_types"
	MasterSizes         MasterCategory = "item_sizes"
	MasterOrientations  MasterCategory = "item_layouts"
	MasterCoatings      MasterCategory = "item_textures"
	MasterPageOptions   MasterCategory = "item_sides"
	MasterImageOptions  MasterCategory = "item_images"
	MasterBrandOptions  MasterCategory = "item_decorates"
	MasterMaterials     MasterCategory = "item_materials"
	MasterStatuses      MasterCategory = "statuses"
	MasterPaymentStatus MasterCategory = "payment_statuses"
	MasterRoles         MasterCategory = "roles"
)

// MasterCategories lists every category served by the masters API.
var MasterCategories = []MasterCategory{
	MasterServiceTypes, MasterThemes, MasterColors, MasterProducts,
	MasterSizes, MasterOrientations, MasterCoatings, MasterPageOptions,
	MasterImageOptions, MasterBrandOptions, MasterMaterials,
	MasterStatuses, MasterPaymentStatus, MasterRoles,
}

// MasterItem represents one row of the master_item table: a code with a
// human label plus category-specific extras kept as a JSON column.
type MasterItem struct {
	ID        int            `db:"id"`
	Category  MasterCategory `db:"category"`
	Code      string         `db:"code"`
	Label     string         `db:"label"`
	SortOrder int            `db:"sort_order"`
	Active    bool           `db:"active"`
	Extra     sql.NullString `db:"extra"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// DictionaryInfo is the full master-data set loaded into the cache at
// startup and served to the public order form.
type DictionaryInfo struct {
	Items map[MasterCategory][]MasterItem
}
