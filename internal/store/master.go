package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
)

// GetDictionaryInfo loads every master category in one query, grouped for
// the cache.
func (ms *MYSQLStore) GetDictionaryInfo(ctx context.Context) (*entity.DictionaryInfo, error) {
	query := `SELECT * FROM master_item ORDER BY category, sort_order, code`
	items, err := QueryListNamed[entity.MasterItem](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get master items: %w", err)
	}

	di := &entity.DictionaryInfo{
		Items: make(map[entity.MasterCategory][]entity.MasterItem, len(entity.MasterCategories)),
	}
	for _, category := range entity.MasterCategories {
		di.Items[category] = []entity.MasterItem{}
	}
	for _, item := range items {
		di.Items[item.Category] = append(di.Items[item.Category], item)
	}
	return di, nil
}

func (ms *MYSQLStore) ListMasterItems(ctx context.Context, category entity.MasterCategory) ([]entity.MasterItem, error) {
	query := `SELECT * FROM master_item WHERE category = :category ORDER BY sort_order, code`
	return QueryListNamed[entity.MasterItem](ctx, ms.db, query, map[string]any{
		"category": string(category),
	})
}

func (ms *MYSQLStore) AddMasterItem(ctx context.Context, item *entity.MasterItem) (int, error) {
	query := `
	INSERT INTO master_item (category, code, label, sort_order, active, extra)
	VALUES (:category, :code, :label, :sortOrder, :active, :extra)`
	id, err := ExecNamedLastId(ctx, ms.db, query, map[string]any{
		"category":  string(item.Category),
		"code":      item.Code,
		"label":     item.Label,
		"sortOrder": item.SortOrder,
		"active":    item.Active,
		"extra":     item.Extra,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add master item: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) UpdateMasterItem(ctx context.Context, id int, item *entity.MasterItem) error {
	query := `
	UPDATE master_item
	SET label = :label,
		sort_order = :sortOrder,
		active = :active,
		extra = :extra
	WHERE id = :id`
	return ExecNamed(ctx, ms.db, query, map[string]any{
		"id":        id,
		"label":     item.Label,
		"sortOrder": item.SortOrder,
		"active":    item.Active,
		"extra":     item.Extra,
	})
}

func (ms *MYSQLStore) SetMasterItemActive(ctx context.Context, id int, active bool) error {
	if _, err := ms.getMasterItemById(ctx, id); err != nil {
		return err
	}
	return ExecNamed(ctx, ms.db, `UPDATE master_item SET active = :active WHERE id = :id`, map[string]any{
		"id":     id,
		"active": active,
	})
}

func (ms *MYSQLStore) getMasterItemById(ctx context.Context, id int) (*entity.MasterItem, error) {
	item, err := QueryNamedOne[entity.MasterItem](ctx, ms.db,
		`SELECT * FROM master_item WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrMasterNotFound
		}
		return nil, err
	}
	return &item, nil
}
