package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/printline/printline-manager/internal/entity"
)

// InsertOrder stores the order row and returns its id. The human-facing
// order code and the timestamps are assigned here so callers never have to
// think about them.
func (ms *MYSQLStore) InsertOrder(ctx context.Context, row entity.Row) (int, error) {
	params := entity.Row{}
	for k, v := range row {
		params[k] = v
	}
	if _, ok := params["code"]; !ok {
		params["code"] = newOrderCode()
	}
	now := ms.Now()
	params["created_date"] = now
	params["updated_date"] = now

	columns := sortedColumns(params)
	query := fmt.Sprintf("INSERT INTO orders (%s) VALUES (%s)",
		strings.Join(columns, ", "),
		":"+strings.Join(columns, ", :"),
	)

	id, err := ExecNamedLastId(ctx, ms.db, query, params)
	if err != nil {
		return 0, fmt.Errorf("can't insert order: %w", err)
	}
	return id, nil
}

// newOrderCode derives a short human-facing code from a random uuid.
func newOrderCode() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// InsertOrderItems bulk inserts the item rows for an order. All rows get
// the parent id stamped even when the mapper already set it.
func (ms *MYSQLStore) InsertOrderItems(ctx context.Context, orderID int, rows []entity.Row) error {
	if len(rows) == 0 {
		return nil
	}
	stamped := make([]entity.Row, 0, len(rows))
	for _, row := range rows {
		r := entity.Row{}
		for k, v := range row {
			r[k] = v
		}
		r["order_id"] = orderID
		stamped = append(stamped, r)
	}
	if err := BulkInsert(ctx, ms.db, "order_item", stamped); err != nil {
		return fmt.Errorf("can't insert order items: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) DeleteOrderItems(ctx context.Context, orderID int) error {
	return ExecNamed(ctx, ms.db, `DELETE FROM order_item WHERE order_id = :orderId`, map[string]any{
		"orderId": orderID,
	})
}

// GetOrderRow returns the order row by id, or nil when it does not exist.
func (ms *MYSQLStore) GetOrderRow(ctx context.Context, orderID int) (entity.Row, error) {
	return QueryRowNamed(ctx, ms.db, `SELECT * FROM orders WHERE id = :id`, map[string]any{
		"id": orderID,
	})
}

func (ms *MYSQLStore) GetOrderItemRows(ctx context.Context, orderID int) ([]entity.Row, error) {
	return QueryRowsNamed(ctx, ms.db,
		`SELECT * FROM order_item WHERE order_id = :orderId ORDER BY id`,
		map[string]any{"orderId": orderID})
}

// UpdateOrderRow applies the given column values to an order. The update
// timestamp is refreshed on every call.
func (ms *MYSQLStore) UpdateOrderRow(ctx context.Context, orderID int, row entity.Row) error {
	if len(row) == 0 {
		return nil
	}
	params := entity.Row{}
	for k, v := range row {
		params[k] = v
	}
	params["updated_date"] = ms.Now()

	assignments := make([]string, 0, len(params))
	for _, column := range sortedColumns(params) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", column, column))
	}
	params["id"] = orderID

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = :id", strings.Join(assignments, ", "))
	if err := ExecNamed(ctx, ms.db, query, params); err != nil {
		return fmt.Errorf("can't update order: %w", err)
	}
	return nil
}

// ListOrderRows returns a filtered page of order rows plus the total count
// matching the filters.
func (ms *MYSQLStore) ListOrderRows(ctx context.Context, q entity.OrderQuery) ([]entity.Row, int, error) {
	where := []string{"1 = 1"}
	params := map[string]any{}

	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		where = append(where, `(full_name LIKE :keyword OR shop_name LIKE :keyword OR tel LIKE :keyword OR code LIKE :keyword)`)
		params["keyword"] = "%" + kw + "%"
	}
	if q.StatusCode != "" {
		where = append(where, `status_code = :statusCode`)
		params["statusCode"] = q.StatusCode
	}
	if q.PaymentStatusCode != "" {
		where = append(where, `payment_status_code = :paymentStatusCode`)
		params["paymentStatusCode"] = q.PaymentStatusCode
	}
	if q.ServiceTypeCode != "" {
		where = append(where, `service_type_code = :serviceTypeCode`)
		params["serviceTypeCode"] = q.ServiceTypeCode
	}
	condition := strings.Join(where, " AND ")

	count, err := QueryCountNamed(ctx, ms.db,
		fmt.Sprintf("SELECT COUNT(*) FROM orders WHERE %s", condition), params)
	if err != nil {
		return nil, 0, fmt.Errorf("can't count orders: %w", err)
	}

	params["limit"] = q.Limit()
	params["offset"] = q.Offset()
	rows, err := QueryRowsNamed(ctx, ms.db,
		fmt.Sprintf("SELECT * FROM orders WHERE %s ORDER BY created_date DESC, id DESC LIMIT :limit OFFSET :offset", condition),
		params)
	if err != nil {
		return nil, 0, fmt.Errorf("can't list orders: %w", err)
	}
	return rows, count, nil
}

// DeleteOrder removes the order and its items. Items go first so a failure
// never leaves orphaned rows behind a missing parent.
func (ms *MYSQLStore) DeleteOrder(ctx context.Context, orderID int) error {
	if err := ms.DeleteOrderItems(ctx, orderID); err != nil {
		return fmt.Errorf("can't delete order items: %w", err)
	}
	return ExecNamed(ctx, ms.db, `DELETE FROM orders WHERE id = :id`, map[string]any{
		"id": orderID,
	})
}

func sortedColumns(row entity.Row) []string {
	columns := make([]string, 0, len(row))
	for column := range row {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
