package store

import (
	"context"
	"fmt"
	"time"

	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
	"github.com/shopspring/decimal"
)

type statusCount struct {
	Code  string `db:"code"`
	Count int    `db:"cnt"`
}

// GetOrderStatistics aggregates the dashboard numbers for orders created in
// [from, to).
func (ms *MYSQLStore) GetOrderStatistics(ctx context.Context, from, to time.Time) (*entity.OrderStatistics, error) {
	params := map[string]any{
		"from": from,
		"to":   to,
	}

	stats := &entity.OrderStatistics{
		ByStatus:        map[string]int{},
		ByPaymentStatus: map[string]int{},
	}

	total, err := QueryCountNamed(ctx, ms.db,
		`SELECT COUNT(*) FROM orders WHERE created_date >= :from AND created_date < :to`, params)
	if err != nil {
		return nil, fmt.Errorf("can't count orders: %w", err)
	}
	stats.Total = total

	byStatus, err := QueryListNamed[statusCount](ctx, ms.db, `
	SELECT COALESCE(status_code, '') AS code, COUNT(*) AS cnt
	FROM orders
	WHERE created_date >= :from AND created_date < :to
	GROUP BY status_code`, params)
	if err != nil {
		return nil, fmt.Errorf("can't count orders by status: %w", err)
	}
	for _, sc := range byStatus {
		stats.ByStatus[sc.Code] = sc.Count
	}

	byPayment, err := QueryListNamed[statusCount](ctx, ms.db, `
	SELECT COALESCE(payment_status_code, '') AS code, COUNT(*) AS cnt
	FROM orders
	WHERE created_date >= :from AND created_date < :to
	GROUP BY payment_status_code`, params)
	if err != nil {
		return nil, fmt.Errorf("can't count orders by payment status: %w", err)
	}
	for _, sc := range byPayment {
		stats.ByPaymentStatus[sc.Code] = sc.Count
	}

	rows, err := QueryRowsNamed(ctx, ms.db, `
	SELECT COALESCE(SUM(paid), 0) AS total_paid
	FROM orders
	WHERE created_date >= :from AND created_date < :to`, params)
	if err != nil {
		return nil, fmt.Errorf("can't sum paid: %w", err)
	}
	if len(rows) > 0 {
		if v, ok := rows[0]["total_paid"]; ok && v != nil {
			if d, err := decimal.NewFromString(string(asBytes(v))); err == nil {
				stats.TotalPaid = d
			}
		}
	}

	recentRows, err := QueryRowsNamed(ctx, ms.db, `
	SELECT * FROM orders
	WHERE created_date >= :from AND created_date < :to
	ORDER BY created_date DESC, id DESC
	LIMIT 5`, params)
	if err != nil {
		return nil, fmt.Errorf("can't list recent orders: %w", err)
	}
	for _, row := range recentRows {
		stats.RecentOrders = append(stats.RecentOrders, *dto.OrderFromRow(row))
	}

	return stats, nil
}

func asBytes(v any) []byte {
	switch t := v.(type) {
	case []byte:
		return t
	case string:
		return []byte(t)
	default:
		return []byte(fmt.Sprintf("%v", t))
	}
}
