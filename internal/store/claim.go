package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
)

func claimParams(c *entity.ClaimInsert) map[string]any {
	return map[string]any{
		"orderId":        c.OrderID,
		"description":    c.Description,
		"reporterName":   c.ReporterName,
		"reportedBy":     c.ReportedBy,
		"status":         string(c.Status),
		"priority":       string(c.Priority),
		"claimType":      string(c.ClaimType),
		"admin":          c.Admin,
		"designer":       c.Designer,
		"productionTeam": c.ProductionTeam,
		"shipper":        c.Shipper,
		"preProduction":  c.PreProduction,
	}
}

func (ms *MYSQLStore) AddClaim(ctx context.Context, c *entity.ClaimInsert) (int, error) {
	query := `
	INSERT INTO claim_order
		(order_id, description, reporter_name, reported_by, status, priority, claim_type,
		 admin, designer, production_team, shipper, pre_production)
	VALUES
		(:orderId, :description, :reporterName, :reportedBy, :status, :priority, :claimType,
		 :admin, :designer, :productionTeam, :shipper, :preProduction)`
	id, err := ExecNamedLastId(ctx, ms.db, query, claimParams(c))
	if err != nil {
		return 0, fmt.Errorf("can't add claim: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) GetClaimById(ctx context.Context, id int) (*entity.Claim, error) {
	c, err := QueryNamedOne[entity.Claim](ctx, ms.db,
		`SELECT * FROM claim_order WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrClaimNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (ms *MYSQLStore) ListClaimsByOrder(ctx context.Context, orderID int) ([]entity.Claim, error) {
	return QueryListNamed[entity.Claim](ctx, ms.db,
		`SELECT * FROM claim_order WHERE order_id = :orderId ORDER BY created_at DESC`,
		map[string]any{"orderId": orderID})
}

func (ms *MYSQLStore) ListClaims(ctx context.Context, status entity.ClaimStatus, limit, offset int) ([]entity.Claim, int, error) {
	condition := "1 = 1"
	params := map[string]any{}
	if status != "" {
		condition = "status = :status"
		params["status"] = string(status)
	}

	count, err := QueryCountNamed(ctx, ms.db,
		fmt.Sprintf("SELECT COUNT(*) FROM claim_order WHERE %s", condition), params)
	if err != nil {
		return nil, 0, fmt.Errorf("can't count claims: %w", err)
	}

	params["limit"] = limit
	params["offset"] = offset
	claims, err := QueryListNamed[entity.Claim](ctx, ms.db,
		fmt.Sprintf("SELECT * FROM claim_order WHERE %s ORDER BY created_at DESC, id DESC LIMIT :limit OFFSET :offset", condition),
		params)
	if err != nil {
		return nil, 0, fmt.Errorf("can't list claims: %w", err)
	}
	return claims, count, nil
}

func (ms *MYSQLStore) UpdateClaim(ctx context.Context, id int, c *entity.ClaimInsert) error {
	query := `
	UPDATE claim_order
	SET description = :description,
		reporter_name = :reporterName,
		reported_by = :reportedBy,
		status = :status,
		priority = :priority,
		claim_type = :claimType,
		admin = :admin,
		designer = :designer,
		production_team = :productionTeam,
		shipper = :shipper,
		pre_production = :preProduction
	WHERE id = :id`
	params := claimParams(c)
	delete(params, "orderId")
	params["id"] = id
	return ExecNamed(ctx, ms.db, query, params)
}

func (ms *MYSQLStore) SetClaimStatus(ctx context.Context, id int, status entity.ClaimStatus) error {
	if _, err := ms.GetClaimById(ctx, id); err != nil {
		return err
	}
	return ExecNamed(ctx, ms.db, `UPDATE claim_order SET status = :status WHERE id = :id`, map[string]any{
		"id":     id,
		"status": string(status),
	})
}
