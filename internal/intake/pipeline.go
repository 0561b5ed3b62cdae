// Package intake ties decoding, validation and persistence of orders into
// one pipeline. It owns the partial-failure contract: an order that was
// created but whose items could not be stored is a success with a warning,
// never a rolled-back failure.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/printline/printline-manager/internal/dependency"
	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
	"github.com/printline/printline-manager/internal/form"
	"golang.org/x/sync/errgroup"
)

const itemsWarning = "order created but items could not be saved"

// Pipeline processes order submissions and admin updates against an
// injected order store.
type Pipeline struct {
	orders dependency.Orders
}

func New(orders dependency.Orders) *Pipeline {
	return &Pipeline{orders: orders}
}

// Submit decodes, validates and persists a public order submission.
// Validation problems come back as *entity.ValidationError. When the order
// row is stored but its items are not, Submit still succeeds and the
// result carries a warning so the caller can surface it.
func (p *Pipeline) Submit(ctx context.Context, raw []byte) (*entity.SubmitResult, error) {
	var f form.SubmitOrder
	if err := json.Unmarshal(raw, &f.OrderSubmission); err != nil {
		return nil, &entity.ValidationError{Fields: []entity.FieldError{
			{Path: "body", Message: "must be a valid json object"},
		}}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	order := f.ToOrder()
	id, err := p.orders.InsertOrder(ctx, dto.OrderRow(order))
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	itemRows := dto.OrderItemRows(id, order.Items)
	if len(itemRows) > 0 {
		if err := p.orders.InsertOrderItems(ctx, id, itemRows); err != nil {
			slog.Default().ErrorContext(ctx, "order items insert failed",
				slog.Int("orderId", id),
				slog.String("err", err.Error()),
			)
			return &entity.SubmitResult{ID: id, Warning: itemsWarning}, nil
		}
	}
	return &entity.SubmitResult{ID: id}, nil
}

// Fetch loads an order and its items.
func (p *Pipeline) Fetch(ctx context.Context, orderID int) (*entity.Order, error) {
	var (
		row      entity.Row
		itemRows []entity.Row
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		row, err = p.orders.GetOrderRow(gctx, orderID)
		return err
	})
	g.Go(func() error {
		var err error
		itemRows, err = p.orders.GetOrderItemRows(gctx, orderID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if row == nil {
		return nil, gerr.ErrOrderNotFound
	}
	return dto.OrderFromRows(row, itemRows), nil
}

// Update applies a partial admin update. A non-nil items list replaces the
// order's items wholesale; when the replacement insert fails after the old
// items are already gone, the order row update stands and the error is a
// *entity.PartialFailure.
func (p *Pipeline) Update(ctx context.Context, orderID int, raw []byte) (*entity.Order, error) {
	var f form.UpdateOrder
	if err := json.Unmarshal(raw, &f.OrderPatch); err != nil {
		return nil, &entity.ValidationError{Fields: []entity.FieldError{
			{Path: "body", Message: "must be a valid json object"},
		}}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if row, err := p.orders.GetOrderRow(ctx, orderID); err != nil {
		return nil, err
	} else if row == nil {
		return nil, gerr.ErrOrderNotFound
	}

	patch, err := dto.PatchRow(&f.OrderPatch)
	if err != nil {
		return nil, &entity.ValidationError{Fields: []entity.FieldError{
			{Path: "body", Message: "must be a valid number"},
		}}
	}
	if len(patch) > 0 {
		if err := p.orders.UpdateOrderRow(ctx, orderID, patch); err != nil {
			return nil, fmt.Errorf("update order: %w", err)
		}
	}

	if f.Items != nil {
		if err := p.orders.DeleteOrderItems(ctx, orderID); err != nil {
			return nil, &entity.PartialFailure{OrderID: orderID, Err: fmt.Errorf("delete order items: %w", err)}
		}
		itemRows := dto.OrderItemRows(orderID, dto.ToOrderItems(*f.Items))
		if len(itemRows) > 0 {
			if err := p.orders.InsertOrderItems(ctx, orderID, itemRows); err != nil {
				slog.Default().ErrorContext(ctx, "order items replace failed",
					slog.Int("orderId", orderID),
					slog.String("err", err.Error()),
				)
				return nil, &entity.PartialFailure{OrderID: orderID, Err: fmt.Errorf("insert order items: %w", err)}
			}
		}
	}

	return p.Fetch(ctx, orderID)
}
