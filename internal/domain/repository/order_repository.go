package repository

import (
	"context"
	"time"

	"taxgrid/internal/domain/entity"
)

// OrderFilter narrows and paginates order listings for reporting consumers.
type OrderFilter struct {
	Jurisdictions []string // Match orders containing any of these jurisdiction names.
	FromDate      *time.Time
	ToDate        *time.Time
	Page          int // 1-based.
	Limit         int
}

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a single order record.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrders persists a batch of order records. Every input order
	// yields exactly one row, including duplicates.
	CreateOrders(ctx context.Context, orders []*entity.Order) error

	// FindOrders retrieves orders matching the filter, newest first.
	FindOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// CountOrders returns the total number of orders matching the filter.
	CountOrders(ctx context.Context, filter OrderFilter) (int64, error)

	// FindAllPoints returns (lat, lon, status) tuples for every order,
	// consumed by the heatmap view.
	FindAllPoints(ctx context.Context) ([]*entity.Order, error)
}
