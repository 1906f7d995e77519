// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"
	"io"
	"time"

	"taxgrid/internal/domain/entity"
	"taxgrid/internal/domain/repository"
)

// RateUsecase resolves the composite tax rate covering a point.
type RateUsecase interface {
	// Compose finds all jurisdictions covering the point, sums their rates
	// by level and decides in/out-of-service-area status. It never fails on
	// an uncovered point; that is a defined out-of-area result.
	Compose(ctx context.Context, lat, lon float64) (*entity.RateResult, error)

	// ComposeBatch resolves many points with a single covering query. The
	// result is index-aligned with the input and per-point identical to
	// repeated Compose calls.
	ComposeBatch(ctx context.Context, points []repository.Point) ([]*entity.RateResult, error)
}

// CreateOrderInput is a manually entered delivery point.
type CreateOrderInput struct {
	Lat       float64
	Lon       float64
	Subtotal  float64
	Timestamp *time.Time // Defaults to the current time when nil.
}

// OrderUsecase turns delivery points into persisted orders.
type OrderUsecase interface {
	// CreateManualOrder validates the input, resolves its tax rate and
	// persists a single order. Coordinate and subtotal validation happens
	// before any spatial query.
	CreateManualOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// CalculateBatch computes orders for many points without persisting
	// them. Results are per-point identical to repeated single
	// calculations; duplicate input rows yield duplicate output orders.
	CalculateBatch(ctx context.Context, points []entity.DeliveryPoint) ([]*entity.Order, error)

	// ListOrders returns orders matching the filter plus the total count
	// for pagination.
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error)

	// Heatmap returns the location and status of every order.
	Heatmap(ctx context.Context) ([]*entity.Order, error)
}

// ImportResult reports the outcome of a completed import run.
type ImportResult struct {
	Imported int           `json:"imported"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// ImportUsecase ingests a tabular delivery-point dataset.
type ImportUsecase interface {
	// ImportCSV streams rows with columns latitude, longitude, subtotal and
	// optional timestamp. Malformed rows are dropped silently. Accepted
	// rows are committed in fixed-size chunks; a chunk failure aborts the
	// import but leaves previously committed chunks in place, and the
	// returned result carries the partial count alongside the error.
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
}
