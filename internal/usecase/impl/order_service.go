package impl

import (
	"context"
	"time"

	"taxgrid/internal/domain/entity"
	domainerrors "taxgrid/internal/domain/errors"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/errors"
	"taxgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderService struct {
	composer  usecase.RateUsecase
	orderRepo repository.OrderRepository
}

// NewOrderService creates the order tax calculation service.
func NewOrderService(composer usecase.RateUsecase, orderRepo repository.OrderRepository) usecase.OrderUsecase {
	return &orderService{
		composer:  composer,
		orderRepo: orderRepo,
	}
}

// CreateManualOrder handles the single-point synchronous path for manually
// entered orders. Inputs are validated before any spatial query runs.
func (s *orderService) CreateManualOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validatePoint(input.Lat, input.Lon, input.Subtotal); err != nil {
		return nil, err
	}

	timestamp := time.Now()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}

	order, err := s.calculate(ctx, entity.DeliveryPoint{
		Lat:       input.Lat,
		Lon:       input.Lon,
		Subtotal:  input.Subtotal,
		Timestamp: timestamp,
	})
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to persist manual order")
	}

	return order, nil
}

// CalculateBatch computes one order per delivery point without persisting.
// The whole batch is resolved through a single covering query; every input
// row yields exactly one output order, including rows that share identical
// coordinates, subtotal and timestamp.
func (s *orderService) CalculateBatch(ctx context.Context, points []entity.DeliveryPoint) ([]*entity.Order, error) {
	coords := make([]repository.Point, len(points))
	for i, point := range points {
		coords[i] = repository.Point{Lat: point.Lat, Lon: point.Lon}
	}

	results, err := s.composer.ComposeBatch(ctx, coords)
	if err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, len(points))
	for i, point := range points {
		orders[i] = buildOrder(point, results[i])
	}

	return orders, nil
}

// ListOrders returns a filtered, paginated order listing for reporting.
func (s *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	orders, err := s.orderRepo.FindOrders(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find orders")
	}

	total, err := s.orderRepo.CountOrders(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	return orders, total, nil
}

// Heatmap returns the location and status of every order.
func (s *orderService) Heatmap(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindAllPoints(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load heatmap points")
	}

	return orders, nil
}

func (s *orderService) calculate(ctx context.Context, point entity.DeliveryPoint) (*entity.Order, error) {
	result, err := s.composer.Compose(ctx, point.Lat, point.Lon)
	if err != nil {
		return nil, err
	}

	return buildOrder(point, result), nil
}

// buildOrder folds a delivery point and its composed rate into an order.
func buildOrder(point entity.DeliveryPoint, result *entity.RateResult) *entity.Order {
	taxAmount, totalAmount := computeAmounts(point.Subtotal, result.CompositeRate)

	return &entity.Order{
		ID:               uuid.New(),
		Lat:              point.Lat,
		Lon:              point.Lon,
		Subtotal:         point.Subtotal,
		CompositeTaxRate: result.CompositeRate,
		TaxAmount:        taxAmount,
		TotalAmount:      totalAmount,
		Breakdown:        result.Breakdown,
		Jurisdictions:    result.Jurisdictions,
		Timestamp:        point.Timestamp,
		InServiceArea:    result.InServiceArea,
	}
}

// computeAmounts applies the monetary rounding rule: the tax amount is
// rounded half-up to cents exactly once, at final output, and the total is
// the subtotal plus the rounded tax.
func computeAmounts(subtotal, compositeRate float64) (taxAmount, totalAmount float64) {
	subtotalDec := decimal.NewFromFloat(subtotal)
	tax := subtotalDec.Mul(decimal.NewFromFloat(compositeRate)).Round(2)
	total := subtotalDec.Add(tax)

	taxAmount, _ = tax.Float64()
	totalAmount, _ = total.Float64()

	return taxAmount, totalAmount
}

// validatePoint rejects out-of-range coordinates and negative subtotals
// before any store access.
func validatePoint(lat, lon, subtotal float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domainerrors.ErrInvalidCoordinates
	}
	if subtotal < 0 {
		return domainerrors.ErrInvalidSubtotal
	}

	return nil
}
