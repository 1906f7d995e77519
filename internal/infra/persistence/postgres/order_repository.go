package postgres

import (
	"context"
	"encoding/json"

	"taxgrid/internal/domain/entity"
	domainerrors "taxgrid/internal/domain/errors"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain's OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a single order record.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// CreateOrders persists a batch of order records in one statement. Rows are
// inserted as given: duplicate points stay duplicate rows.
func (repo *orderRepository) CreateOrders(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderModels := make([]*model.OrderModel, 0, len(orders))
	for _, order := range orders {
		orderModels = append(orderModels, fromOrderDomain(order))
	}

	if err := repo.db.WithContext(ctx).Create(&orderModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order batch")
	}

	return nil
}

// FindOrders retrieves orders matching the filter, newest first.
func (repo *orderRepository) FindOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query, err := repo.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}

	offset := 0
	if filter.Page > 1 && filter.Limit > 0 {
		offset = (filter.Page - 1) * filter.Limit
	}

	var orderModels []*model.OrderModel
	err = query.
		Order("timestamp DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// CountOrders returns the total number of orders matching the filter.
func (repo *orderRepository) CountOrders(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	query, err := repo.filtered(ctx, filter)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// FindAllPoints returns every order's location and status for the heatmap.
func (repo *orderRepository) FindAllPoints(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Select("id", "lat", "lon", "in_service_area").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order points")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// filtered applies the jurisdiction membership and timestamp range filters.
func (repo *orderRepository) filtered(ctx context.Context, filter repository.OrderFilter) (*gorm.DB, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if len(filter.Jurisdictions) > 0 {
		names, err := json.Marshal(filter.Jurisdictions)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal jurisdiction filter")
		}
		// jsonb_exists_any matches orders containing any of the given names.
		query = query.Where(
			"jsonb_exists_any(jurisdictions, ARRAY(SELECT jsonb_array_elements_text(?::jsonb)))",
			string(names),
		)
	}

	if filter.FromDate != nil {
		query = query.Where("timestamp >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("timestamp <= ?", *filter.ToDate)
	}

	return query, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:               data.ID,
		Lat:              data.Lat,
		Lon:              data.Lon,
		Subtotal:         data.Subtotal,
		CompositeTaxRate: data.CompositeTaxRate,
		TaxAmount:        data.TaxAmount,
		TotalAmount:      data.TotalAmount,
		Breakdown:        entity.RateBreakdown(data.Breakdown),
		Jurisdictions:    data.Jurisdictions,
		Timestamp:        data.Timestamp,
		InServiceArea:    data.InServiceArea,
		CreatedAt:        data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:               data.ID,
		Lat:              data.Lat,
		Lon:              data.Lon,
		Subtotal:         data.Subtotal,
		CompositeTaxRate: data.CompositeTaxRate,
		TaxAmount:        data.TaxAmount,
		TotalAmount:      data.TotalAmount,
		Breakdown:        model.BreakdownColumn(data.Breakdown),
		Jurisdictions:    model.NamesColumn(data.Jurisdictions),
		Timestamp:        data.Timestamp,
		InServiceArea:    data.InServiceArea,
		CreatedAt:        data.CreatedAt,
	}
}
