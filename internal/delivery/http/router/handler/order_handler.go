package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taxgrid/internal/delivery/http/response"
	domainerrors "taxgrid/internal/domain/errors"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC  usecase.OrderUsecase
	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC  usecase.OrderUsecase
	importUC usecase.ImportUsecase
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:  params.OrderUC,
		importUC: params.ImportUC,
		logger:   params.Logger,
	}
}

// CreateOrderRequest represents the request body for a manual order
type CreateOrderRequest struct {
	Lat       float64    `json:"lat" validate:"min=-90,max=90"`
	Lon       float64    `json:"lon" validate:"min=-180,max=180"`
	Subtotal  float64    `json:"subtotal" validate:"min=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ListOrdersResponse wraps a paginated order listing
type ListOrdersResponse struct {
	Orders any   `json:"orders"`
	Total  int64 `json:"total"`
	Page   int   `json:"page"`
	Limit  int   `json:"limit"`
}

// CreateManualOrder handles creating a single manually entered order
func (h *OrderHandler) CreateManualOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateOrderInput{
		Lat:       req.Lat,
		Lon:       req.Lon,
		Subtotal:  req.Subtotal,
		Timestamp: req.Timestamp,
	}

	order, err := h.orderUC.CreateManualOrder(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// ListOrders handles the filtered, paginated order listing
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter, err := parseOrderFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	orders, total, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListOrdersResponse{
		Orders: orders,
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}, "Orders retrieved successfully")
}

// Heatmap handles the order location overview
func (h *OrderHandler) Heatmap(c echo.Context) error {
	orders, err := h.orderUC.Heatmap(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	type heatmapPoint struct {
		Lat           float64 `json:"lat"`
		Lon           float64 `json:"lon"`
		InServiceArea bool    `json:"in_service_area"`
	}

	points := make([]heatmapPoint, 0, len(orders))
	for _, order := range orders {
		points = append(points, heatmapPoint{
			Lat:           order.Lat,
			Lon:           order.Lon,
			InServiceArea: order.InServiceArea,
		})
	}

	return response.Success(c, http.StatusOK, points, "Heatmap data retrieved successfully")
}

// ImportOrders handles the CSV dataset upload
func (h *OrderHandler) ImportOrders(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.handleAppError(c, domainerrors.ErrImportFileMissing)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.handleAppError(c, errors.Wrap(err, "failed to open uploaded file"))
	}
	defer file.Close()

	result, err := h.importUC.ImportCSV(c.Request().Context(), file)
	if err != nil {
		// Surface the partial count: chunks committed before the failure
		// stay committed.
		h.logger.Error("import failed",
			slog.Int("imported", resultCount(result)),
			slog.Any("error", err),
		)

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Import completed successfully")
}

func resultCount(result *usecase.ImportResult) int {
	if result == nil {
		return 0
	}

	return result.Imported
}

// parseOrderFilter reads the listing query parameters. The jurisdiction
// filter accepts a comma-separated name list; dates are RFC3339.
func parseOrderFilter(c echo.Context) (repository.OrderFilter, error) {
	filter := repository.OrderFilter{Page: 1, Limit: 20}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return filter, errors.New("page must be a positive integer")
		}
		filter.Page = page
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return filter, errors.New("limit must be a positive integer")
		}
		filter.Limit = limit
	}

	if raw := c.QueryParam("jurisdiction"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				filter.Jurisdictions = append(filter.Jurisdictions, trimmed)
			}
		}
	}

	if raw := c.QueryParam("fromDate"); raw != "" {
		fromDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("fromDate must be RFC3339")
		}
		filter.FromDate = &fromDate
	}

	if raw := c.QueryParam("toDate"); raw != "" {
		toDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("toDate must be RFC3339")
		}
		filter.ToDate = &toDate
	}

	return filter, nil
}

// handleAppError maps application errors to API responses
func (h *OrderHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	h.logger.Error("unexpected error", slog.Any("error", err))

	return response.InternalServerError(c, "INTERNAL_ERROR", "internal server error")
}
