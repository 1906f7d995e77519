package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taxgrid/internal/delivery/http/validator"
	"taxgrid/internal/domain/entity"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderUsecase returns canned responses for the order endpoints.
type stubOrderUsecase struct {
	order     *entity.Order
	orders    []*entity.Order
	total     int64
	err       error
	gotFilter repository.OrderFilter
	gotInput  *usecase.CreateOrderInput
}

func (s *stubOrderUsecase) CreateManualOrder(_ context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	s.gotInput = input

	return s.order, s.err
}

func (s *stubOrderUsecase) CalculateBatch(_ context.Context, points []entity.DeliveryPoint) ([]*entity.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderUsecase) ListOrders(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	s.gotFilter = filter

	return s.orders, s.total, s.err
}

func (s *stubOrderUsecase) Heatmap(_ context.Context) ([]*entity.Order, error) {
	return s.orders, s.err
}

type stubImportUsecase struct {
	result  *usecase.ImportResult
	err     error
	gotBody string
}

func (s *stubImportUsecase) ImportCSV(_ context.Context, r io.Reader) (*usecase.ImportResult, error) {
	raw, _ := io.ReadAll(r)
	s.gotBody = string(raw)

	return s.result, s.err
}

func newTestHandler(orderUC usecase.OrderUsecase, importUC usecase.ImportUsecase) (*OrderHandler, *echo.Echo) {
	e := echo.New()
	e.Validator = validator.New()

	return &OrderHandler{
		orderUC:  orderUC,
		importUC: importUC,
		logger:   slog.New(slog.DiscardHandler),
	}, e
}

func TestOrderHandler_CreateManualOrder(t *testing.T) {
	stub := &stubOrderUsecase{
		order: &entity.Order{
			ID:               uuid.New(),
			Lat:              40.7128,
			Lon:              -74.0060,
			Subtotal:         100.00,
			CompositeTaxRate: 0.08875,
			TaxAmount:        8.88,
			TotalAmount:      108.88,
			InServiceArea:    true,
		},
	}
	handler, e := newTestHandler(stub, &stubImportUsecase{})

	body := `{"lat": 40.7128, "lon": -74.0060, "subtotal": 100.00}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.CreateManualOrder(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "108.88")

	require.NotNil(t, stub.gotInput)
	assert.InDelta(t, 40.7128, stub.gotInput.Lat, 1e-9)
	assert.InDelta(t, 100.00, stub.gotInput.Subtotal, 1e-9)
}

func TestOrderHandler_CreateManualOrder_ValidationRejectsLatitude(t *testing.T) {
	handler, e := newTestHandler(&stubOrderUsecase{}, &stubImportUsecase{})

	body := `{"lat": 95.0, "lon": -74.0, "subtotal": 10.0}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.CreateManualOrder(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_ListOrders_ParsesFilter(t *testing.T) {
	stub := &stubOrderUsecase{orders: []*entity.Order{}, total: 0}
	handler, e := newTestHandler(stub, &stubImportUsecase{})

	req := httptest.NewRequest(http.MethodGet,
		"/orders?page=2&limit=50&jurisdiction=Kings,Queens&fromDate=2025-01-01T00:00:00Z&toDate=2025-06-30T23:59:59Z", nil)
	rec := httptest.NewRecorder()

	err := handler.ListOrders(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 2, stub.gotFilter.Page)
	assert.Equal(t, 50, stub.gotFilter.Limit)
	assert.Equal(t, []string{"Kings", "Queens"}, stub.gotFilter.Jurisdictions)
	require.NotNil(t, stub.gotFilter.FromDate)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), stub.gotFilter.FromDate.UTC())
	require.NotNil(t, stub.gotFilter.ToDate)
}

func TestOrderHandler_ListOrders_RejectsBadPage(t *testing.T) {
	handler, e := newTestHandler(&stubOrderUsecase{}, &stubImportUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/orders?page=zero", nil)
	rec := httptest.NewRecorder()

	err := handler.ListOrders(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Heatmap(t *testing.T) {
	stub := &stubOrderUsecase{orders: []*entity.Order{
		{Lat: 40.7, Lon: -74.0, InServiceArea: true},
		{Lat: 25.0, Lon: 121.0, InServiceArea: false},
	}}
	handler, e := newTestHandler(stub, &stubImportUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/orders/heatmap", nil)
	rec := httptest.NewRecorder()

	err := handler.Heatmap(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"in_service_area":true`)
	assert.Contains(t, rec.Body.String(), `"in_service_area":false`)
}

func TestOrderHandler_ImportOrders(t *testing.T) {
	importStub := &stubImportUsecase{result: &usecase.ImportResult{Imported: 3}}
	handler, e := newTestHandler(&stubOrderUsecase{}, importStub)

	csvData := "latitude,longitude,subtotal\n40.7,-74.0,10.0\n"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "orders.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/orders/import", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	err = handler.ImportOrders(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imported":3`)
	assert.Equal(t, csvData, importStub.gotBody)
}

func TestOrderHandler_ImportOrders_MissingFile(t *testing.T) {
	handler, e := newTestHandler(&stubOrderUsecase{}, &stubImportUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/orders/import", nil)
	rec := httptest.NewRecorder()

	err := handler.ImportOrders(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	err := HealthCheck(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
