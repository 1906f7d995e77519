package impl

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"taxgrid/internal/domain/entity"
	domainerrors "taxgrid/internal/domain/errors"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/errors"
	"taxgrid/internal/usecase"
)

type importService struct {
	calculator usecase.OrderUsecase
	txManager  repository.TransactionManager
	logger     *slog.Logger
	chunkSize  int
}

// NewImportService creates the batch import pipeline. chunkSize rows are
// calculated and committed per transaction.
func NewImportService(calculator usecase.OrderUsecase, txManager repository.TransactionManager, logger *slog.Logger, chunkSize int) usecase.ImportUsecase {
	if chunkSize <= 0 {
		chunkSize = 1000
	}

	return &importService{
		calculator: calculator,
		txManager:  txManager,
		logger:     logger,
		chunkSize:  chunkSize,
	}
}

// ImportCSV streams delivery-point rows, accumulates them into chunks and
// commits each chunk in its own transaction, strictly sequentially. A chunk
// failure or a broken input stream is terminal: the error propagates with
// the partial imported count, and chunks committed before the failure
// remain committed.
func (s *importService) ImportCSV(ctx context.Context, r io.Reader) (*usecase.ImportResult, error) {
	start := time.Now()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read import header")
	}
	columns := columnIndexes(header)

	imported := 0
	chunk := make([]entity.DeliveryPoint, 0, s.chunkSize)

	for {
		record, readErr := reader.Read()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			// Rows the CSV reader cannot parse are dropped like any other
			// malformed row; parsing resumes on the next line.
			var parseErr *csv.ParseError
			if errors.As(readErr, &parseErr) {
				continue
			}

			// Anything else is a broken underlying stream. It would return
			// the same error on every subsequent read, so the import stops
			// here with the committed count.
			return &usecase.ImportResult{Imported: imported, Elapsed: time.Since(start)},
				errors.Wrap(readErr, "failed to read import row")
		}

		point, ok := parseRow(record, columns)
		if !ok {
			continue
		}
		chunk = append(chunk, point)

		if len(chunk) == s.chunkSize {
			if err := s.commitChunk(ctx, chunk); err != nil {
				return &usecase.ImportResult{Imported: imported, Elapsed: time.Since(start)}, err
			}
			imported += len(chunk)
			s.logger.Info("committed import chunk", slog.Int("imported", imported))
			chunk = chunk[:0]
		}
	}

	if len(chunk) > 0 {
		if err := s.commitChunk(ctx, chunk); err != nil {
			return &usecase.ImportResult{Imported: imported, Elapsed: time.Since(start)}, err
		}
		imported += len(chunk)
	}

	s.logger.Info("import finished",
		slog.Int("imported", imported),
		slog.Duration("elapsed", time.Since(start)),
	)

	return &usecase.ImportResult{Imported: imported, Elapsed: time.Since(start)}, nil
}

// commitChunk calculates and persists one chunk atomically.
func (s *importService) commitChunk(ctx context.Context, chunk []entity.DeliveryPoint) error {
	orders, err := s.calculator.CalculateBatch(ctx, chunk)
	if err != nil {
		return errors.Wrap(err, "failed to calculate import chunk")
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().CreateOrders(ctx, orders)
	})
	if err != nil {
		return domainerrors.ErrImportFailed.WrapMessage(err.Error())
	}

	return nil
}

// columnIndexes maps the known import columns to their positions. Header
// names are matched case-insensitively.
func columnIndexes(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}

	return columns
}

// parseRow validates one import row. A row is accepted only when latitude,
// longitude and subtotal are present and numeric; the timestamp defaults to
// the current time when absent or unparseable.
func parseRow(record []string, columns map[string]int) (entity.DeliveryPoint, bool) {
	lat, ok := parseField(record, columns, "latitude")
	if !ok {
		return entity.DeliveryPoint{}, false
	}

	lon, ok := parseField(record, columns, "longitude")
	if !ok {
		return entity.DeliveryPoint{}, false
	}

	subtotal, ok := parseField(record, columns, "subtotal")
	if !ok {
		return entity.DeliveryPoint{}, false
	}

	timestamp := time.Now()
	if idx, exists := columns["timestamp"]; exists && idx < len(record) {
		if parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(record[idx])); err == nil {
			timestamp = parsed
		}
	}

	return entity.DeliveryPoint{
		Lat:       lat,
		Lon:       lon,
		Subtotal:  subtotal,
		Timestamp: timestamp,
	}, true
}

func parseField(record []string, columns map[string]int, name string) (float64, bool) {
	idx, exists := columns[name]
	if !exists || idx >= len(record) {
		return 0, false
	}

	raw := strings.TrimSpace(record[idx])
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
