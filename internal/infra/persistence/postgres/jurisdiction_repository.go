package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"taxgrid/internal/domain/entity"
	domainerrors "taxgrid/internal/domain/errors"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jurisdictionRepository implements the domain's JurisdictionRepository
// interface against PostGIS. Geometry never round-trips into Go: it is
// written as GeoJSON and queried with spatial predicates, so the entities
// returned by FindCovering carry only the scalar columns.
type jurisdictionRepository struct {
	db *gorm.DB

	// bufferDeg is the coverage tolerance in degrees used by ST_DWithin.
	bufferDeg float64
}

// NewJurisdictionRepository is the constructor for jurisdictionRepository.
func NewJurisdictionRepository(db *gorm.DB, bufferDeg float64) repository.JurisdictionRepository {
	return &jurisdictionRepository{db: db, bufferDeg: bufferDeg}
}

// InsertJurisdiction persists one jurisdiction row. The loader has already
// subdivided the geometry, so the row is inserted as a plain multi-polygon.
func (repo *jurisdictionRepository) InsertJurisdiction(ctx context.Context, jurisdiction *entity.Jurisdiction) error {
	if !jurisdiction.Level.Valid() {
		return errors.Errorf("unknown jurisdiction level: %q", jurisdiction.Level)
	}

	geometry, err := json.Marshal(geojson.NewGeometry(jurisdiction.Geometry))
	if err != nil {
		return errors.Wrapf(err, "failed to marshal geometry for %s", jurisdiction.Name)
	}

	err = repo.db.WithContext(ctx).Exec(`
		INSERT INTO tax_jurisdictions (id, name, level, rate, geom)
		VALUES (?, ?, ?, ?, ST_Multi(ST_SetSRID(ST_GeomFromGeoJSON(?), 4326)))`,
		jurisdiction.ID, jurisdiction.Name, string(jurisdiction.Level), jurisdiction.Rate, string(geometry),
	).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert jurisdiction")
	}

	return nil
}

// FindCovering returns every jurisdiction whose geometry lies within the
// buffer distance of the point. The empty result is the out-of-area case.
func (repo *jurisdictionRepository) FindCovering(ctx context.Context, lat, lon float64) ([]*entity.Jurisdiction, error) {
	var jurisdictionModels []*model.JurisdictionModel
	err := repo.db.WithContext(ctx).Raw(`
		SELECT id, name, level, rate
		FROM tax_jurisdictions
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint(?, ?), 4326), ?)
		ORDER BY level, name`,
		lon, lat, repo.bufferDeg,
	).Scan(&jurisdictionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find covering jurisdictions")
	}

	jurisdictions := make([]*entity.Jurisdiction, 0, len(jurisdictionModels))
	for _, jurisdictionM := range jurisdictionModels {
		jurisdictions = append(jurisdictions, &entity.Jurisdiction{
			ID:    jurisdictionM.ID,
			Name:  jurisdictionM.Name,
			Level: entity.Level(jurisdictionM.Level),
			Rate:  jurisdictionM.Rate,
		})
	}

	return jurisdictions, nil
}

// batchCoveringRow carries one joined row of the batched covering query.
type batchCoveringRow struct {
	RowIdx int       `gorm:"column:row_idx"`
	ID     uuid.UUID `gorm:"column:id"`
	Name   string    `gorm:"column:name"`
	Level  string    `gorm:"column:level"`
	Rate   float64   `gorm:"column:rate"`
}

// FindCoveringBatch resolves a whole batch of points with a single spatial
// join. Input rows travel through a VALUES list keyed by their index, so
// duplicate coordinates come back in separate result slots.
func (repo *jurisdictionRepository) FindCoveringBatch(ctx context.Context, points []repository.Point) ([][]*entity.Jurisdiction, error) {
	results := make([][]*entity.Jurisdiction, len(points))
	if len(points) == 0 {
		return results, nil
	}

	values := make([]string, 0, len(points))
	args := make([]any, 0, len(points)*2+1)
	for idx, point := range points {
		values = append(values, fmt.Sprintf("(%d, ?::float8, ?::float8)", idx))
		args = append(args, point.Lon, point.Lat)
	}
	args = append(args, repo.bufferDeg)

	var rows []*batchCoveringRow
	query := fmt.Sprintf(`
		SELECT p.row_idx, j.id, j.name, j.level, j.rate
		FROM (VALUES %s) AS p (row_idx, lon, lat)
		JOIN tax_jurisdictions AS j
		  ON ST_DWithin(j.geom, ST_SetSRID(ST_MakePoint(p.lon, p.lat), 4326), ?)
		ORDER BY p.row_idx, j.level, j.name`, strings.Join(values, ", "))

	err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find covering jurisdictions for batch")
	}

	for _, row := range rows {
		if row.RowIdx < 0 || row.RowIdx >= len(results) {
			continue
		}
		results[row.RowIdx] = append(results[row.RowIdx], &entity.Jurisdiction{
			ID:    row.ID,
			Name:  row.Name,
			Level: entity.Level(row.Level),
			Rate:  row.Rate,
		})
	}

	return results, nil
}

// CountJurisdictions returns the total number of stored jurisdiction rows.
func (repo *jurisdictionRepository) CountJurisdictions(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.JurisdictionModel{}).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count jurisdictions")
	}

	return count, nil
}

// DeleteAllJurisdictions clears the table before a re-seed.
func (repo *jurisdictionRepository) DeleteAllJurisdictions(ctx context.Context) error {
	err := repo.db.WithContext(ctx).Exec("DELETE FROM tax_jurisdictions").Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete jurisdictions")
	}

	return nil
}
