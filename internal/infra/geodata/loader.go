// Package geodata ingests jurisdiction boundary polygons from GeoJSON
// datasets and seeds the jurisdiction store.
package geodata

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"taxgrid/internal/domain/entity"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/errors"
	"taxgrid/internal/ratetable"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	countySuffix = regexp.MustCompile(`(?i)\s+County$`)
	citySuffix   = regexp.MustCompile(`(?i)\s+City$`)
)

// Loader matches boundary features against a rate table and inserts the
// resulting jurisdictions, one row per feature. Counties in the
// metro-transit district additionally produce a synthesized special-district
// row sharing the county geometry.
type Loader struct {
	store     repository.JurisdictionRepository
	table     *ratetable.Table
	logger    *slog.Logger
	maxPoints int
}

// Result summarizes one load run. Skipped counts features with no rate
// match or a zero rate (a policy decision, not an error); Failed counts
// per-feature insert errors, which never abort the run.
type Result struct {
	Loaded  int
	Skipped int
	Failed  int
}

// NewLoader creates a loader writing to the given store. maxPoints bounds
// the size of subdivided geometry pieces.
func NewLoader(store repository.JurisdictionRepository, table *ratetable.Table, logger *slog.Logger, maxPoints int) *Loader {
	return &Loader{
		store:     store,
		table:     table,
		logger:    logger,
		maxPoints: maxPoints,
	}
}

// LoadFile reads a GeoJSON FeatureCollection from disk and loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read boundary file %s", path)
	}

	collection, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse boundary file %s", path)
	}

	return l.LoadFeatures(ctx, collection.Features), nil
}

// LoadFeatures loads boundary features into the store. A feature that fails
// to insert is logged and counted; the remaining features still load.
func (l *Loader) LoadFeatures(ctx context.Context, features []*geojson.Feature) *Result {
	result := &Result{}

	for _, feature := range features {
		name, level, rate, ok := l.matchFeature(feature)
		if !ok {
			result.Skipped++

			continue
		}

		geometry := Subdivide(toMultiPolygon(feature.Geometry), l.maxPoints)
		if len(geometry) == 0 {
			result.Skipped++

			continue
		}

		if err := l.insert(ctx, name, level, rate, geometry); err != nil {
			l.logger.Error("failed to load jurisdiction",
				slog.String("name", name),
				slog.String("level", string(level)),
				slog.Any("error", err),
			)
			result.Failed++

			continue
		}
		result.Loaded++

		// Counties in the metro-transit district carry the synthesized
		// special-district surcharge over the same geometry.
		if level == entity.LevelCounty && l.table.IsMCTDCounty(name) {
			err := l.insert(ctx, l.table.SpecialDistrictLabel, entity.LevelSpecial, l.table.SpecialDistrictRate, geometry)
			if err != nil {
				l.logger.Error("failed to load special district zone",
					slog.String("county", name),
					slog.Any("error", err),
				)
				result.Failed++

				continue
			}
			l.logger.Info("added special district zone", slog.String("county", name))
			result.Loaded++
		}
	}

	return result
}

// matchFeature resolves a feature to a canonical jurisdiction name, level
// and rate. ok is false when the feature cannot be matched or its rate is
// zero; zero-rate jurisdictions are not loaded.
func (l *Loader) matchFeature(feature *geojson.Feature) (string, entity.Level, float64, bool) {
	rawName := featureName(feature)
	if rawName == "" {
		return "", "", 0, false
	}

	cleanName := NormalizeName(rawName)

	typeTag := featureType(feature)
	if typeTag == "" {
		// Infer the level from the rate table, county before city.
		switch {
		case l.table.HasName(entity.LevelCounty, cleanName):
			typeTag = "COUNTY"
		case l.table.HasName(entity.LevelCity, cleanName):
			typeTag = "CITY"
		default:
			return "", "", 0, false
		}
	}

	var level entity.Level
	switch strings.ToUpper(typeTag) {
	case "COUNTY":
		level = entity.LevelCounty
	case "CITY":
		level = entity.LevelCity
	default:
		return "", "", 0, false
	}

	canonical, rate, ok := l.table.Match(level, cleanName)
	if !ok || rate == 0 {
		return "", "", 0, false
	}

	return canonical, level, rate, true
}

func (l *Loader) insert(ctx context.Context, name string, level entity.Level, rate float64, geometry orb.MultiPolygon) error {
	return l.store.InsertJurisdiction(ctx, &entity.Jurisdiction{
		ID:       uuid.New(),
		Name:     name,
		Level:    level,
		Rate:     rate,
		Geometry: geometry,
	})
}

// NormalizeName strips trailing "County"/"City" suffixes and surrounding
// whitespace from a boundary feature display name.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = countySuffix.ReplaceAllString(name, "")
	name = citySuffix.ReplaceAllString(name, "")

	return strings.TrimSpace(name)
}

// featureName extracts the display name from the known property keys used
// across boundary datasets.
func featureName(feature *geojson.Feature) string {
	for _, key := range []string{"NAME", "MUNI_NAME", "name"} {
		if value, ok := feature.Properties[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

// featureType extracts the jurisdiction type tag, when present.
func featureType(feature *geojson.Feature) string {
	for _, key := range []string{"MUNI_TYPE", "type"} {
		if value, ok := feature.Properties[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

func toMultiPolygon(geometry orb.Geometry) orb.MultiPolygon {
	switch g := geometry.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{g}
	case orb.MultiPolygon:
		return g
	default:
		return nil
	}
}
