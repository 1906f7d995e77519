package geodata

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"taxgrid/internal/domain/entity"
	mockRepo "taxgrid/internal/mocks/repository"
	"taxgrid/internal/infra/spatial"
	"taxgrid/internal/ratetable"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func squareFeature(props map[string]any, minLon, minLat, maxLon, maxLat float64) *geojson.Feature {
	feature := geojson.NewFeature(orb.Polygon{
		orb.Ring{
			{minLon, minLat},
			{maxLon, minLat},
			{maxLon, maxLat},
			{minLon, maxLat},
			{minLon, minLat},
		},
	})
	feature.Properties = props

	return feature
}

func TestLoader_LoadFeatures_CountyWithSuffix(t *testing.T) {
	store := spatial.NewStore(0.0005)
	loader := NewLoader(store, ratetable.NewYork(), discardLogger(), 256)

	ctx := context.Background()
	result := loader.LoadFeatures(ctx, []*geojson.Feature{
		squareFeature(map[string]any{"NAME": "Albany County"}, -74.3, 42.4, -73.7, 42.8),
	})

	assert.Equal(t, 1, result.Loaded)
	assert.Zero(t, result.Skipped)
	assert.Zero(t, result.Failed)

	covering, err := store.FindCovering(ctx, 42.6, -74.0)
	require.NoError(t, err)
	require.Len(t, covering, 1)
	assert.Equal(t, "Albany", covering[0].Name)
	assert.Equal(t, entity.LevelCounty, covering[0].Level)
	assert.InDelta(t, 0.04, covering[0].Rate, 1e-9)
}

func TestLoader_LoadFeatures_MCTDCountySynthesizesSpecialDistrict(t *testing.T) {
	store := spatial.NewStore(0.0005)
	loader := NewLoader(store, ratetable.NewYork(), discardLogger(), 256)

	ctx := context.Background()
	result := loader.LoadFeatures(ctx, []*geojson.Feature{
		squareFeature(map[string]any{"NAME": "Kings County"}, -74.05, 40.55, -73.85, 40.75),
	})

	// The county row plus the synthesized surcharge row over the same
	// geometry.
	assert.Equal(t, 2, result.Loaded)

	covering, err := store.FindCovering(ctx, 40.65, -73.95)
	require.NoError(t, err)
	require.Len(t, covering, 2)
	assert.Equal(t, "Kings", covering[0].Name)
	assert.Equal(t, entity.LevelCounty, covering[0].Level)
	assert.Equal(t, "MCTD", covering[1].Name)
	assert.Equal(t, entity.LevelSpecial, covering[1].Level)
	assert.InDelta(t, 0.00375, covering[1].Rate, 1e-9)
	assert.Equal(t, covering[0].Geometry, covering[1].Geometry)
}

func TestLoader_LoadFeatures_CityWithTypeTag(t *testing.T) {
	store := spatial.NewStore(0.0005)
	loader := NewLoader(store, ratetable.NewYork(), discardLogger(), 256)

	ctx := context.Background()
	result := loader.LoadFeatures(ctx, []*geojson.Feature{
		squareFeature(map[string]any{"MUNI_NAME": "Yonkers", "MUNI_TYPE": "CITY"}, -73.92, 40.9, -73.82, 40.99),
	})

	assert.Equal(t, 1, result.Loaded)

	covering, err := store.FindCovering(ctx, 40.95, -73.87)
	require.NoError(t, err)
	require.Len(t, covering, 1)
	assert.Equal(t, "Yonkers", covering[0].Name)
	assert.Equal(t, entity.LevelCity, covering[0].Level)
	assert.InDelta(t, 0.045, covering[0].Rate, 1e-9)
}

func TestLoader_LoadFeatures_CaseInsensitiveMatch(t *testing.T) {
	store := spatial.NewStore(0.0005)
	loader := NewLoader(store, ratetable.NewYork(), discardLogger(), 256)

	ctx := context.Background()
	result := loader.LoadFeatures(ctx, []*geojson.Feature{
		squareFeature(map[string]any{"NAME": "ALBANY"}, 0, 0, 1, 1),
	})

	assert.Equal(t, 1, result.Loaded)

	covering, err := store.FindCovering(ctx, 0.5, 0.5)
	require.NoError(t, err)
	require.Len(t, covering, 1)
	assert.Equal(t, "Albany", covering[0].Name)
}

func TestLoader_LoadFeatures_SkipsUnknownAndUnnamed(t *testing.T) {
	store := spatial.NewStore(0.0005)
	loader := NewLoader(store, ratetable.NewYork(), discardLogger(), 256)

	ctx := context.Background()
	result := loader.LoadFeatures(ctx, []*geojson.Feature{
		squareFeature(map[string]any{"NAME": "Atlantis"}, 0, 0, 1, 1),
		squareFeature(map[string]any{}, 0, 0, 1, 1),
		squareFeature(map[string]any{"NAME": "Albany", "MUNI_TYPE": "TOWN"}, 0, 0, 1, 1),
	})

	assert.Zero(t, result.Loaded)
	assert.Equal(t, 3, result.Skipped)
}

func TestLoader_LoadFeatures_SkipsZeroRate(t *testing.T) {
	table := &ratetable.Table{
		County:     map[string]float64{"Freeport": 0},
		StateLabel: "Test State",
		StateRate:  0.04,
	}
	store := spatial.NewStore(0.0005)
	loader := NewLoader(store, table, discardLogger(), 256)

	ctx := context.Background()
	result := loader.LoadFeatures(ctx, []*geojson.Feature{
		squareFeature(map[string]any{"NAME": "Freeport"}, 0, 0, 1, 1),
	})

	assert.Zero(t, result.Loaded)
	assert.Equal(t, 1, result.Skipped)
}

func TestLoader_LoadFeatures_SkipsNonPolygonGeometry(t *testing.T) {
	store := spatial.NewStore(0.0005)
	loader := NewLoader(store, ratetable.NewYork(), discardLogger(), 256)

	feature := geojson.NewFeature(orb.Point{-74.0, 40.7})
	feature.Properties = map[string]any{"NAME": "Albany"}

	ctx := context.Background()
	result := loader.LoadFeatures(ctx, []*geojson.Feature{feature})

	assert.Zero(t, result.Loaded)
	assert.Equal(t, 1, result.Skipped)
}

func TestLoader_LoadFeatures_FailureIsolation(t *testing.T) {
	mockStore := mockRepo.NewMockJurisdictionRepository(t)
	loader := NewLoader(mockStore, ratetable.NewYork(), discardLogger(), 256)

	ctx := context.Background()

	mockStore.EXPECT().
		InsertJurisdiction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, jurisdiction *entity.Jurisdiction) error {
			if jurisdiction.Name == "Albany" {
				return assert.AnError
			}
			return nil
		})

	result := loader.LoadFeatures(ctx, []*geojson.Feature{
		squareFeature(map[string]any{"NAME": "Albany"}, 0, 0, 1, 1),
		squareFeature(map[string]any{"NAME": "Oneida"}, 1, 0, 2, 1),
	})

	// The failed feature is counted; the rest of the run continues.
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Loaded)
}

func TestLoader_LoadFile(t *testing.T) {
	store := spatial.NewStore(0.0005)
	loader := NewLoader(store, ratetable.NewYork(), discardLogger(), 256)

	collection := geojson.NewFeatureCollection()
	collection.Append(squareFeature(map[string]any{"NAME": "Albany County"}, -74.3, 42.4, -73.7, 42.8))
	raw, err := collection.MarshalJSON()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "counties.geojson")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	ctx := context.Background()
	result, err := loader.LoadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Loaded)
}

func TestLoader_LoadFile_MissingFile(t *testing.T) {
	loader := NewLoader(spatial.NewStore(0.0005), ratetable.NewYork(), discardLogger(), 256)

	_, err := loader.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.geojson"))
	assert.Error(t, err)
}

func TestLoader_LoadFile_InvalidJSON(t *testing.T) {
	loader := NewLoader(spatial.NewStore(0.0005), ratetable.NewYork(), discardLogger(), 256)

	path := filepath.Join(t.TempDir(), "broken.geojson")
	require.NoError(t, os.WriteFile(path, []byte("not geojson"), 0o600))

	_, err := loader.LoadFile(context.Background(), path)
	assert.Error(t, err)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Albany County", "Albany"},
		{"albany county", "albany"},
		{"New York City", "New York"},
		{"  Kings County  ", "Kings"},
		{"Westchester", "Westchester"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "input %q", tt.in)
	}
}
