package spatial

import (
	"context"
	"testing"

	"taxgrid/internal/domain/entity"
	"taxgrid/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJurisdiction(name string, level entity.Level, rate float64, geometry []float64) *entity.Jurisdiction {
	return &entity.Jurisdiction{
		ID:       uuid.New(),
		Name:     name,
		Level:    level,
		Rate:     rate,
		Geometry: unitSquare(geometry[0], geometry[1], geometry[2], geometry[3]),
	}
}

func TestStore_FindCovering(t *testing.T) {
	store := NewStore(0.0005)
	ctx := context.Background()

	county := newJurisdiction("Kings", entity.LevelCounty, 0.045, []float64{-74.05, 40.55, -73.85, 40.75})
	city := newJurisdiction("New York City", entity.LevelCity, 0.045, []float64{-74.3, 40.4, -73.7, 41.0})

	require.NoError(t, store.InsertJurisdiction(ctx, county))
	require.NoError(t, store.InsertJurisdiction(ctx, city))

	covering, err := store.FindCovering(ctx, 40.65, -73.95)
	require.NoError(t, err)
	require.Len(t, covering, 2)
	assert.Equal(t, "Kings", covering[0].Name)
	assert.Equal(t, "New York City", covering[1].Name)

	// Inside the city square but outside the county square.
	covering, err = store.FindCovering(ctx, 40.9, -73.95)
	require.NoError(t, err)
	require.Len(t, covering, 1)
	assert.Equal(t, "New York City", covering[0].Name)
}

func TestStore_FindCovering_Empty(t *testing.T) {
	store := NewStore(0.0005)
	ctx := context.Background()

	covering, err := store.FindCovering(ctx, 40.7, -74.0)
	require.NoError(t, err)
	assert.Empty(t, covering)
}

func TestStore_FindCovering_OutOfArea(t *testing.T) {
	store := NewStore(0.0005)
	ctx := context.Background()

	require.NoError(t, store.InsertJurisdiction(ctx,
		newJurisdiction("Albany", entity.LevelCounty, 0.04, []float64{-74.3, 42.4, -73.7, 42.8})))

	covering, err := store.FindCovering(ctx, 25.0, 121.0)
	require.NoError(t, err)
	assert.Empty(t, covering)
}

func TestStore_FindCoveringBatch_AlignsWithInput(t *testing.T) {
	store := NewStore(0.0005)
	ctx := context.Background()

	county := newJurisdiction("Kings", entity.LevelCounty, 0.045, []float64{-74.05, 40.55, -73.85, 40.75})
	city := newJurisdiction("New York City", entity.LevelCity, 0.045, []float64{-74.3, 40.4, -73.7, 41.0})

	require.NoError(t, store.InsertJurisdiction(ctx, county))
	require.NoError(t, store.InsertJurisdiction(ctx, city))

	inside := repository.Point{Lat: 40.65, Lon: -73.95}
	points := []repository.Point{
		inside,
		{Lat: 25.0, Lon: 121.0},
		{Lat: 40.9, Lon: -73.95},
		inside, // duplicate keeps its own slot
	}

	results, err := store.FindCoveringBatch(ctx, points)
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.Len(t, results[0], 2)
	assert.Equal(t, "Kings", results[0][0].Name)
	assert.Empty(t, results[1])
	require.Len(t, results[2], 1)
	assert.Equal(t, "New York City", results[2][0].Name)
	assert.Equal(t, results[0], results[3])
}

func TestStore_FindCoveringBatch_EmptyInput(t *testing.T) {
	store := NewStore(0.0005)
	ctx := context.Background()

	results, err := store.FindCoveringBatch(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestStore_InsertJurisdiction_RejectsUnknownLevel(t *testing.T) {
	store := NewStore(0.0005)
	ctx := context.Background()

	err := store.InsertJurisdiction(ctx, &entity.Jurisdiction{
		ID:       uuid.New(),
		Name:     "Nowhere",
		Level:    entity.Level("district"),
		Rate:     0.01,
		Geometry: unitSquare(0, 0, 1, 1),
	})
	assert.Error(t, err)
}

func TestStore_InsertJurisdiction_RejectsEmptyGeometry(t *testing.T) {
	store := NewStore(0.0005)
	ctx := context.Background()

	err := store.InsertJurisdiction(ctx, &entity.Jurisdiction{
		ID:    uuid.New(),
		Name:  "Nowhere",
		Level: entity.LevelCounty,
		Rate:  0.04,
	})
	assert.Error(t, err)
}

func TestStore_CountAndDeleteAll(t *testing.T) {
	store := NewStore(0.0005)
	ctx := context.Background()

	require.NoError(t, store.InsertJurisdiction(ctx,
		newJurisdiction("Albany", entity.LevelCounty, 0.04, []float64{0, 0, 1, 1})))
	require.NoError(t, store.InsertJurisdiction(ctx,
		newJurisdiction("Oneida", entity.LevelCounty, 0.0475, []float64{1, 0, 2, 1})))

	count, err := store.CountJurisdictions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, store.DeleteAllJurisdictions(ctx))

	count, err = store.CountJurisdictions(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	covering, err := store.FindCovering(ctx, 0.5, 0.5)
	require.NoError(t, err)
	assert.Empty(t, covering)
}
