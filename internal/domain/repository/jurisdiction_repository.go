// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"taxgrid/internal/domain/entity"
)

// Point is a bare coordinate pair used by batched covering lookups.
type Point struct {
	Lat float64
	Lon float64
}

// JurisdictionRepository defines the interface for the jurisdiction store.
// The store is read-mostly: it is written only by the loader during seeding
// and queried by the rate composer at request time.
type JurisdictionRepository interface {
	// InsertJurisdiction persists one jurisdiction row. Geometry is expected
	// to already be in subdivided multi-polygon form.
	InsertJurisdiction(ctx context.Context, jurisdiction *entity.Jurisdiction) error

	// FindCovering returns every jurisdiction whose buffered geometry covers
	// the given point. A point in the overlap band of adjacent jurisdictions
	// may match more than one per level; all matches are returned. An empty
	// result means the point is out of the service area and is not an error.
	FindCovering(ctx context.Context, lat, lon float64) ([]*entity.Jurisdiction, error)

	// FindCoveringBatch resolves covering jurisdictions for many points in a
	// single store round trip. The result is index-aligned with the input:
	// slot i holds the matches for points[i], so duplicate coordinates keep
	// their own slots and are never collapsed.
	FindCoveringBatch(ctx context.Context, points []Point) ([][]*entity.Jurisdiction, error)

	// CountJurisdictions returns the total number of stored jurisdiction rows.
	CountJurisdictions(ctx context.Context) (int64, error)

	// DeleteAllJurisdictions removes every jurisdiction row. Used before
	// re-seeding; rates are never mutated in place.
	DeleteAllJurisdictions(ctx context.Context) error
}
