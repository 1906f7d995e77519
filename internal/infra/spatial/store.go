package spatial

import (
	"context"
	"sync"

	"taxgrid/internal/domain/entity"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/errors"

	"github.com/paulmach/orb"
)

// Store is an in-memory jurisdiction store backed by the grid index. The
// loader writes it once during seeding; the rate composer reads it at
// request time, so reads take only the shared lock.
type Store struct {
	mu            sync.RWMutex
	bufferDeg     float64
	index         *Index
	jurisdictions []*entity.Jurisdiction
}

// NewStore creates an empty store with the given coverage buffer in degrees.
func NewStore(bufferDeg float64) *Store {
	return &Store{
		bufferDeg: bufferDeg,
		index:     NewIndex(bufferDeg),
	}
}

var _ repository.JurisdictionRepository = (*Store)(nil)

// InsertJurisdiction adds a jurisdiction and indexes its geometry pieces.
func (s *Store) InsertJurisdiction(_ context.Context, jurisdiction *entity.Jurisdiction) error {
	if !jurisdiction.Level.Valid() {
		return errors.Errorf("unknown jurisdiction level: %q", jurisdiction.Level)
	}
	if len(jurisdiction.Geometry) == 0 {
		return errors.Errorf("jurisdiction %s has no geometry", jurisdiction.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ref := len(s.jurisdictions)
	s.jurisdictions = append(s.jurisdictions, jurisdiction)
	s.index.Add(ref, jurisdiction.Geometry)

	return nil
}

// FindCovering returns every jurisdiction whose buffered geometry covers the
// point. The empty result is the out-of-area case, never an error.
func (s *Store) FindCovering(_ context.Context, lat, lon float64) ([]*entity.Jurisdiction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := s.index.Covering(orb.Point{lon, lat})

	covering := make([]*entity.Jurisdiction, 0, len(refs))
	for _, ref := range refs {
		covering = append(covering, s.jurisdictions[ref])
	}

	return covering, nil
}

// FindCoveringBatch resolves many points under one read lock. The result is
// index-aligned with the input; duplicate points keep their own slots.
func (s *Store) FindCoveringBatch(_ context.Context, points []repository.Point) ([][]*entity.Jurisdiction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([][]*entity.Jurisdiction, len(points))
	for i, point := range points {
		refs := s.index.Covering(orb.Point{point.Lon, point.Lat})

		covering := make([]*entity.Jurisdiction, 0, len(refs))
		for _, ref := range refs {
			covering = append(covering, s.jurisdictions[ref])
		}
		results[i] = covering
	}

	return results, nil
}

// CountJurisdictions returns the number of stored jurisdiction rows.
func (s *Store) CountJurisdictions(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.jurisdictions)), nil
}

// DeleteAllJurisdictions clears the store before a re-seed.
func (s *Store) DeleteAllJurisdictions(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jurisdictions = nil
	s.index = NewIndex(s.bufferDeg)

	return nil
}
