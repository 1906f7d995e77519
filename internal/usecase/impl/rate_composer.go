// Package impl contains the concrete implementations of the usecase layer.
package impl

import (
	"context"

	"taxgrid/internal/domain/entity"
	"taxgrid/internal/domain/repository"
	"taxgrid/internal/errors"
	"taxgrid/internal/ratetable"
	"taxgrid/internal/usecase"
)

type rateComposer struct {
	jurisdictionRepo repository.JurisdictionRepository
	table            *ratetable.Table
}

// NewRateComposer creates the rate composition service.
func NewRateComposer(jurisdictionRepo repository.JurisdictionRepository, table *ratetable.Table) usecase.RateUsecase {
	return &rateComposer{
		jurisdictionRepo: jurisdictionRepo,
		table:            table,
	}
}

// Compose queries the store for jurisdictions covering the point and sums
// their rates by level. The fixed state rate is added only when at least
// one jurisdiction matched: no match means the point is out of the service
// area, and the result stays all-zero with an empty jurisdiction list.
func (c *rateComposer) Compose(ctx context.Context, lat, lon float64) (*entity.RateResult, error) {
	matches, err := c.jurisdictionRepo.FindCovering(ctx, lat, lon)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query covering jurisdictions")
	}

	return c.composeFromMatches(matches), nil
}

// ComposeBatch resolves the whole batch with one covering query and applies
// the same per-point composition rule as Compose. Result slots stay aligned
// with the input points.
func (c *rateComposer) ComposeBatch(ctx context.Context, points []repository.Point) ([]*entity.RateResult, error) {
	matchesByPoint, err := c.jurisdictionRepo.FindCoveringBatch(ctx, points)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query covering jurisdictions for batch")
	}
	if len(matchesByPoint) != len(points) {
		return nil, errors.Errorf("covering batch returned %d result sets for %d points", len(matchesByPoint), len(points))
	}

	results := make([]*entity.RateResult, len(matchesByPoint))
	for i, matches := range matchesByPoint {
		results[i] = c.composeFromMatches(matches)
	}

	return results, nil
}

func (c *rateComposer) composeFromMatches(matches []*entity.Jurisdiction) *entity.RateResult {
	if len(matches) == 0 {
		return &entity.RateResult{}
	}

	result := &entity.RateResult{
		InServiceArea: true,
		Jurisdictions: make([]string, 0, len(matches)+1),
	}

	for _, jurisdiction := range matches {
		switch jurisdiction.Level {
		case entity.LevelCounty:
			result.Breakdown.CountyRate += jurisdiction.Rate
		case entity.LevelCity:
			result.Breakdown.CityRate += jurisdiction.Rate
		case entity.LevelSpecial:
			result.Breakdown.SpecialRate += jurisdiction.Rate
		case entity.LevelState:
			// State coverage is carried by the fixed state rate below, not
			// by stored state-level rows.
			continue
		}
		result.Jurisdictions = append(result.Jurisdictions, jurisdiction.Name)
	}

	result.Breakdown.StateRate = c.table.StateRate
	result.Jurisdictions = append(result.Jurisdictions, c.table.StateLabel)
	result.CompositeRate = result.Breakdown.StateRate +
		result.Breakdown.CountyRate +
		result.Breakdown.CityRate +
		result.Breakdown.SpecialRate

	return result
}
