// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Level is the tier of a taxing jurisdiction. It is a closed set: rate
// composition partitions matches by level, so an unknown level must never
// slip through string matching.
type Level string

const (
	LevelState   Level = "state"
	LevelCounty  Level = "county"
	LevelCity    Level = "city"
	LevelSpecial Level = "special"
)

// Valid reports whether the level is one of the four known tiers.
func (l Level) Valid() bool {
	switch l {
	case LevelState, LevelCounty, LevelCity, LevelSpecial:
		return true
	}

	return false
}

// Jurisdiction is a named taxing authority covering a geographic area.
// Several jurisdictions may overlap at a single point (a county plus a
// special district covering the same county); overlap drives rate
// summation, not exclusivity. Names are not globally unique: "New York"
// exists both as a county and as a city.
type Jurisdiction struct {
	ID       uuid.UUID        // Unique identifier for the jurisdiction row.
	Name     string           // Canonical display name, e.g. "Westchester".
	Level    Level            // Jurisdiction tier: state, county, city or special.
	Rate     float64          // Tax rate as a fraction, e.g. 0.04 for 4%. Fixed at load time.
	Geometry orb.MultiPolygon // Boundary polygons in lon/lat (WGS84) coordinates.
}
