// Package ratetable holds the static jurisdiction-name to tax-rate mapping
// used by the boundary loader and the rate composer. The table is an
// explicit value passed to its consumers so that tests can run against
// fixture tables instead of the production New York data.
package ratetable

import (
	"strings"

	"taxgrid/internal/domain/entity"
)

// Table maps canonical jurisdiction names to tax-rate fractions, per level.
type Table struct {
	State   map[string]float64 `json:"state" yaml:"state"`
	County  map[string]float64 `json:"county" yaml:"county"`
	City    map[string]float64 `json:"city" yaml:"city"`
	Special map[string]float64 `json:"special" yaml:"special"`

	// MCTDCounties lists the counties that carry the synthesized
	// metro-transit special district on top of their own rate.
	MCTDCounties []string `json:"mctdCounties" yaml:"mctdCounties"`

	// StateLabel is appended last to the jurisdiction list of every
	// in-service-area order.
	StateLabel string `json:"stateLabel" yaml:"stateLabel"`

	// StateRate is added to the composite rate whenever at least one local
	// jurisdiction matched the point.
	StateRate float64 `json:"stateRate" yaml:"stateRate"`

	// SpecialDistrictLabel and SpecialDistrictRate describe the synthesized
	// metro-transit surcharge zone.
	SpecialDistrictLabel string  `json:"specialDistrictLabel" yaml:"specialDistrictLabel"`
	SpecialDistrictRate  float64 `json:"specialDistrictRate" yaml:"specialDistrictRate"`
}

// levelRates returns the name->rate map for a level. The switch is
// deliberately exhaustive over the closed level set.
func (t *Table) levelRates(level entity.Level) map[string]float64 {
	switch level {
	case entity.LevelState:
		return t.State
	case entity.LevelCounty:
		return t.County
	case entity.LevelCity:
		return t.City
	case entity.LevelSpecial:
		return t.Special
	}

	return nil
}

// Match looks up a normalized name case-insensitively within one level.
// It returns the canonical-cased name and its rate, or ok=false when the
// level holds no such name.
func (t *Table) Match(level entity.Level, name string) (canonical string, rate float64, ok bool) {
	for key, keyRate := range t.levelRates(level) {
		if strings.EqualFold(key, name) {
			return key, keyRate, true
		}
	}

	return "", 0, false
}

// HasName reports whether the level contains the name, case-insensitively.
func (t *Table) HasName(level entity.Level, name string) bool {
	_, _, ok := t.Match(level, name)

	return ok
}

// IsMCTDCounty reports whether the canonical county name belongs to the
// metro-transit district.
func (t *Table) IsMCTDCounty(county string) bool {
	for _, name := range t.MCTDCounties {
		if strings.EqualFold(name, county) {
			return true
		}
	}

	return false
}
