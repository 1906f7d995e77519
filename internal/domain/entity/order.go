package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryPoint is an ephemeral delivery location awaiting tax resolution.
// It is built from an import row or a manual entry, consumed by the rate
// composer and then folded into an Order; it is never persisted on its own.
type DeliveryPoint struct {
	Lat       float64
	Lon       float64
	Subtotal  float64
	Timestamp time.Time
}

// RateBreakdown records the rate contribution of each jurisdiction level.
type RateBreakdown struct {
	StateRate   float64 `json:"state_rate"`
	CountyRate  float64 `json:"county_rate"`
	CityRate    float64 `json:"city_rate"`
	SpecialRate float64 `json:"special_rates"`
}

// RateResult is the outcome of resolving the jurisdictions covering a point.
// When no jurisdiction covers the point, InServiceArea is false, the
// composite rate and breakdown are zero and Jurisdictions is empty; this is
// a defined outcome, not an error.
type RateResult struct {
	CompositeRate float64
	Breakdown     RateBreakdown
	Jurisdictions []string // Matched names; the state label is appended last when in area.
	InServiceArea bool
}

// Order is the persisted record produced for one delivery point. It is
// created once by the tax calculator and never mutated afterward.
type Order struct {
	ID               uuid.UUID
	Lat              float64
	Lon              float64
	Subtotal         float64
	CompositeTaxRate float64
	TaxAmount        float64 // round(Subtotal * CompositeTaxRate, 2), half-up.
	TotalAmount      float64 // Subtotal + TaxAmount.
	Breakdown        RateBreakdown
	Jurisdictions    []string
	Timestamp        time.Time
	InServiceArea    bool // false when the point resolved outside the serviceable area.
	CreatedAt        time.Time
}
