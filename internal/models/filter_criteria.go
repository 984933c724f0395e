package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction selects incoming or outgoing transactions
type Direction string

const (
	DirectionNone     Direction = ""
	DirectionIncoming Direction = "paid_in"
	DirectionOutgoing Direction = "paid_out"
)

// ChartType is the requested visualization of the filtered transactions
type ChartType string

const (
	ChartTypeBar    ChartType = "bar"
	ChartTypeFunnel ChartType = "funnel"
	ChartTypeLine   ChartType = "line"
	ChartTypeBubble ChartType = "bubble"
)

// DefaultMaxList is the result list length used when none is given
const DefaultMaxList = 20

// IsValidDirection checks if the direction is one of the selectable values
func IsValidDirection(d Direction) bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

// IsValidChartType checks if the chart type is supported
func IsValidChartType(c ChartType) bool {
	switch c {
	case ChartTypeBar, ChartTypeFunnel, ChartTypeLine, ChartTypeBubble:
		return true
	}
	return false
}

// FilterCriteria describes one analysis pass over a ledger
type FilterCriteria struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Directions      []Direction
	IsolateKeywords []string
	RemoveKeywords  []string
	MinAmount       *decimal.Decimal
	MaxAmount       *decimal.Decimal
	ChartType       ChartType
	MaxList         int
	SavingsKeywords []string
}

// HasDateRange reports whether both bounds of the date range are set
func (c FilterCriteria) HasDateRange() bool {
	return c.StartDate != nil && c.EndDate != nil
}

// EffectiveDirection returns the single selected direction. Selecting both
// directions is the same as selecting none.
func (c FilterCriteria) EffectiveDirection() Direction {
	selected := DirectionNone
	for _, d := range c.Directions {
		if !IsValidDirection(d) || d == selected {
			continue
		}
		if selected != DirectionNone {
			return DirectionNone
		}
		selected = d
	}
	return selected
}

// EffectiveMaxList falls back to DefaultMaxList for non-positive values
func (c FilterCriteria) EffectiveMaxList() int {
	if c.MaxList <= 0 {
		return DefaultMaxList
	}
	return c.MaxList
}

// EffectiveChartType applies the bubble fallback: a bubble chart needs exactly
// one direction, otherwise a bar chart is drawn.
func (c FilterCriteria) EffectiveChartType() ChartType {
	if !IsValidChartType(c.ChartType) {
		return ChartTypeBar
	}
	if c.ChartType == ChartTypeBubble && c.EffectiveDirection() == DirectionNone {
		return ChartTypeBar
	}
	return c.ChartType
}
