package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteria_EffectiveDirection(t *testing.T) {
	tests := []struct {
		name       string
		directions []Direction
		want       Direction
	}{
		{"none selected", nil, DirectionNone},
		{"incoming", []Direction{DirectionIncoming}, DirectionIncoming},
		{"outgoing", []Direction{DirectionOutgoing}, DirectionOutgoing},
		{"both selected", []Direction{DirectionIncoming, DirectionOutgoing}, DirectionNone},
		{"repeated", []Direction{DirectionOutgoing, DirectionOutgoing}, DirectionOutgoing},
		{"unknown ignored", []Direction{"sideways", DirectionIncoming}, DirectionIncoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterCriteria{Directions: tt.directions}.EffectiveDirection())
		})
	}
}

func TestFilterCriteria_EffectiveMaxList(t *testing.T) {
	assert.Equal(t, DefaultMaxList, FilterCriteria{}.EffectiveMaxList())
	assert.Equal(t, DefaultMaxList, FilterCriteria{MaxList: -3}.EffectiveMaxList())
	assert.Equal(t, 5, FilterCriteria{MaxList: 5}.EffectiveMaxList())
}

func TestFilterCriteria_EffectiveChartType(t *testing.T) {
	outgoing := []Direction{DirectionOutgoing}

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     ChartType
	}{
		{"default", FilterCriteria{}, ChartTypeBar},
		{"unknown", FilterCriteria{ChartType: "pie"}, ChartTypeBar},
		{"line", FilterCriteria{ChartType: ChartTypeLine}, ChartTypeLine},
		{"funnel", FilterCriteria{ChartType: ChartTypeFunnel}, ChartTypeFunnel},
		{"bubble needs a direction", FilterCriteria{ChartType: ChartTypeBubble}, ChartTypeBar},
		{"bubble with both directions", FilterCriteria{ChartType: ChartTypeBubble, Directions: []Direction{DirectionIncoming, DirectionOutgoing}}, ChartTypeBar},
		{"bubble with one direction", FilterCriteria{ChartType: ChartTypeBubble, Directions: outgoing}, ChartTypeBubble},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.EffectiveChartType())
		})
	}
}

func TestFilterCriteria_HasDateRange(t *testing.T) {
	day := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, FilterCriteria{}.HasDateRange())
	assert.False(t, FilterCriteria{StartDate: &day}.HasDateRange())
	assert.False(t, FilterCriteria{EndDate: &day}.HasDateRange())
	assert.True(t, FilterCriteria{StartDate: &day, EndDate: &day}.HasDateRange())
}

func TestIsValidDirection(t *testing.T) {
	assert.True(t, IsValidDirection(DirectionIncoming))
	assert.True(t, IsValidDirection(DirectionOutgoing))
	assert.False(t, IsValidDirection(DirectionNone))
	assert.False(t, IsValidDirection("both"))
}
