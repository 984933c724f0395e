package handlers

import (
	"testing"

	"statement-analyzer/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(dto.AnalysisRequest{Directions: []string{"paid_in", "paid_out"}, ChartType: "line"}))

	err := v.Validate(dto.AnalysisRequest{MaxAmount: "12.345", ChartType: "pie"})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"max_amount", "chart_type"}, fields)
}
