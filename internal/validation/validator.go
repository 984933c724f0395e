package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"statement-analyzer/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ISODateLayout is the layout accepted for date criteria in requests
const ISODateLayout = "2006-01-02"

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a request struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("direction", validateDirection)
	_ = v.RegisterValidation("chart_type", validateChartType)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateDirection accepts paid_in or paid_out
func validateDirection(fl validator.FieldLevel) bool {
	return models.IsValidDirection(models.Direction(fl.Field().String()))
}

func validateChartType(fl validator.FieldLevel) bool {
	return models.IsValidChartType(models.ChartType(fl.Field().String()))
}

// validateDecimalAmount accepts a signed decimal with at most 2 decimal places
func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return amount.Equal(amount.Round(models.AmountPlaces))
}

// validateISODate accepts a calendar date in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(ISODateLayout, fl.Field().String())
	return err == nil
}
