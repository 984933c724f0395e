package models

import (
	"errors"
	"fmt"
)

// ExpectedLayout is the only accepted CSV header.
const ExpectedLayout = "Date,Details,Amount"

// ExampleCSV is shown to users whose upload was rejected.
const ExampleCSV = "Date,Details,Amount\n" +
	"29/11/2023,Tesco Stores 3297,-23.45\n" +
	"30/11/2023,Salary ACME Ltd,\"2,150.00\"\n" +
	"01/12/2023,Starbucks,-4.10\n"

var (
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
	ErrValueRequired   = errors.New("value is required")
	ErrFieldCount      = errors.New("expected 3 fields")
)

// ExtensionError is returned when an uploaded file is not a .csv file
type ExtensionError struct {
	Filename string
}

func (e *ExtensionError) Error() string {
	return "please select a .csv file"
}

// SchemaError is returned when input does not have the expected shape, either
// a CSV header that does not match ExpectedLayout or a ledger that breaks the
// transaction invariants at the point of use.
type SchemaError struct {
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Reason == "" {
		return "csv layout should be: " + ExpectedLayout
	}
	return fmt.Sprintf("csv layout should be: %s (%s)", ExpectedLayout, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ParseError identifies a row whose value could not be parsed. Line is the
// 1-based line number in the file, counting the header.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
