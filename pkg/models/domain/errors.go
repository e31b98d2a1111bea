package domain

import "fmt"

// ValidationError marks failures caused by the request itself (bad
// file, unknown catalog keys). The HTTP layer maps these to 400;
// everything else is treated as an internal fault.
type ValidationError interface {
	error
	UserFacing() bool
}

// CorruptedInputError signals that the uploaded export tripped one of
// the corruption heuristics and should be re-exported.
type CorruptedInputError struct {
	Reason string
}

func (e *CorruptedInputError) Error() string {
	return fmt.Sprintf("meter export appears to be corrupted (%s); try uploading the original export", e.Reason)
}

func (e *CorruptedInputError) UserFacing() bool { return true }

// MissingColumnsError signals that required columns are absent.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("meter export is missing required columns: %v", e.Columns)
}

func (e *MissingColumnsError) UserFacing() bool { return true }

// NumericParseError signals an unparsable volume or date field.
type NumericParseError struct {
	Field string
	Value string
	Line  int
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %s value %q", e.Line, e.Field, e.Value)
}

func (e *NumericParseError) UserFacing() bool { return true }

// UnknownProductError signals a supplier/product pair absent from the
// tariff catalog.
type UnknownProductError struct {
	Supplier string
	Product  string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown supplier/product combination %q / %q", e.Supplier, e.Product)
}

func (e *UnknownProductError) UserFacing() bool { return true }

// UnknownPostalCodeError signals a postal code with no grid operator.
type UnknownPostalCodeError struct {
	PostalCode string
}

func (e *UnknownPostalCodeError) Error() string {
	return fmt.Sprintf("no grid operator known for postal code %q", e.PostalCode)
}

func (e *UnknownPostalCodeError) UserFacing() bool { return true }

// UnknownOperatorError signals an operator with no levy rate rows.
type UnknownOperatorError struct {
	Operator string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("no levy rates available for grid operator %q", e.Operator)
}

func (e *UnknownOperatorError) UserFacing() bool { return true }
