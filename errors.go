package pgbin

import "fmt"

// UnsupportedTypeError is returned by the checked Encode and Decode entry
// points when the value representation does not accept the requested type.
type UnsupportedTypeError struct {
	Type *Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %s (oid %d)", e.Type, e.Type.OID())
}

// OutOfRangeError is returned when a value cannot fit the wire
// representation of the target type, e.g. a numeric weight beyond int16 or
// an enum label the type does not declare.
type OutOfRangeError struct {
	Type  *Type
	Value string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s is out of range for type %s", e.Value, e.Type)
}

// InvalidFormatError is returned when a decode input is malformed: wrong
// length, invalid text encoding, or structure inconsistent with the type
// descriptor. Decoding never returns partial results.
type InvalidFormatError struct {
	Type   *Type
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid binary format for %s: %s", e.Type, e.Reason)
}

// WrongFieldCountError is returned when the arity of a composite value or
// array disagrees with its type descriptor.
type WrongFieldCountError struct {
	Expected int
	Actual   int
}

func (e *WrongFieldCountError) Error() string {
	return fmt.Sprintf("wrong field count: expected %d, got %d", e.Expected, e.Actual)
}

// NullNotRepresentableError is returned by DecodeNull when the target value
// representation has no sentinel for SQL NULL.
type NullNotRepresentableError struct {
	Type *Type
}

func (e *NullNotRepresentableError) Error() string {
	return fmt.Sprintf("cannot represent SQL NULL of type %s in target value", e.Type)
}

func invalidFormatf(dt *Type, format string, args ...interface{}) error {
	return &InvalidFormatError{Type: dt, Reason: fmt.Sprintf(format, args...)}
}
