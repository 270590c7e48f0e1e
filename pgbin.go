package pgbin

import (
	"github.com/pkg/errors"
)

// Status represents the state of a value. Undefined is the zero value so
// that an uninitialized value cannot be silently encoded as NULL or as a
// present value.
type Status byte

const (
	Undefined Status = iota
	Null
	Present
)

// IsNull reports whether an encode call produced SQL NULL. It is returned
// separately from the buffer so that NULL never has a payload: when IsNull
// is true the output buffer was not written to.
type IsNull bool

type InfinityModifier int8

const (
	Infinity         InfinityModifier = 1
	None             InfinityModifier = 0
	NegativeInfinity InfinityModifier = -Infinity
)

func (im InfinityModifier) String() string {
	switch im {
	case None:
		return "none"
	case Infinity:
		return "infinity"
	case NegativeInfinity:
		return "-infinity"
	default:
		return "invalid"
	}
}

// BinaryEncoder is implemented by value representations that can encode
// themselves into the PostgreSQL binary wire format.
type BinaryEncoder interface {
	// Accepts reports whether this value can be encoded as dt. It is pure
	// and has no side effects.
	Accepts(dt *Type) bool

	// EncodeBinary appends the binary payload of the value interpreted as dt
	// to buf. If the value is SQL NULL it appends nothing and returns
	// IsNull true.
	//
	// EncodeBinary is the unchecked entry point: calling it with a dt for
	// which Accepts returns false is a bug in the caller, not a data error.
	// Dispatch over values of unknown concrete type must use Encode instead.
	EncodeBinary(dt *Type, buf []byte) (newBuf []byte, null IsNull, err error)
}

// BinaryDecoder is implemented by value representations that can decode
// themselves from the PostgreSQL binary wire format.
type BinaryDecoder interface {
	// Accepts reports whether this value can be decoded from dt.
	Accepts(dt *Type) bool

	// DecodeBinary replaces the value with the one encoded in src, which is
	// exactly the value payload with all framing removed. src is never nil;
	// SQL NULL is routed to DecodeNull. The value must not retain src.
	DecodeBinary(dt *Type, src []byte) error

	// DecodeNull replaces the value with its representation of SQL NULL, or
	// returns NullNotRepresentableError if it has none.
	DecodeNull(dt *Type) error
}

// ValueTranscoder is a value representation that can both encode and decode
// itself. The generic Array, Range, and Composite codecs recurse through
// this interface.
type ValueTranscoder interface {
	BinaryEncoder
	BinaryDecoder
}

// Encode is the checked encode entry point. It verifies acceptance before
// invoking EncodeBinary and returns UnsupportedTypeError when value cannot
// represent dt. Callers binding heterogeneous parameter lists must use
// Encode rather than calling EncodeBinary directly.
func Encode(dt *Type, value BinaryEncoder, buf []byte) ([]byte, IsNull, error) {
	if !value.Accepts(dt) {
		return nil, false, &UnsupportedTypeError{Type: dt}
	}
	return value.EncodeBinary(dt, buf)
}

// Decode is the checked decode entry point. It verifies acceptance, routes a
// nil src to DecodeNull, and otherwise invokes DecodeBinary.
func Decode(dt *Type, src []byte, value BinaryDecoder) error {
	if !value.Accepts(dt) {
		return &UnsupportedTypeError{Type: dt}
	}
	if src == nil {
		return value.DecodeNull(dt)
	}
	return value.DecodeBinary(dt, src)
}

var errUndefined = errors.New("cannot encode status undefined")
