package pgbin

import (
	"encoding/binary"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

// ArrayDimension is one dimension of an array: its length and the index of
// its first element. PostgreSQL defaults the lower bound to 1.
type ArrayDimension struct {
	Length     int32
	LowerBound int32
}

// The server rejects arrays beyond MAXDIM dimensions.
const maxArrayDimensions = 6

// Array is the generic codec for any array type. It carries one transcoder
// per element and a factory producing fresh element transcoders for decode,
// so it composes with any element representation including extension
// adapters. NULL elements are elements whose Status is Null (encode) or
// whose DecodeNull was invoked (decode).
type Array struct {
	Elements   []ValueTranscoder
	Dimensions []ArrayDimension
	Status     Status

	newElement func() ValueTranscoder
}

// NewArray constructs an array codec producing elements with newElement.
func NewArray(newElement func() ValueTranscoder) *Array {
	return &Array{newElement: newElement}
}

// SetElements replaces the contents with a one dimensional array of elements
// with the default lower bound.
func (a *Array) SetElements(elements []ValueTranscoder) {
	a.Elements = elements
	a.Dimensions = []ArrayDimension{{Length: int32(len(elements)), LowerBound: 1}}
	a.Status = Present
}

func (a *Array) Accepts(dt *Type) bool {
	ak, ok := underlying(dt).Kind().(ArrayKind)
	if !ok {
		return false
	}
	return a.newElement().Accepts(ak.Element)
}

func cardinality(dimensions []ArrayDimension) int {
	if len(dimensions) == 0 {
		return 0
	}

	elementCount := 1
	for _, d := range dimensions {
		elementCount *= int(d.Length)
	}
	return elementCount
}

func (src *Array) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	ak, ok := underlying(dt).Kind().(ArrayKind)
	if !ok {
		return nil, false, errors.Errorf("%s is not an array type", dt)
	}
	elementType := ak.Element

	if cardinality(src.Dimensions) != len(src.Elements) {
		return nil, false, &WrongFieldCountError{Expected: cardinality(src.Dimensions), Actual: len(src.Elements)}
	}

	buf = pgio.AppendInt32(buf, int32(len(src.Dimensions)))
	containsNullIndex := len(buf)
	buf = pgio.AppendInt32(buf, 0)
	buf = pgio.AppendUint32(buf, uint32(elementType.OID()))
	for _, dim := range src.Dimensions {
		buf = pgio.AppendInt32(buf, dim.Length)
		buf = pgio.AppendInt32(buf, dim.LowerBound)
	}

	for _, elem := range src.Elements {
		sp := len(buf)
		buf = pgio.AppendInt32(buf, -1)

		elemBuf, null, err := Encode(elementType, elem, buf)
		if err != nil {
			return nil, false, err
		}
		if null {
			pgio.SetInt32(buf[containsNullIndex:], 1)
		} else {
			buf = elemBuf
			pgio.SetInt32(buf[sp:], int32(len(buf[sp:])-4))
		}
	}

	return buf, false, nil
}

func (dst *Array) DecodeBinary(dt *Type, src []byte) error {
	ak, ok := underlying(dt).Kind().(ArrayKind)
	if !ok {
		return errors.Errorf("%s is not an array type", dt)
	}
	if dst.newElement == nil {
		return errors.New("array has no element factory; construct it with NewArray")
	}

	rp := 0
	if len(src) < 12 {
		return invalidFormatf(dt, "array header incomplete")
	}

	numDims := int(int32(binary.BigEndian.Uint32(src[rp:])))
	rp += 4
	if numDims < 0 || numDims > maxArrayDimensions {
		return invalidFormatf(dt, "invalid dimension count %d", numDims)
	}

	// contains-null flag; the element length sentinels are authoritative
	rp += 4

	elementOID := OID(binary.BigEndian.Uint32(src[rp:]))
	rp += 4

	elementType := ak.Element
	if elementOID != 0 && elementOID != ak.Element.OID() {
		et, known := TypeForOID(elementOID)
		if !known {
			return invalidFormatf(dt, "unknown element oid %d", elementOID)
		}
		if !dst.newElement().Accepts(et) {
			return invalidFormatf(dt, "element oid %d is not accepted by the element codec", elementOID)
		}
		elementType = et
	}

	if len(src[rp:]) < numDims*8 {
		return invalidFormatf(dt, "dimension headers incomplete")
	}
	dimensions := make([]ArrayDimension, numDims)
	elementCount := int64(1)
	for i := range dimensions {
		dimensions[i].Length = int32(binary.BigEndian.Uint32(src[rp:]))
		rp += 4
		dimensions[i].LowerBound = int32(binary.BigEndian.Uint32(src[rp:]))
		rp += 4

		if dimensions[i].Length < 0 {
			return invalidFormatf(dt, "negative dimension length %d", dimensions[i].Length)
		}
		elementCount *= int64(dimensions[i].Length)

		// Bound the running product each step so a dimension triple cannot
		// overflow it past the slice allocation below. Every element costs at
		// least its 4 byte length prefix, so the payload caps the true count.
		if elementCount > int64(len(src)/4) {
			return invalidFormatf(dt, "%d elements declared but payload is %d bytes", elementCount, len(src)-rp)
		}
	}
	if numDims == 0 {
		elementCount = 0
	}

	if elementCount > int64((len(src)-rp)/4) {
		return invalidFormatf(dt, "%d elements declared but payload is %d bytes", elementCount, len(src)-rp)
	}

	elements := make([]ValueTranscoder, elementCount)
	for i := range elements {
		elem := dst.newElement()

		elemLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4
		switch {
		case elemLen == -1:
			if err := elem.DecodeNull(elementType); err != nil {
				return err
			}
		case elemLen < 0:
			return invalidFormatf(dt, "invalid element length %d", elemLen)
		default:
			if len(src[rp:]) < elemLen {
				return invalidFormatf(dt, "element %d truncated", i)
			}
			if err := elem.DecodeBinary(elementType, src[rp:rp+elemLen]); err != nil {
				return err
			}
			rp += elemLen
		}

		elements[i] = elem
	}

	if rp != len(src) {
		return invalidFormatf(dt, "%d trailing bytes", len(src)-rp)
	}

	dst.Elements = elements
	dst.Dimensions = dimensions
	dst.Status = Present
	return nil
}

func (dst *Array) DecodeNull(dt *Type) error {
	dst.Elements = nil
	dst.Dimensions = nil
	dst.Status = Null
	return nil
}
