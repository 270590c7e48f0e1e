package pgbin

import (
	"encoding/binary"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

type BoundType byte

const (
	Inclusive = BoundType('i')
	Exclusive = BoundType('e')
	Unbounded = BoundType('U')
	Empty     = BoundType('E')
)

func (bt BoundType) String() string {
	return string(bt)
}

// Range flag byte, matching the server's range type representation.
const (
	emptyMask          byte = 1
	lowerInclusiveMask byte = 2
	upperInclusiveMask byte = 4
	lowerUnboundedMask byte = 8
	upperUnboundedMask byte = 16

	allRangeMasks = emptyMask | lowerInclusiveMask | upperInclusiveMask | lowerUnboundedMask | upperUnboundedMask
)

// Range is the generic codec for any range type. Lower and Upper are only
// consulted when the corresponding bound type is Inclusive or Exclusive; an
// empty range has both bound types Empty.
type Range struct {
	Lower     ValueTranscoder
	Upper     ValueTranscoder
	LowerType BoundType
	UpperType BoundType
	Status    Status

	newElement func() ValueTranscoder
}

// NewRange constructs a range codec producing bounds with newElement.
func NewRange(newElement func() ValueTranscoder) *Range {
	return &Range{newElement: newElement}
}

func (r *Range) Accepts(dt *Type) bool {
	rk, ok := underlying(dt).Kind().(RangeKind)
	if !ok {
		return false
	}
	return r.newElement().Accepts(rk.Element)
}

func (src *Range) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	rk, ok := underlying(dt).Kind().(RangeKind)
	if !ok {
		return nil, false, errors.Errorf("%s is not a range type", dt)
	}
	elementType := rk.Element

	var rangeType byte
	switch src.LowerType {
	case Inclusive:
		rangeType |= lowerInclusiveMask
	case Unbounded:
		rangeType |= lowerUnboundedMask
	case Exclusive:
	case Empty:
		return append(buf, emptyMask), false, nil
	default:
		return nil, false, errors.Errorf("unknown lower bound type %v", src.LowerType)
	}

	switch src.UpperType {
	case Inclusive:
		rangeType |= upperInclusiveMask
	case Unbounded:
		rangeType |= upperUnboundedMask
	case Exclusive:
	default:
		return nil, false, errors.Errorf("unknown upper bound type %v", src.UpperType)
	}

	buf = append(buf, rangeType)

	if src.LowerType != Unbounded {
		var err error
		buf, err = appendRangeBound(elementType, src.Lower, buf, "lower")
		if err != nil {
			return nil, false, err
		}
	}

	if src.UpperType != Unbounded {
		var err error
		buf, err = appendRangeBound(elementType, src.Upper, buf, "upper")
		if err != nil {
			return nil, false, err
		}
	}

	return buf, false, nil
}

func appendRangeBound(elementType *Type, bound ValueTranscoder, buf []byte, which string) ([]byte, error) {
	if bound == nil {
		return nil, errors.Errorf("%s bound must be set unless unbounded", which)
	}

	sp := len(buf)
	buf = pgio.AppendInt32(buf, -1)

	boundBuf, null, err := Encode(elementType, bound, buf)
	if err != nil {
		return nil, errors.Wrapf(err, "%s bound", which)
	}
	if null {
		return nil, errors.Errorf("%s bound cannot be NULL unless unbounded", which)
	}

	buf = boundBuf
	pgio.SetInt32(buf[sp:], int32(len(buf[sp:])-4))
	return buf, nil
}

func (dst *Range) DecodeBinary(dt *Type, src []byte) error {
	rk, ok := underlying(dt).Kind().(RangeKind)
	if !ok {
		return errors.Errorf("%s is not a range type", dt)
	}
	if dst.newElement == nil {
		return errors.New("range has no element factory; construct it with NewRange")
	}

	if len(src) == 0 {
		return invalidFormatf(dt, "missing flag byte")
	}
	flags := src[0]
	rp := 1

	if flags&^allRangeMasks != 0 {
		return invalidFormatf(dt, "unknown flag bits %#x", flags)
	}

	if flags&emptyMask != 0 {
		if len(src) != 1 {
			return invalidFormatf(dt, "empty range must carry no bounds")
		}
		dst.Lower, dst.Upper = nil, nil
		dst.LowerType, dst.UpperType = Empty, Empty
		dst.Status = Present
		return nil
	}

	lowerType := Exclusive
	switch {
	case flags&lowerUnboundedMask != 0:
		lowerType = Unbounded
	case flags&lowerInclusiveMask != 0:
		lowerType = Inclusive
	}

	upperType := Exclusive
	switch {
	case flags&upperUnboundedMask != 0:
		upperType = Unbounded
	case flags&upperInclusiveMask != 0:
		upperType = Inclusive
	}

	var lower, upper ValueTranscoder
	if lowerType != Unbounded {
		var err error
		lower, rp, err = dst.decodeBound(dt, rk.Element, src, rp)
		if err != nil {
			return err
		}
	}
	if upperType != Unbounded {
		var err error
		upper, rp, err = dst.decodeBound(dt, rk.Element, src, rp)
		if err != nil {
			return err
		}
	}

	if rp != len(src) {
		return invalidFormatf(dt, "%d trailing bytes", len(src)-rp)
	}

	dst.Lower, dst.Upper = lower, upper
	dst.LowerType, dst.UpperType = lowerType, upperType
	dst.Status = Present
	return nil
}

func (dst *Range) decodeBound(dt, elementType *Type, src []byte, rp int) (ValueTranscoder, int, error) {
	if len(src[rp:]) < 4 {
		return nil, 0, invalidFormatf(dt, "bound length incomplete")
	}
	boundLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
	rp += 4

	if boundLen < 0 {
		return nil, 0, invalidFormatf(dt, "bound cannot be NULL")
	}
	if len(src[rp:]) < boundLen {
		return nil, 0, invalidFormatf(dt, "bound truncated")
	}

	bound := dst.newElement()
	if err := bound.DecodeBinary(elementType, src[rp:rp+boundLen]); err != nil {
		return nil, 0, err
	}
	return bound, rp + boundLen, nil
}

func (dst *Range) DecodeNull(dt *Type) error {
	dst.Lower, dst.Upper = nil, nil
	dst.LowerType, dst.UpperType = 0, 0
	dst.Status = Null
	return nil
}
