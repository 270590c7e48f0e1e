package pgbin

import (
	"encoding/binary"
	"math"

	"github.com/jackc/pgio"
)

type Float8 struct {
	Float  float64
	Status Status
}

func (dst *Float8) Accepts(dt *Type) bool {
	return underlying(dt).OID() == Float8OID
}

func (src *Float8) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return pgio.AppendUint64(buf, math.Float64bits(src.Float)), false, nil
}

func (dst *Float8) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 8 {
		return invalidFormatf(dt, "float8 must be 8 bytes, got %d", len(src))
	}

	*dst = Float8{Float: math.Float64frombits(binary.BigEndian.Uint64(src)), Status: Present}
	return nil
}

func (dst *Float8) DecodeNull(dt *Type) error {
	*dst = Float8{Status: Null}
	return nil
}
