package pgbin

import (
	"encoding/binary"
	"math"

	"github.com/jackc/pgio"
)

type Float4 struct {
	Float  float32
	Status Status
}

func (dst *Float4) Accepts(dt *Type) bool {
	return underlying(dt).OID() == Float4OID
}

func (src *Float4) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return pgio.AppendUint32(buf, math.Float32bits(src.Float)), false, nil
}

func (dst *Float4) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 4 {
		return invalidFormatf(dt, "float4 must be 4 bytes, got %d", len(src))
	}

	*dst = Float4{Float: math.Float32frombits(binary.BigEndian.Uint32(src)), Status: Present}
	return nil
}

func (dst *Float4) DecodeNull(dt *Type) error {
	*dst = Float4{Status: Null}
	return nil
}
