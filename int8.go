package pgbin

import (
	"encoding/binary"

	"github.com/jackc/pgio"
)

// Int8 corresponds to the PostgreSQL bigint type.
type Int8 struct {
	Int    int64
	Status Status
}

func (dst *Int8) Accepts(dt *Type) bool {
	return underlying(dt).OID() == Int8OID
}

func (src *Int8) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return pgio.AppendInt64(buf, src.Int), false, nil
}

func (dst *Int8) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 8 {
		return invalidFormatf(dt, "int8 must be 8 bytes, got %d", len(src))
	}

	*dst = Int8{Int: int64(binary.BigEndian.Uint64(src)), Status: Present}
	return nil
}

func (dst *Int8) DecodeNull(dt *Type) error {
	*dst = Int8{Status: Null}
	return nil
}
