package pgbin

import (
	"encoding/binary"

	"github.com/jackc/pgio"
)

// Int4 corresponds to the PostgreSQL integer type.
type Int4 struct {
	Int    int32
	Status Status
}

func (dst *Int4) Accepts(dt *Type) bool {
	return underlying(dt).OID() == Int4OID
}

func (src *Int4) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return pgio.AppendInt32(buf, src.Int), false, nil
}

func (dst *Int4) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 4 {
		return invalidFormatf(dt, "int4 must be 4 bytes, got %d", len(src))
	}

	*dst = Int4{Int: int32(binary.BigEndian.Uint32(src)), Status: Present}
	return nil
}

func (dst *Int4) DecodeNull(dt *Type) error {
	*dst = Int4{Status: Null}
	return nil
}
