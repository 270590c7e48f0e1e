package pgbin

import (
	"encoding/binary"

	"github.com/jackc/pgio"
)

// Int2 corresponds to the PostgreSQL smallint type.
type Int2 struct {
	Int    int16
	Status Status
}

func (dst *Int2) Accepts(dt *Type) bool {
	return underlying(dt).OID() == Int2OID
}

func (src *Int2) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return pgio.AppendInt16(buf, src.Int), false, nil
}

func (dst *Int2) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 2 {
		return invalidFormatf(dt, "int2 must be 2 bytes, got %d", len(src))
	}

	*dst = Int2{Int: int16(binary.BigEndian.Uint16(src)), Status: Present}
	return nil
}

func (dst *Int2) DecodeNull(dt *Type) error {
	*dst = Int2{Status: Null}
	return nil
}
