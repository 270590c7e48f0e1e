package pgbin

import "unicode/utf8"

// JSON corresponds to the PostgreSQL json type. The binary format is the raw
// UTF-8 text of the document.
type JSON struct {
	Bytes  []byte
	Status Status
}

func (dst *JSON) Accepts(dt *Type) bool {
	return underlying(dt).OID() == JSONOID
}

func (src *JSON) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return append(buf, src.Bytes...), false, nil
}

func (dst *JSON) DecodeBinary(dt *Type, src []byte) error {
	if !utf8.Valid(src) {
		return invalidFormatf(dt, "json is not valid UTF-8")
	}

	buf := make([]byte, len(src))
	copy(buf, src)

	*dst = JSON{Bytes: buf, Status: Present}
	return nil
}

func (dst *JSON) DecodeNull(dt *Type) error {
	*dst = JSON{Status: Null}
	return nil
}
