package pgbin

import "unicode/utf8"

// jsonb payloads carry a one byte format version before the document text.
const jsonbBinaryVersion = 1

type JSONB struct {
	Bytes  []byte
	Status Status
}

func (dst *JSONB) Accepts(dt *Type) bool {
	return underlying(dt).OID() == JSONBOID
}

func (src *JSONB) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	buf = append(buf, jsonbBinaryVersion)
	return append(buf, src.Bytes...), false, nil
}

func (dst *JSONB) DecodeBinary(dt *Type, src []byte) error {
	if len(src) == 0 {
		return invalidFormatf(dt, "jsonb too short")
	}
	if src[0] != jsonbBinaryVersion {
		return invalidFormatf(dt, "unknown jsonb format version %d", src[0])
	}
	if !utf8.Valid(src[1:]) {
		return invalidFormatf(dt, "jsonb is not valid UTF-8")
	}

	buf := make([]byte, len(src)-1)
	copy(buf, src[1:])

	*dst = JSONB{Bytes: buf, Status: Present}
	return nil
}

func (dst *JSONB) DecodeNull(dt *Type) error {
	*dst = JSONB{Status: Null}
	return nil
}
