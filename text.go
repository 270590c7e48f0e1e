package pgbin

import "unicode/utf8"

// Text corresponds to the PostgreSQL character string types. The binary
// format is the raw bytes with no length prefix; framing is owned by the
// caller. Text also accepts enum types, whose wire format is the label text.
type Text struct {
	String string
	Status Status
}

func (dst *Text) Accepts(dt *Type) bool {
	dt = underlying(dt)
	if _, ok := dt.Kind().(EnumKind); ok {
		return true
	}

	switch dt.OID() {
	case TextOID, VarcharOID, BPCharOID, NameOID, UnknownOID:
		return true
	}
	return false
}

func (src *Text) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return append(buf, src.String...), false, nil
}

func (dst *Text) DecodeBinary(dt *Type, src []byte) error {
	if !utf8.Valid(src) {
		return invalidFormatf(dt, "string is not valid UTF-8")
	}

	*dst = Text{String: string(src), Status: Present}
	return nil
}

func (dst *Text) DecodeNull(dt *Type) error {
	*dst = Text{Status: Null}
	return nil
}
