package pgbin

import "unicode/utf8"

// EnumValue holds a label of an enum type. The wire format is the label
// text. The descriptor's EnumKind supplies the declared variants; when they
// are known, labels are validated against them in both directions.
type EnumValue struct {
	String string
	Status Status
}

func (dst *EnumValue) Accepts(dt *Type) bool {
	_, ok := underlying(dt).Kind().(EnumKind)
	return ok
}

func (src *EnumValue) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	if ek, ok := underlying(dt).Kind().(EnumKind); ok && len(ek.Variants) > 0 && !ek.contains(src.String) {
		return nil, false, &OutOfRangeError{Type: dt, Value: src.String}
	}

	return append(buf, src.String...), false, nil
}

func (dst *EnumValue) DecodeBinary(dt *Type, src []byte) error {
	if !utf8.Valid(src) {
		return invalidFormatf(dt, "enum label is not valid UTF-8")
	}

	label := string(src)
	if ek, ok := underlying(dt).Kind().(EnumKind); ok && len(ek.Variants) > 0 && !ek.contains(label) {
		return invalidFormatf(dt, "%q is not a declared label", label)
	}

	*dst = EnumValue{String: label, Status: Present}
	return nil
}

func (dst *EnumValue) DecodeNull(dt *Type) error {
	*dst = EnumValue{Status: Null}
	return nil
}
