package pgbin

type Bool struct {
	Bool   bool
	Status Status
}

func (dst *Bool) Accepts(dt *Type) bool {
	return underlying(dt).OID() == BoolOID
}

func (src *Bool) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	if src.Bool {
		return append(buf, 1), false, nil
	}
	return append(buf, 0), false, nil
}

func (dst *Bool) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 1 {
		return invalidFormatf(dt, "bool must be 1 byte, got %d", len(src))
	}
	if src[0] > 1 {
		return invalidFormatf(dt, "invalid bool byte %d", src[0])
	}

	*dst = Bool{Bool: src[0] == 1, Status: Present}
	return nil
}

func (dst *Bool) DecodeNull(dt *Type) error {
	*dst = Bool{Status: Null}
	return nil
}
