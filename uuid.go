package pgbin

type UUID struct {
	Bytes  [16]byte
	Status Status
}

func (dst *UUID) Accepts(dt *Type) bool {
	return underlying(dt).OID() == UUIDOID
}

func (src *UUID) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return append(buf, src.Bytes[:]...), false, nil
}

func (dst *UUID) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 16 {
		return invalidFormatf(dt, "uuid must be 16 bytes, got %d", len(src))
	}

	*dst = UUID{Status: Present}
	copy(dst.Bytes[:], src)
	return nil
}

func (dst *UUID) DecodeNull(dt *Type) error {
	*dst = UUID{Status: Null}
	return nil
}
