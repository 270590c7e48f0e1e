package pgbin

type Bytea struct {
	Bytes  []byte
	Status Status
}

func (dst *Bytea) Accepts(dt *Type) bool {
	return underlying(dt).OID() == ByteaOID
}

func (src *Bytea) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	return append(buf, src.Bytes...), false, nil
}

func (dst *Bytea) DecodeBinary(dt *Type, src []byte) error {
	// src is owned by the caller and must not be retained.
	buf := make([]byte, len(src))
	copy(buf, src)

	*dst = Bytea{Bytes: buf, Status: Present}
	return nil
}

func (dst *Bytea) DecodeNull(dt *Type) error {
	*dst = Bytea{Status: Null}
	return nil
}
