package pgbin

import (
	"encoding/binary"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

// Composite is the generic codec for composite (row) types. Fields are
// positional and must match the descriptor's CompositeKind in number; the
// descriptor supplies each field's declared type.
type Composite struct {
	Fields []ValueTranscoder
	Status Status
}

// NewComposite constructs a composite value with one transcoder per field in
// declared order.
func NewComposite(fields ...ValueTranscoder) *Composite {
	return &Composite{Fields: fields}
}

func (c *Composite) Accepts(dt *Type) bool {
	_, ok := underlying(dt).Kind().(CompositeKind)
	return ok
}

func (src *Composite) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	ck, ok := underlying(dt).Kind().(CompositeKind)
	if !ok {
		return nil, false, errors.Errorf("%s is not a composite type", dt)
	}

	if len(src.Fields) != len(ck.Fields) {
		return nil, false, &WrongFieldCountError{Expected: len(ck.Fields), Actual: len(src.Fields)}
	}

	buf = pgio.AppendInt32(buf, int32(len(ck.Fields)))

	for i, field := range ck.Fields {
		buf = pgio.AppendUint32(buf, uint32(field.Type.OID()))

		sp := len(buf)
		buf = pgio.AppendInt32(buf, -1)

		fieldBuf, null, err := Encode(field.Type, src.Fields[i], buf)
		if err != nil {
			return nil, false, errors.Wrapf(err, "field %s", field.Name)
		}
		if !null {
			buf = fieldBuf
			pgio.SetInt32(buf[sp:], int32(len(buf[sp:])-4))
		}
	}

	return buf, false, nil
}

func (dst *Composite) DecodeBinary(dt *Type, src []byte) error {
	ck, ok := underlying(dt).Kind().(CompositeKind)
	if !ok {
		return errors.Errorf("%s is not a composite type", dt)
	}

	scanner, err := newCompositeScanner(dt, src)
	if err != nil {
		return err
	}

	if scanner.FieldCount() != len(ck.Fields) {
		return &WrongFieldCountError{Expected: len(ck.Fields), Actual: scanner.FieldCount()}
	}
	if len(dst.Fields) != len(ck.Fields) {
		return &WrongFieldCountError{Expected: len(ck.Fields), Actual: len(dst.Fields)}
	}

	var i int
	for ; scanner.Scan(); i++ {
		if i >= len(ck.Fields) {
			return invalidFormatf(dt, "payload carries more fields than the declared %d", len(ck.Fields))
		}

		declared := ck.Fields[i].Type
		if declaredOID := declared.OID(); declaredOID != 0 && scanner.OID() != declaredOID {
			return invalidFormatf(dt, "field %s has oid %d, declared %d", ck.Fields[i].Name, scanner.OID(), declaredOID)
		}

		if scanner.IsNull() {
			if err := dst.Fields[i].DecodeNull(declared); err != nil {
				return err
			}
		} else {
			if err := dst.Fields[i].DecodeBinary(declared, scanner.Bytes()); err != nil {
				return errors.Wrapf(err, "field %s", ck.Fields[i].Name)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if i != scanner.FieldCount() {
		return invalidFormatf(dt, "payload ended after %d of %d fields", i, scanner.FieldCount())
	}

	dst.Status = Present
	return nil
}

func (dst *Composite) DecodeNull(dt *Type) error {
	dst.Status = Null
	return nil
}

// compositeScanner iterates the fields of a binary encoded composite or
// record value: a field count followed by (oid, length, payload) triples.
type compositeScanner struct {
	dt  *Type
	src []byte
	rp  int

	fieldCount int32
	fieldOID   OID
	fieldBytes []byte
	fieldNull  bool
	err        error
}

func newCompositeScanner(dt *Type, src []byte) (*compositeScanner, error) {
	if len(src) < 4 {
		return nil, invalidFormatf(dt, "field count incomplete")
	}

	fieldCount := int32(binary.BigEndian.Uint32(src))
	if fieldCount < 0 {
		return nil, invalidFormatf(dt, "negative field count %d", fieldCount)
	}

	return &compositeScanner{dt: dt, src: src, rp: 4, fieldCount: fieldCount}, nil
}

// Scan advances to the next field. It returns false after the last field or
// on error; check Err afterwards.
func (cs *compositeScanner) Scan() bool {
	if cs.err != nil {
		return false
	}
	if cs.rp == len(cs.src) {
		return false
	}

	if len(cs.src[cs.rp:]) < 8 {
		cs.err = invalidFormatf(cs.dt, "field header incomplete")
		return false
	}
	cs.fieldOID = OID(binary.BigEndian.Uint32(cs.src[cs.rp:]))
	cs.rp += 4

	fieldLen := int(int32(binary.BigEndian.Uint32(cs.src[cs.rp:])))
	cs.rp += 4

	switch {
	case fieldLen == -1:
		cs.fieldBytes = nil
		cs.fieldNull = true
	case fieldLen < 0:
		cs.err = invalidFormatf(cs.dt, "invalid field length %d", fieldLen)
		return false
	default:
		if len(cs.src[cs.rp:]) < fieldLen {
			cs.err = invalidFormatf(cs.dt, "field truncated")
			return false
		}
		cs.fieldBytes = cs.src[cs.rp : cs.rp+fieldLen]
		cs.fieldNull = false
		cs.rp += fieldLen
	}

	return true
}

func (cs *compositeScanner) FieldCount() int {
	return int(cs.fieldCount)
}

// OID returns the type oid of the field most recently read by Scan.
func (cs *compositeScanner) OID() OID {
	return cs.fieldOID
}

// Bytes returns the payload of the field most recently read by Scan. It is
// nil for a NULL field.
func (cs *compositeScanner) Bytes() []byte {
	return cs.fieldBytes
}

// IsNull reports whether the field most recently read by Scan was NULL.
func (cs *compositeScanner) IsNull() bool {
	return cs.fieldNull
}

func (cs *compositeScanner) Err() error {
	return cs.err
}
