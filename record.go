package pgbin

// Record decodes the anonymous record pseudo type. Unlike Composite there is
// no descriptor naming the field types; each field's codec is chosen from
// the builtin table by the oid embedded in the payload. The server cannot
// receive anonymous records, so Record is decode-only.
type Record struct {
	Fields []ValueTranscoder
	Status Status
}

func (dst *Record) Accepts(dt *Type) bool {
	return underlying(dt).OID() == RecordOID
}

func (dst *Record) DecodeBinary(dt *Type, src []byte) error {
	scanner, err := newCompositeScanner(dt, src)
	if err != nil {
		return err
	}

	// The declared count is not trusted for allocation; every field costs at
	// least its 8 byte header, so the payload caps the true count.
	capacity := scanner.FieldCount()
	if max := len(src) / 8; capacity > max {
		capacity = max
	}
	fields := make([]ValueTranscoder, 0, capacity)
	for scanner.Scan() {
		fieldType, ok := TypeForOID(scanner.OID())
		if !ok {
			return invalidFormatf(dt, "unknown field oid %d", scanner.OID())
		}
		field, ok := NewValueForOID(scanner.OID())
		if !ok {
			return invalidFormatf(dt, "no codec for field oid %d", scanner.OID())
		}

		if scanner.IsNull() {
			if err := field.DecodeNull(fieldType); err != nil {
				return err
			}
		} else {
			if err := field.DecodeBinary(fieldType, scanner.Bytes()); err != nil {
				return err
			}
		}

		fields = append(fields, field)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(fields) != scanner.FieldCount() {
		return invalidFormatf(dt, "payload ended after %d of %d fields", len(fields), scanner.FieldCount())
	}

	*dst = Record{Fields: fields, Status: Present}
	return nil
}

func (dst *Record) DecodeNull(dt *Type) error {
	*dst = Record{Status: Null}
	return nil
}
