// Package uuid bridges github.com/gofrs/uuid values to the PostgreSQL uuid
// binary format by delegating to pgbin.UUID.
package uuid

import (
	"github.com/gofrs/uuid"
	"github.com/pgkit/pgbin"
)

type UUID struct {
	UUID   uuid.UUID
	Status pgbin.Status
}

func (dst *UUID) Accepts(dt *pgbin.Type) bool {
	return (&pgbin.UUID{}).Accepts(dt)
}

func (src *UUID) EncodeBinary(dt *pgbin.Type, buf []byte) ([]byte, pgbin.IsNull, error) {
	u := pgbin.UUID{Bytes: [16]byte(src.UUID), Status: src.Status}
	return u.EncodeBinary(dt, buf)
}

func (dst *UUID) DecodeBinary(dt *pgbin.Type, src []byte) error {
	var u pgbin.UUID
	if err := u.DecodeBinary(dt, src); err != nil {
		return err
	}

	*dst = UUID{UUID: uuid.UUID(u.Bytes), Status: pgbin.Present}
	return nil
}

func (dst *UUID) DecodeNull(dt *pgbin.Type) error {
	*dst = UUID{Status: pgbin.Null}
	return nil
}
