package pgbin

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/jackc/pgio"
)

const (
	infinityDayOffset         = math.MaxInt32
	negativeInfinityDayOffset = math.MinInt32
)

// Date corresponds to the PostgreSQL date type: days since 2000-01-01.
type Date struct {
	Time             time.Time
	InfinityModifier InfinityModifier
	Status           Status
}

func (dst *Date) Accepts(dt *Type) bool {
	return underlying(dt).OID() == DateOID
}

func (src *Date) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	var daysSinceDateEpoch int32
	switch src.InfinityModifier {
	case None:
		tUnix := time.Date(src.Time.Year(), src.Time.Month(), src.Time.Day(), 0, 0, 0, 0, time.UTC).Unix()
		dateEpoch := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
		daysSinceDateEpoch = int32((tUnix - dateEpoch) / 86400)
	case Infinity:
		daysSinceDateEpoch = infinityDayOffset
	case NegativeInfinity:
		daysSinceDateEpoch = negativeInfinityDayOffset
	}

	return pgio.AppendInt32(buf, daysSinceDateEpoch), false, nil
}

func (dst *Date) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 4 {
		return invalidFormatf(dt, "date must be 4 bytes, got %d", len(src))
	}

	dayOffset := int32(binary.BigEndian.Uint32(src))

	switch dayOffset {
	case infinityDayOffset:
		*dst = Date{Status: Present, InfinityModifier: Infinity}
	case negativeInfinityDayOffset:
		*dst = Date{Status: Present, InfinityModifier: NegativeInfinity}
	default:
		t := time.Date(2000, 1, int(1+dayOffset), 0, 0, 0, 0, time.UTC)
		*dst = Date{Time: t, Status: Present}
	}

	return nil
}

func (dst *Date) DecodeNull(dt *Type) error {
	*dst = Date{Status: Null}
	return nil
}
