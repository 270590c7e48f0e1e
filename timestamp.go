package pgbin

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

const microsecFromUnixEpochToY2K = 946684800 * 1000000

const (
	infinityMicrosecondOffset         = math.MaxInt64
	negativeInfinityMicrosecondOffset = math.MinInt64
)

// Timestamp corresponds to the PostgreSQL timestamp and timestamptz types.
// Both share the same binary format: microseconds since 2000-01-01 00:00:00.
// Time is always in UTC; the with/without time zone distinction only affects
// how the query layer interprets the value.
type Timestamp struct {
	Time             time.Time
	InfinityModifier InfinityModifier
	Status           Status
}

func (dst *Timestamp) Accepts(dt *Type) bool {
	switch underlying(dt).OID() {
	case TimestampOID, TimestamptzOID:
		return true
	}
	return false
}

func (src *Timestamp) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	if underlying(dt).OID() == TimestampOID && src.InfinityModifier == None && src.Time.Location() != time.UTC {
		return nil, false, errors.New("cannot encode non-UTC time into timestamp")
	}

	var microsecSinceY2K int64
	switch src.InfinityModifier {
	case None:
		microsecSinceUnixEpoch := src.Time.Unix()*1000000 + int64(src.Time.Nanosecond())/1000
		microsecSinceY2K = microsecSinceUnixEpoch - microsecFromUnixEpochToY2K
	case Infinity:
		microsecSinceY2K = infinityMicrosecondOffset
	case NegativeInfinity:
		microsecSinceY2K = negativeInfinityMicrosecondOffset
	}

	return pgio.AppendInt64(buf, microsecSinceY2K), false, nil
}

func (dst *Timestamp) DecodeBinary(dt *Type, src []byte) error {
	if len(src) != 8 {
		return invalidFormatf(dt, "timestamp must be 8 bytes, got %d", len(src))
	}

	microsecSinceY2K := int64(binary.BigEndian.Uint64(src))

	switch microsecSinceY2K {
	case infinityMicrosecondOffset:
		*dst = Timestamp{Status: Present, InfinityModifier: Infinity}
	case negativeInfinityMicrosecondOffset:
		*dst = Timestamp{Status: Present, InfinityModifier: NegativeInfinity}
	default:
		microsecSinceUnixEpoch := microsecFromUnixEpochToY2K + microsecSinceY2K
		tim := time.Unix(microsecSinceUnixEpoch/1000000, (microsecSinceUnixEpoch%1000000)*1000).UTC()
		*dst = Timestamp{Time: tim, Status: Present}
	}

	return nil
}

func (dst *Timestamp) DecodeNull(dt *Type) error {
	*dst = Timestamp{Status: Null}
	return nil
}
