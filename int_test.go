package pgbin_test

import (
	"errors"
	"math"
	"testing"

	"github.com/pgkit/pgbin"
	"github.com/stretchr/testify/require"
)

func TestInt2Transcode(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.Int2OID)

	tests := []struct {
		value int16
		wire  []byte
	}{
		{0, []byte{0, 0}},
		{1, []byte{0, 1}},
		{-1, []byte{0xff, 0xff}},
		{math.MaxInt16, []byte{0x7f, 0xff}},
		{math.MinInt16, []byte{0x80, 0x00}},
	}

	for _, tt := range tests {
		buf, null, err := pgbin.Encode(dt, &pgbin.Int2{Int: tt.value, Status: pgbin.Present}, nil)
		require.NoError(t, err)
		require.False(t, bool(null))
		require.Equal(t, tt.wire, buf)

		var decoded pgbin.Int2
		require.NoError(t, pgbin.Decode(dt, buf, &decoded))
		require.Equal(t, pgbin.Int2{Int: tt.value, Status: pgbin.Present}, decoded)
	}
}

func TestInt4Transcode(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.Int4OID)

	for _, value := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		buf, _, err := pgbin.Encode(dt, &pgbin.Int4{Int: value, Status: pgbin.Present}, nil)
		require.NoError(t, err)
		require.Len(t, buf, 4)

		var decoded pgbin.Int4
		require.NoError(t, pgbin.Decode(dt, buf, &decoded))
		require.Equal(t, value, decoded.Int)
	}
}

func TestInt8Transcode(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.Int8OID)

	for _, value := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		buf, _, err := pgbin.Encode(dt, &pgbin.Int8{Int: value, Status: pgbin.Present}, nil)
		require.NoError(t, err)
		require.Len(t, buf, 8)

		var decoded pgbin.Int8
		require.NoError(t, pgbin.Decode(dt, buf, &decoded))
		require.Equal(t, value, decoded.Int)
	}
}

func TestIntDecodeWrongLength(t *testing.T) {
	var invalid *pgbin.InvalidFormatError

	err := pgbin.Decode(mustTypeForOID(t, pgbin.Int2OID), []byte{0, 0, 0, 1}, &pgbin.Int2{})
	require.True(t, errors.As(err, &invalid))

	err = pgbin.Decode(mustTypeForOID(t, pgbin.Int4OID), []byte{0, 1}, &pgbin.Int4{})
	require.True(t, errors.As(err, &invalid))

	err = pgbin.Decode(mustTypeForOID(t, pgbin.Int8OID), []byte{}, &pgbin.Int8{})
	require.True(t, errors.As(err, &invalid))
}

func TestIntsDoNotAcceptEachOther(t *testing.T) {
	int2Type := mustTypeForOID(t, pgbin.Int2OID)
	int4Type := mustTypeForOID(t, pgbin.Int4OID)
	int8Type := mustTypeForOID(t, pgbin.Int8OID)

	require.False(t, (&pgbin.Int2{}).Accepts(int4Type))
	require.False(t, (&pgbin.Int4{}).Accepts(int8Type))
	require.False(t, (&pgbin.Int8{}).Accepts(int2Type))
}
