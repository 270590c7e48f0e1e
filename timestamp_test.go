package pgbin_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pgkit/pgbin"
	"github.com/stretchr/testify/require"
)

func TestTimestampTranscode(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.TimestampOID)

	tests := []struct {
		time time.Time
		wire []byte
	}{
		// the epoch itself
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		// one second past the epoch
		{time.Date(2000, 1, 1, 0, 0, 1, 0, time.UTC), []byte{0, 0, 0, 0, 0, 0x0f, 0x42, 0x40}},
	}

	for _, tt := range tests {
		buf, _, err := pgbin.Encode(dt, &pgbin.Timestamp{Time: tt.time, Status: pgbin.Present}, nil)
		require.NoError(t, err)
		require.Equal(t, tt.wire, buf)

		var decoded pgbin.Timestamp
		require.NoError(t, pgbin.Decode(dt, buf, &decoded))
		require.True(t, tt.time.Equal(decoded.Time))
		require.Equal(t, pgbin.None, decoded.InfinityModifier)
	}
}

func TestTimestampMicrosecondPrecision(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.TimestampOID)

	orig := time.Date(2021, 3, 4, 5, 6, 7, 123456000, time.UTC)
	buf, _, err := pgbin.Encode(dt, &pgbin.Timestamp{Time: orig, Status: pgbin.Present}, nil)
	require.NoError(t, err)

	var decoded pgbin.Timestamp
	require.NoError(t, pgbin.Decode(dt, buf, &decoded))
	require.True(t, orig.Equal(decoded.Time))
}

func TestTimestampInfinity(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.TimestampOID)

	buf, _, err := pgbin.Encode(dt, &pgbin.Timestamp{InfinityModifier: pgbin.Infinity, Status: pgbin.Present}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, buf)

	var decoded pgbin.Timestamp
	require.NoError(t, pgbin.Decode(dt, buf, &decoded))
	require.Equal(t, pgbin.Infinity, decoded.InfinityModifier)

	buf, _, err = pgbin.Encode(dt, &pgbin.Timestamp{InfinityModifier: pgbin.NegativeInfinity, Status: pgbin.Present}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, buf)

	require.NoError(t, pgbin.Decode(dt, buf, &decoded))
	require.Equal(t, pgbin.NegativeInfinity, decoded.InfinityModifier)
}

func TestTimestampRejectsNonUTC(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.TimestampOID)

	loc := time.FixedZone("x", 3600)
	src := &pgbin.Timestamp{Time: time.Date(2021, 1, 1, 0, 0, 0, 0, loc), Status: pgbin.Present}
	_, _, err := pgbin.Encode(dt, src, nil)
	require.Error(t, err)
}

func TestTimestamptzAcceptsLocalTime(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.TimestamptzOID)

	loc := time.FixedZone("x", 3600)
	orig := time.Date(2021, 1, 1, 1, 0, 0, 0, loc)
	buf, _, err := pgbin.Encode(dt, &pgbin.Timestamp{Time: orig, Status: pgbin.Present}, nil)
	require.NoError(t, err)

	var decoded pgbin.Timestamp
	require.NoError(t, pgbin.Decode(dt, buf, &decoded))
	require.True(t, orig.Equal(decoded.Time))
}

func TestTimestampDecodeWrongLength(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.TimestampOID)

	var decoded pgbin.Timestamp
	var invalid *pgbin.InvalidFormatError
	require.True(t, errors.As(pgbin.Decode(dt, []byte{0, 0, 0, 0}, &decoded), &invalid))
}

func TestDateTranscode(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.DateOID)

	tests := []struct {
		time time.Time
		wire []byte
	}{
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), []byte{0, 0, 0, 0}},
		{time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), []byte{0, 0, 0, 1}},
		{time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), []byte{0xff, 0xff, 0xff, 0xff}},
		{time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), []byte{0, 0, 0x1e, 0x9c}},
	}

	for _, tt := range tests {
		buf, _, err := pgbin.Encode(dt, &pgbin.Date{Time: tt.time, Status: pgbin.Present}, nil)
		require.NoError(t, err)
		require.Equal(t, tt.wire, buf)

		var decoded pgbin.Date
		require.NoError(t, pgbin.Decode(dt, buf, &decoded))
		require.True(t, tt.time.Equal(decoded.Time))
	}
}

func TestDateInfinity(t *testing.T) {
	dt := mustTypeForOID(t, pgbin.DateOID)

	buf, _, err := pgbin.Encode(dt, &pgbin.Date{InfinityModifier: pgbin.Infinity, Status: pgbin.Present}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x7f, 0xff, 0xff, 0xff}, buf)

	var decoded pgbin.Date
	require.NoError(t, pgbin.Decode(dt, buf, &decoded))
	require.Equal(t, pgbin.Infinity, decoded.InfinityModifier)

	buf, _, err = pgbin.Encode(dt, &pgbin.Date{InfinityModifier: pgbin.NegativeInfinity, Status: pgbin.Present}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x80, 0, 0, 0}, buf)

	require.NoError(t, pgbin.Decode(dt, buf, &decoded))
	require.Equal(t, pgbin.NegativeInfinity, decoded.InfinityModifier)
}
