package pgbin_test

import (
	"errors"
	"testing"

	"github.com/pgkit/pgbin"
	"github.com/stretchr/testify/require"
)

func moodType() *pgbin.Type {
	return pgbin.NewType(16500, "public", "mood", pgbin.EnumKind{Variants: []string{"sad", "ok", "happy"}})
}

func TestEnumTranscode(t *testing.T) {
	dt := moodType()

	buf, _, err := pgbin.Encode(dt, &pgbin.EnumValue{String: "happy", Status: pgbin.Present}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte("happy"), buf)

	var decoded pgbin.EnumValue
	require.NoError(t, pgbin.Decode(dt, buf, &decoded))
	require.Equal(t, pgbin.EnumValue{String: "happy", Status: pgbin.Present}, decoded)
}

func TestEnumEncodeRejectsUnknownLabel(t *testing.T) {
	dt := moodType()

	_, _, err := pgbin.Encode(dt, &pgbin.EnumValue{String: "angry", Status: pgbin.Present}, nil)
	var outOfRange *pgbin.OutOfRangeError
	require.True(t, errors.As(err, &outOfRange))
}

func TestEnumDecodeRejectsUnknownLabel(t *testing.T) {
	dt := moodType()

	var decoded pgbin.EnumValue
	var invalid *pgbin.InvalidFormatError
	require.True(t, errors.As(pgbin.Decode(dt, []byte("angry"), &decoded), &invalid))
	require.True(t, errors.As(pgbin.Decode(dt, []byte{0xff, 0xfe}, &decoded), &invalid))
}

func TestEnumWithoutDeclaredVariantsAcceptsAnyLabel(t *testing.T) {
	dt := pgbin.NewType(16501, "public", "unversioned_enum", pgbin.EnumKind{})

	buf, _, err := pgbin.Encode(dt, &pgbin.EnumValue{String: "whatever", Status: pgbin.Present}, nil)
	require.NoError(t, err)

	var decoded pgbin.EnumValue
	require.NoError(t, pgbin.Decode(dt, buf, &decoded))
	require.Equal(t, "whatever", decoded.String)
}

func TestTextAcceptsEnum(t *testing.T) {
	dt := moodType()

	var txt pgbin.Text
	require.True(t, txt.Accepts(dt))
	require.NoError(t, pgbin.Decode(dt, []byte("ok"), &txt))
	require.Equal(t, "ok", txt.String)
}
