package pgbin_test

import (
	"testing"

	"github.com/pgkit/pgbin"
	"github.com/stretchr/testify/require"
)

func TestDomainTranscodesAsBaseType(t *testing.T) {
	base := mustTypeForOID(t, pgbin.Int4OID)
	domain := pgbin.NewType(16700, "public", "positive_int", pgbin.DomainKind{Base: base})

	src := &pgbin.Int4{Int: 42, Status: pgbin.Present}
	require.True(t, src.Accepts(domain))

	viaDomain, _, err := pgbin.Encode(domain, src, nil)
	require.NoError(t, err)
	viaBase, _, err := pgbin.Encode(base, src, nil)
	require.NoError(t, err)
	require.Equal(t, viaBase, viaDomain)

	var decoded pgbin.Int4
	require.NoError(t, pgbin.Decode(domain, viaDomain, &decoded))
	require.Equal(t, pgbin.Int4{Int: 42, Status: pgbin.Present}, decoded)
}

func TestDomainChain(t *testing.T) {
	base := mustTypeForOID(t, pgbin.TextOID)
	inner := pgbin.NewType(16701, "public", "nonempty_text", pgbin.DomainKind{Base: base})
	outer := pgbin.NewType(16702, "public", "short_text", pgbin.DomainKind{Base: inner})

	src := &pgbin.Text{String: "hi", Status: pgbin.Present}
	require.True(t, src.Accepts(outer))

	buf, _, err := pgbin.Encode(outer, src, nil)
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), buf)
}

func TestDomainOverEnum(t *testing.T) {
	enum := pgbin.NewType(16703, "public", "mood", pgbin.EnumKind{Variants: []string{"sad", "happy"}})
	domain := pgbin.NewType(16704, "public", "checked_mood", pgbin.DomainKind{Base: enum})

	src := &pgbin.EnumValue{String: "happy", Status: pgbin.Present}
	require.True(t, src.Accepts(domain))

	buf, _, err := pgbin.Encode(domain, src, nil)
	require.NoError(t, err)

	var decoded pgbin.EnumValue
	require.NoError(t, pgbin.Decode(domain, buf, &decoded))
	require.Equal(t, "happy", decoded.String)
}

func TestDomainOverArray(t *testing.T) {
	base := mustTypeForOID(t, pgbin.Int4ArrayOID)
	domain := pgbin.NewType(16705, "public", "int_list", pgbin.DomainKind{Base: base})

	arr := newInt4Array()
	arr.SetElements([]pgbin.ValueTranscoder{&pgbin.Int4{Int: 9, Status: pgbin.Present}})
	require.True(t, arr.Accepts(domain))

	buf, _, err := pgbin.Encode(domain, arr, nil)
	require.NoError(t, err)

	decoded := newInt4Array()
	require.NoError(t, pgbin.Decode(domain, buf, decoded))
	require.Equal(t, &pgbin.Int4{Int: 9, Status: pgbin.Present}, decoded.Elements[0])
}

func TestDomainRejectsForeignBase(t *testing.T) {
	base := mustTypeForOID(t, pgbin.TextOID)
	domain := pgbin.NewType(16706, "public", "labelled", pgbin.DomainKind{Base: base})

	var i pgbin.Int4
	require.False(t, i.Accepts(domain))
}
