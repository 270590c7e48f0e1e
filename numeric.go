package pgbin

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/jackc/pgio"
)

const (
	pgNumericPositive = 0x0000
	pgNumericNegative = 0x4000
	pgNumericNaN      = 0xC000
)

var big10000 = big.NewInt(10000)
var bigTen = big.NewInt(10)

// Numeric is an arbitrary precision decimal: Int * 10^Exp. The binary format
// is a sign, a weight, a display scale, and a sequence of base-10000 digit
// groups; zero is canonically the empty digit sequence with weight zero.
type Numeric struct {
	Int    *big.Int
	Exp    int32
	NaN    bool
	Status Status
}

func (dst *Numeric) Accepts(dt *Type) bool {
	return underlying(dt).OID() == NumericOID
}

func (src *Numeric) EncodeBinary(dt *Type, buf []byte) ([]byte, IsNull, error) {
	switch src.Status {
	case Null:
		return buf, true, nil
	case Undefined:
		return nil, false, errUndefined
	}

	if src.NaN {
		buf = pgio.AppendInt16(buf, 0)
		buf = pgio.AppendInt16(buf, 0)
		buf = pgio.AppendUint16(buf, pgNumericNaN)
		buf = pgio.AppendInt16(buf, 0)
		return buf, false, nil
	}

	v := src.Int
	if v == nil {
		v = big.NewInt(0)
	}

	var dscale int32
	if src.Exp < 0 {
		dscale = -src.Exp
	}
	if dscale > math.MaxInt16 {
		return nil, false, &OutOfRangeError{Type: dt, Value: "numeric display scale"}
	}

	sign := uint16(pgNumericPositive)
	if v.Sign() < 0 {
		sign = pgNumericNegative
	}

	// Align the exponent to a multiple of 4 by padding the coefficient, then
	// split into base-10000 digit groups.
	coeff := new(big.Int).Abs(v)
	pad := ((src.Exp % 4) + 4) % 4
	if pad > 0 && coeff.Sign() != 0 {
		coeff.Mul(coeff, pow10(int(pad)))
	}
	groupExp := (src.Exp - pad) / 4

	var groups []uint16 // least significant first
	rem := new(big.Int)
	for coeff.Sign() != 0 {
		coeff.QuoRem(coeff, big10000, rem)
		groups = append(groups, uint16(rem.Int64()))
	}

	ndigits := len(groups)
	if ndigits > math.MaxInt16 {
		return nil, false, &OutOfRangeError{Type: dt, Value: "numeric digit count"}
	}

	var weight int64
	if ndigits > 0 {
		weight = int64(ndigits-1) + int64(groupExp)
		if weight > math.MaxInt16 || weight < math.MinInt16 {
			return nil, false, &OutOfRangeError{Type: dt, Value: "numeric weight"}
		}
	}

	buf = pgio.AppendInt16(buf, int16(ndigits))
	buf = pgio.AppendInt16(buf, int16(weight))
	buf = pgio.AppendUint16(buf, sign)
	buf = pgio.AppendInt16(buf, int16(dscale))
	for i := ndigits - 1; i >= 0; i-- {
		buf = pgio.AppendUint16(buf, groups[i])
	}

	return buf, false, nil
}

func (dst *Numeric) DecodeBinary(dt *Type, src []byte) error {
	if len(src) < 8 {
		return invalidFormatf(dt, "numeric header must be 8 bytes, got %d", len(src))
	}

	ndigits := int16(binary.BigEndian.Uint16(src))
	weight := int16(binary.BigEndian.Uint16(src[2:]))
	sign := binary.BigEndian.Uint16(src[4:])
	dscale := int16(binary.BigEndian.Uint16(src[6:]))

	if sign == pgNumericNaN {
		if ndigits != 0 || len(src) != 8 {
			return invalidFormatf(dt, "NaN must not carry digits")
		}
		*dst = Numeric{NaN: true, Status: Present}
		return nil
	}
	if sign != pgNumericPositive && sign != pgNumericNegative {
		return invalidFormatf(dt, "unknown sign %#x", sign)
	}
	if ndigits < 0 || dscale < 0 {
		return invalidFormatf(dt, "negative digit count or scale")
	}
	if len(src) != 8+int(ndigits)*2 {
		return invalidFormatf(dt, "expected %d bytes, got %d", 8+int(ndigits)*2, len(src))
	}

	acc := new(big.Int)
	group := new(big.Int)
	for i := 0; i < int(ndigits); i++ {
		g := binary.BigEndian.Uint16(src[8+i*2:])
		if g > 9999 {
			return invalidFormatf(dt, "digit group %d exceeds 9999", g)
		}
		acc.Mul(acc, big10000)
		acc.Add(acc, group.SetInt64(int64(g)))
	}

	var exp int32
	if ndigits > 0 {
		exp = (int32(weight) - int32(ndigits) + 1) * 4
	} else {
		exp = -int32(dscale)
	}

	// Strip zero padding past the declared scale so the result carries the
	// originally declared scale.
	var q, r big.Int
	for exp < -int32(dscale) {
		q.QuoRem(acc, bigTen, &r)
		if r.Sign() != 0 {
			break
		}
		acc.Set(&q)
		exp++
	}

	if sign == pgNumericNegative {
		acc.Neg(acc)
	}

	*dst = Numeric{Int: acc, Exp: exp, Status: Present}
	return nil
}

func (dst *Numeric) DecodeNull(dt *Type) error {
	*dst = Numeric{Status: Null}
	return nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
