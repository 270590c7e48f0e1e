// Package numeric bridges github.com/cockroachdb/apd values to the
// PostgreSQL numeric binary format by delegating to pgbin.Numeric.
//
// apd.Decimal has no null sentinel, so decoding SQL NULL fails with
// pgbin.NullNotRepresentableError.
package numeric

import (
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/pgkit/pgbin"
	"github.com/pkg/errors"
)

type Numeric struct {
	Decimal apd.Decimal
}

func (dst *Numeric) Accepts(dt *pgbin.Type) bool {
	return (&pgbin.Numeric{}).Accepts(dt)
}

func (src *Numeric) EncodeBinary(dt *pgbin.Type, buf []byte) ([]byte, pgbin.IsNull, error) {
	coeff := new(big.Int).Set(&src.Decimal.Coeff)
	if src.Decimal.Negative {
		coeff.Neg(coeff)
	}

	num := pgbin.Numeric{Int: coeff, Exp: src.Decimal.Exponent, Status: pgbin.Present}
	return num.EncodeBinary(dt, buf)
}

func (dst *Numeric) DecodeBinary(dt *pgbin.Type, src []byte) error {
	var num pgbin.Numeric
	if err := num.DecodeBinary(dt, src); err != nil {
		return err
	}
	if num.NaN {
		return errors.New("cannot decode NaN into apd.Decimal")
	}

	var d apd.Decimal
	d.Exponent = num.Exp
	d.Coeff.Abs(num.Int)
	d.Negative = num.Int.Sign() < 0

	dst.Decimal = d
	return nil
}

func (dst *Numeric) DecodeNull(dt *pgbin.Type) error {
	return &pgbin.NullNotRepresentableError{Type: dt}
}
