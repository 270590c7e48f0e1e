// Package numeric bridges github.com/shopspring/decimal values to the
// PostgreSQL numeric binary format by delegating to pgbin.Numeric.
package numeric

import (
	"github.com/pgkit/pgbin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Numeric struct {
	Decimal decimal.Decimal
	Status  pgbin.Status
}

func (dst *Numeric) Accepts(dt *pgbin.Type) bool {
	return (&pgbin.Numeric{}).Accepts(dt)
}

func (src *Numeric) EncodeBinary(dt *pgbin.Type, buf []byte) ([]byte, pgbin.IsNull, error) {
	num := pgbin.Numeric{Int: src.Decimal.Coefficient(), Exp: src.Decimal.Exponent(), Status: src.Status}
	return num.EncodeBinary(dt, buf)
}

func (dst *Numeric) DecodeBinary(dt *pgbin.Type, src []byte) error {
	var num pgbin.Numeric
	if err := num.DecodeBinary(dt, src); err != nil {
		return err
	}
	if num.NaN {
		return errors.New("cannot decode NaN into decimal.Decimal")
	}

	*dst = Numeric{Decimal: decimal.NewFromBigInt(num.Int, num.Exp), Status: pgbin.Present}
	return nil
}

func (dst *Numeric) DecodeNull(dt *pgbin.Type) error {
	*dst = Numeric{Status: pgbin.Null}
	return nil
}
