package flow

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Money stores an amount in cents.
type Money int64

// MaxAmount is the largest amount a single transaction may carry.
const MaxAmount Money = 1_000_000_000_000 * 100

// maxFloatUnits keeps v*100 below math.MaxInt64 so the float conversion is defined.
const maxFloatUnits = 9.2e16

var errMoneyRange = errors.New("flow: money out of range")

// FromFloat converts a currency-unit amount to Money, rounding to the nearest
// cent. NaN becomes zero and out-of-range values saturate; use ParseMoney to
// reject them instead.
func FromFloat(v float64) Money {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= maxFloatUnits:
		return Money(math.MaxInt64)
	case v <= -maxFloatUnits:
		return Money(math.MinInt64)
	}
	return Money(math.Round(v * 100))
}

// ParseMoney converts a currency-unit amount, rejecting NaN, infinities and
// values whose cents do not fit in an int64.
func ParseMoney(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= maxFloatUnits {
		return 0, fmt.Errorf("%w: %v", errMoneyRange, v)
	}
	return Money(math.Round(v * 100)), nil
}

// ValidAmount reports whether m may be recorded as a transaction amount.
func ValidAmount(m Money) bool {
	return m > 0 && m <= MaxAmount
}

// Float64 returns the amount in currency units.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// Cents returns the raw cent value.
func (m Money) Cents() int64 {
	return int64(m)
}

// Neg returns the negated amount.
func (m Money) Neg() Money {
	return -m
}

// String formats the amount with two decimals.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a plain number of currency units.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Float64(), 'f', -1, 64)), nil
}

// UnmarshalJSON decodes a number of currency units.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("flow: decode money %q: %w", data, err)
	}
	parsed, err := ParseMoney(v)
	if err != nil {
		return fmt.Errorf("flow: decode money %q: %w", data, err)
	}
	*m = parsed
	return nil
}

// share returns percent% of m, rounding half away from zero so that
// share(-m, p) == -share(m, p).
func share(m Money, percent int64) Money {
	if m > math.MaxInt64/100 || m < math.MinInt64/100 {
		return shareBig(m, percent)
	}
	r := int64(m) * percent
	q := r / 100
	rem := r % 100
	if rem < 0 {
		rem = -rem
	}
	if rem*2 >= 100 {
		if r < 0 {
			q--
		} else {
			q++
		}
	}
	return Money(q)
}

// shareBig is share for amounts whose product with percent overflows int64.
// The result saturates when percent exceeds 100 and the quotient cannot fit.
func shareBig(m Money, percent int64) Money {
	r := new(big.Int).Mul(big.NewInt(int64(m)), big.NewInt(percent))
	q, rem := new(big.Int).QuoRem(r, big.NewInt(100), new(big.Int))
	if new(big.Int).Abs(rem).Int64()*2 >= 100 {
		q.Add(q, big.NewInt(int64(r.Sign())))
	}
	switch {
	case q.IsInt64():
		return Money(q.Int64())
	case q.Sign() > 0:
		return Money(math.MaxInt64)
	default:
		return Money(math.MinInt64)
	}
}
