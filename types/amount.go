package types

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DisplayDecimals is the number of fractional digits of the native currency.
	DisplayDecimals = 7

	// StroopsPerUnit is the number of stroops in one display unit.
	StroopsPerUnit int64 = 10_000_000

	// RoyaltyPercent is the secondary-market royalty shown to buyers. It is computed client side
	// for display only.
	RoyaltyPercent int64 = 5
)

var (
	stroopsPerUnit = big.NewInt(StroopsPerUnit)
	half           = decimal.New(5, -1)

	// ErrNegativeAmount is returned when a negative amount is given where only non-negative
	// amounts make sense (prices, rates).
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// ToStroops converts a decimal display amount (e.g. "10.5") to stroops.
//
// Digits beyond the 7th decimal place are rounded half-up, so "0.00000005" becomes 1 stroop
// and "-0.00000005" becomes 0.
func ToStroops(display string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(display))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", display, err)
	}

	return DecimalToStroops(d), nil
}

// ToStroopsNonNegative is ToStroops for contexts that disallow negative amounts.
func ToStroopsNonNegative(display string) (*big.Int, error) {
	v, err := ToStroops(display)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeAmount, display)
	}

	return v, nil
}

// DecimalToStroops converts a decimal display amount to stroops using round-half-up.
func DecimalToStroops(d decimal.Decimal) *big.Int {
	return d.Shift(DisplayDecimals).Add(half).Floor().BigInt()
}

// FormatStroops renders a stroop amount as a display amount with exactly 7 fractional digits.
//
// Only integer arithmetic is used. A nil value formats as zero.
func FormatStroops(v *big.Int) string {
	if v == nil {
		v = new(big.Int)
	}

	abs := new(big.Int).Abs(v)
	quo, rem := new(big.Int).QuoRem(abs, stroopsPerUnit, new(big.Int))

	frac := rem.String()
	if pad := DisplayDecimals - len(frac); pad > 0 {
		frac = strings.Repeat("0", pad) + frac
	}

	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}

	return sign + quo.String() + "." + frac
}

// TotalPrice returns rate * hours without any intermediate rounding or overflow.
func TotalPrice(rate *big.Int, hours uint32) *big.Int {
	if rate == nil {
		return new(big.Int)
	}

	return new(big.Int).Mul(rate, new(big.Int).SetUint64(uint64(hours)))
}

// RoyaltyStroops returns the royalty owed to the original seller for a resale price, truncated
// to whole stroops.
func RoyaltyStroops(price *big.Int) *big.Int {
	if price == nil {
		return new(big.Int)
	}

	r := new(big.Int).Mul(price, big.NewInt(RoyaltyPercent))

	return r.Quo(r, big.NewInt(100))
}
