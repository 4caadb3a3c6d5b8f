// SPDX-License-Identifier: MIT

// Package scalar - exact rational values used as matrix entries.
//
// Purpose:
//   - Provide an immutable exact number with the four arithmetic operators.
//   - Make the zero test exact: no epsilon, no signed zero, no rounding drift.
//   - Keep display rounding (FloatString) separate from the stored value.
//
// Representation:
//   - A Scalar wraps a *big.Rat that is never shared and never mutated after
//     construction. The zero value (nil rat) is the canonical zero.
//   - Every operation allocates its result; operands are read-only.
//
// Complexity quicksheet:
//   - Add/Sub/Mul/Quo: O(b^2) in the bit length of numerators/denominators
//     (math/big schoolbook/Karatsuba), plus normalization by gcd.
package scalar

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

var (
	// ErrDivisionByZero is returned by Quo and NewFrac on a zero divisor.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrSyntax is returned by Parse when the text is not a number.
	ErrSyntax = errors.New("scalar: invalid number syntax")

	// ErrNotFinite is returned by FromFloat64 for NaN or ±Inf.
	ErrNotFinite = errors.New("scalar: NaN or Inf has no exact value")
)

// Scalar is an exact rational number. The zero value is 0.
type Scalar struct {
	r *big.Rat // nil means canonical zero; never mutated once set
}

// Zero and One are the neutral elements.
var (
	Zero = Scalar{}
	One  = New(1)
)

// wrap takes ownership of r. Zero values collapse to the canonical zero.
func wrap(r *big.Rat) Scalar {
	if r == nil || r.Sign() == 0 {
		return Scalar{}
	}

	return Scalar{r: r}
}

// rat returns a read-only view; callers must not mutate the result.
func (s Scalar) rat() *big.Rat {
	if s.r == nil {
		return new(big.Rat)
	}

	return s.r
}

// New returns the integer v.
func New(v int64) Scalar {
	return wrap(new(big.Rat).SetInt64(v))
}

// NewFrac returns num/den in lowest terms.
// Errors: ErrDivisionByZero when den == 0.
func NewFrac(num, den int64) (Scalar, error) {
	if den == 0 {
		return Scalar{}, fmt.Errorf("NewFrac(%d/%d): %w", num, den, ErrDivisionByZero)
	}

	return wrap(big.NewRat(num, den)), nil
}

// FromRat returns a Scalar holding a private copy of r; nil yields 0.
func FromRat(r *big.Rat) Scalar {
	if r == nil {
		return Scalar{}
	}

	return wrap(new(big.Rat).Set(r))
}

// FromFloat64 converts f exactly (every finite float64 is a dyadic rational).
func FromFloat64(f float64) (Scalar, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Scalar{}, fmt.Errorf("FromFloat64(%v): %w", f, ErrNotFinite)
	}

	return wrap(new(big.Rat).SetFloat64(f)), nil
}

// Parse reads integers ("-7"), decimals ("1.25", "2e-3") and fractions ("3/4").
// Surrounding whitespace is ignored.
func Parse(text string) (Scalar, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Scalar{}, fmt.Errorf("Parse(%q): %w", text, ErrSyntax)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Scalar{}, fmt.Errorf("Parse(%q): %w", text, ErrSyntax)
	}

	return wrap(r), nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(text string) Scalar {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return s
}

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	if s.r == nil {
		return t
	}
	if t.r == nil {
		return s
	}

	return wrap(new(big.Rat).Add(s.r, t.r))
}

// Sub returns s - t.
func (s Scalar) Sub(t Scalar) Scalar {
	if t.r == nil {
		return s
	}

	return wrap(new(big.Rat).Sub(s.rat(), t.r))
}

// Mul returns s * t.
func (s Scalar) Mul(t Scalar) Scalar {
	if s.r == nil || t.r == nil {
		return Scalar{}
	}

	return wrap(new(big.Rat).Mul(s.r, t.r))
}

// Quo returns s / t.
// Errors: ErrDivisionByZero when t is zero; s is never modified.
func (s Scalar) Quo(t Scalar) (Scalar, error) {
	if t.r == nil {
		return Scalar{}, fmt.Errorf("Quo(%s/0): %w", s, ErrDivisionByZero)
	}
	if s.r == nil {
		return Scalar{}, nil
	}

	return wrap(new(big.Rat).Quo(s.r, t.r)), nil
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	if s.r == nil {
		return Scalar{}
	}

	return wrap(new(big.Rat).Neg(s.r))
}

// IsZero reports whether s == 0 exactly.
func (s Scalar) IsZero() bool { return s.r == nil || s.r.Sign() == 0 }

// Sign returns -1, 0 or +1.
func (s Scalar) Sign() int {
	if s.r == nil {
		return 0
	}

	return s.r.Sign()
}

// Cmp compares s and t and returns -1, 0 or +1.
func (s Scalar) Cmp(t Scalar) int { return s.rat().Cmp(t.rat()) }

// Equal reports exact numeric equality.
func (s Scalar) Equal(t Scalar) bool { return s.Cmp(t) == 0 }

// IsInt reports whether the denominator is 1.
func (s Scalar) IsInt() bool { return s.r == nil || s.r.IsInt() }

// Normalize returns the canonical representation of s. A value that is zero
// is returned as the zero Scalar regardless of how it was produced.
func (s Scalar) Normalize() Scalar {
	if s.IsZero() {
		return Scalar{}
	}

	return s
}

// Rat returns a copy of the underlying rational.
func (s Scalar) Rat() *big.Rat { return new(big.Rat).Set(s.rat()) }

// Float64 returns the nearest float64 and whether it is exact.
func (s Scalar) Float64() (float64, bool) { return s.rat().Float64() }

// String renders the exact value: "2", "-3/4".
func (s Scalar) String() string { return s.rat().RatString() }

// FloatString renders s rounded to prec decimal places (half away from zero).
// Trailing fractional zeros are trimmed and a rounded negative zero prints as
// "0". Display only: the stored value is unaffected.
func (s Scalar) FloatString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	out := s.rat().FloatString(prec)
	if prec > 0 {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	if out == "-0" {
		return "0"
	}

	return out
}
