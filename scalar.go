package ndview

import (
	"math"
	"math/big"
)

// Scalar is the constraint satisfied by every coordinate type the
// pipeline can operate on. It captures field-like arithmetic plus
// construction from small integers, so the same projection and
// determinant code runs unchanged over floating-point and exact
// rational coordinates.
//
// The constraint is self-referential: a type S satisfies Scalar[S]
// by implementing the methods on itself. Two implementations ship
// with the package, Float (float64) and Rat (math/big rationals).
type Scalar[T any] interface {
	// Add returns the sum of the receiver and x.
	Add(x T) T
	// Sub returns the difference of the receiver and x.
	Sub(x T) T
	// Mul returns the product of the receiver and x.
	Mul(x T) T
	// Div returns the quotient of the receiver and x.
	// Division by the additive identity is a caller contract
	// violation; see the package error-handling notes.
	Div(x T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Abs returns the absolute value of the receiver.
	Abs() T
	// Sqrt returns the square root of the receiver.
	// For Rat this is the one approximate operation.
	Sqrt() T
	// Cmp compares the receiver with x and returns -1, 0 or +1.
	Cmp(x T) int
	// FromInt constructs a value from a small integer.
	// The receiver is ignored; calling it on the zero value is fine.
	FromInt(n int) T
	// FromFloat constructs a value from a float64.
	// The receiver is ignored.
	FromFloat(f float64) T
	// Float64 converts to float64 for the terminal 2D stage.
	Float64() float64
}

// Float is the float64 coordinate type. It is the fast path: all
// operations compile down to plain machine arithmetic.
type Float float64

// Add returns f + x.
func (f Float) Add(x Float) Float { return f + x }

// Sub returns f - x.
func (f Float) Sub(x Float) Float { return f - x }

// Mul returns f * x.
func (f Float) Mul(x Float) Float { return f * x }

// Div returns f / x.
func (f Float) Div(x Float) Float { return f / x }

// Neg returns -f.
func (f Float) Neg() Float { return -f }

// Abs returns the absolute value of f.
func (f Float) Abs() Float { return Float(math.Abs(float64(f))) }

// Sqrt returns the square root of f.
func (f Float) Sqrt() Float { return Float(math.Sqrt(float64(f))) }

// Cmp compares f with x.
func (f Float) Cmp(x Float) int {
	switch {
	case f < x:
		return -1
	case f > x:
		return 1
	}
	return 0
}

// FromInt constructs a Float from an integer. The receiver is ignored.
func (Float) FromInt(n int) Float { return Float(n) }

// FromFloat constructs a Float from a float64. The receiver is ignored.
func (Float) FromFloat(f float64) Float { return Float(f) }

// Float64 returns f as a float64.
func (f Float) Float64() float64 { return float64(f) }

// Rat is an exact rational coordinate type backed by math/big.
// The zero value is 0. Operations never mutate their operands, so
// Rat values behave like plain value types despite the pointer
// inside; copies may be passed around freely.
type Rat struct {
	v *big.Rat
}

// NewRat returns the rational a/b.
func NewRat(a, b int64) Rat {
	return Rat{v: big.NewRat(a, b)}
}

// rat returns the underlying value, mapping the zero Rat to 0.
func (r Rat) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}
	return r.v
}

// Add returns r + x.
func (r Rat) Add(x Rat) Rat { return Rat{v: new(big.Rat).Add(r.rat(), x.rat())} }

// Sub returns r - x.
func (r Rat) Sub(x Rat) Rat { return Rat{v: new(big.Rat).Sub(r.rat(), x.rat())} }

// Mul returns r * x.
func (r Rat) Mul(x Rat) Rat { return Rat{v: new(big.Rat).Mul(r.rat(), x.rat())} }

// Div returns r / x. Division by zero panics, matching big.Rat.
func (r Rat) Div(x Rat) Rat { return Rat{v: new(big.Rat).Quo(r.rat(), x.rat())} }

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(r.rat())} }

// Abs returns the absolute value of r.
func (r Rat) Abs() Rat { return Rat{v: new(big.Rat).Abs(r.rat())} }

// Sqrt returns an approximation of the square root of r.
// This is the only Rat operation that is not exact: the root is
// computed at big.Float precision and converted back to a rational.
func (r Rat) Sqrt() Rat {
	f := new(big.Float).SetRat(r.rat())
	f.Sqrt(f)
	out, _ := f.Rat(nil)
	if out == nil {
		return Rat{}
	}
	return Rat{v: out}
}

// Cmp compares r with x.
func (r Rat) Cmp(x Rat) int { return r.rat().Cmp(x.rat()) }

// FromInt constructs a Rat from an integer. The receiver is ignored.
func (Rat) FromInt(n int) Rat { return Rat{v: big.NewRat(int64(n), 1)} }

// FromFloat constructs a Rat from a float64, exactly (every finite
// float64 is a rational). Non-finite input yields zero. The receiver
// is ignored.
func (Rat) FromFloat(f float64) Rat {
	v := new(big.Rat).SetFloat64(f)
	if v == nil {
		return Rat{}
	}
	return Rat{v: v}
}

// Float64 returns the nearest float64 to r.
func (r Rat) Float64() float64 {
	f, _ := r.rat().Float64()
	return f
}

// String returns the rational in a/b form.
func (r Rat) String() string { return r.rat().RatString() }
