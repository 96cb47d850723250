package generator

import (
	"randlab/domain/core"
)

// Kind discriminates the closed set of generator algorithms
type Kind string

const (
	KindMidSquare      Kind = "mid_square"
	KindMidProduct     Kind = "mid_product"
	KindFibonacci      Kind = "fibonacci"
	KindMixed          Kind = "mixed_congruential"
	KindAdditive       Kind = "additive_congruential"
	KindMultiplicative Kind = "multiplicative_congruential"
)

// Spec is a validated parameterization for one generator algorithm.
// The set of implementations is closed: Generate matches exhaustively and
// adding a variant is a compile-time extension point.
type Spec interface {
	Kind() Kind
	// Modulus returns the divisor used to normalize the raw sequence into
	// [0, 1). Digit-based variants normalize by 10^d, the rest by m.
	Modulus() int64
	Validate() error
}

// MidSquare is von Neumann's middle-square method: each term is the centered
// d digits of the previous term squared. The seed and the first generated
// term are both dropped from the output.
type MidSquare struct {
	N  int   // number of recurrence steps
	D  int   // digits per term
	X1 int64 // seed, exactly D digits
}

func (s MidSquare) Kind() Kind { return KindMidSquare }

func (s MidSquare) Modulus() int64 { return pow10(s.D) }

func (s MidSquare) Validate() error {
	if s.D < 1 {
		return core.NewParameterError("d", "must be positive")
	}
	if digitCount(s.X1) != s.D {
		return core.NewDigitMismatchError("x1", s.X1, s.D)
	}
	return nil
}

// MidProduct seeds with two d-digit values and extracts the centered d digits
// of their product, shifting the pair each step. Both seeds are included in
// the output.
type MidProduct struct {
	N  int
	D  int
	X1 int64
	X2 int64
}

func (s MidProduct) Kind() Kind { return KindMidProduct }

func (s MidProduct) Modulus() int64 { return pow10(s.D) }

func (s MidProduct) Validate() error {
	if s.D < 1 {
		return core.NewParameterError("d", "must be positive")
	}
	if digitCount(s.X1) != s.D {
		return core.NewDigitMismatchError("x1", s.X1, s.D)
	}
	if digitCount(s.X2) != s.D {
		return core.NewDigitMismatchError("x2", s.X2, s.D)
	}
	return nil
}

// Fibonacci is the additive lagged recurrence x_{i+1} = (x_{i-1} + x_i) mod m.
// Both seeds are dropped from the output.
type Fibonacci struct {
	N  int
	X0 int64
	X1 int64
	M  int64
}

func (s Fibonacci) Kind() Kind { return KindFibonacci }

func (s Fibonacci) Modulus() int64 { return s.M }

func (s Fibonacci) Validate() error {
	if s.X0 <= 0 || s.X1 <= 0 {
		return core.NewParameterError("x0, x1", "must be positive")
	}
	if s.M <= s.X0 || s.M <= s.X1 {
		return core.NewParameterError("m", "must be greater than x0 and x1")
	}
	return nil
}

// MixedCongruential is x_{i+1} = (a*x_i + c) mod m. The seed is included in
// the output, so n steps yield n+1 terms.
type MixedCongruential struct {
	N  int
	X0 int64
	A  int64
	C  int64
	M  int64
}

func (s MixedCongruential) Kind() Kind { return KindMixed }

func (s MixedCongruential) Modulus() int64 { return s.M }

func (s MixedCongruential) Validate() error {
	if s.X0 <= 0 || s.A <= 0 || s.C <= 0 {
		return core.NewParameterError("x0, a, c", "must be positive")
	}
	if s.M <= s.X0 || s.M <= s.A || s.M <= s.C {
		return core.NewParameterError("m", "must be greater than x0, a, and c")
	}
	return nil
}

// AdditiveCongruential is x_{i+1} = (x_i + c) mod m. The seed is excluded
// from the output.
type AdditiveCongruential struct {
	N  int
	X0 int64
	C  int64
	M  int64
}

func (s AdditiveCongruential) Kind() Kind { return KindAdditive }

func (s AdditiveCongruential) Modulus() int64 { return s.M }

func (s AdditiveCongruential) Validate() error {
	if s.X0 <= 0 || s.C <= 0 {
		return core.NewParameterError("x0, c", "must be positive")
	}
	if s.M <= s.X0 || s.M <= s.C {
		return core.NewParameterError("m", "must be greater than x0 and c")
	}
	return nil
}

// MultiplicativeCongruential is x_{i+1} = (a*x_i) mod m. The seed is excluded
// from the output.
type MultiplicativeCongruential struct {
	N  int
	X0 int64
	A  int64
	M  int64
}

func (s MultiplicativeCongruential) Kind() Kind { return KindMultiplicative }

func (s MultiplicativeCongruential) Modulus() int64 { return s.M }

func (s MultiplicativeCongruential) Validate() error {
	if s.X0 <= 0 || s.A <= 0 {
		return core.NewParameterError("x0, a", "must be positive")
	}
	if s.M <= s.X0 || s.M <= s.A {
		return core.NewParameterError("m", "must be greater than x0 and a")
	}
	return nil
}
