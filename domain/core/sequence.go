package core

// RawSequence is an ordered sequence of non-negative integers produced by a
// generator. Length depends on the generator variant: some variants include
// their seed terms, some drop them. Callers must not assume uniform length
// semantics across variants.
type RawSequence []int64

// NormalizedSequence is an ordered sequence of floats in [0, 1), aligned
// element-for-element with the RawSequence it was derived from.
type NormalizedSequence []float64

// Len returns the number of terms
func (s RawSequence) Len() int { return len(s) }

// Len returns the number of values
func (s NormalizedSequence) Len() int { return len(s) }
