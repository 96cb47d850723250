package generator

import (
	"testing"

	"randlab/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMixedCongruential(t *testing.T) {
	seq, err := Generate(MixedCongruential{N: 5, X0: 7, A: 5, C: 3, M: 16})
	require.NoError(t, err)

	// Seed included: n steps produce n+1 terms
	assert.Equal(t, core.RawSequence{7, 6, 1, 8, 11, 10}, seq)
}

func TestGenerateMixedCongruentialRecurrence(t *testing.T) {
	spec := MixedCongruential{N: 50, X0: 9, A: 13, C: 7, M: 97}
	seq, err := Generate(spec)
	require.NoError(t, err)
	require.Len(t, seq, spec.N+1)

	for i := 1; i < len(seq); i++ {
		assert.Equal(t, (spec.A*seq[i-1]+spec.C)%spec.M, seq[i], "term %d", i)
	}
}

func TestGenerateAdditiveCongruential(t *testing.T) {
	spec := AdditiveCongruential{N: 8, X0: 5, C: 3, M: 11}
	seq, err := Generate(spec)
	require.NoError(t, err)

	// Seed excluded: exactly n terms
	require.Len(t, seq, spec.N)
	assert.Equal(t, int64((spec.X0+spec.C)%spec.M), seq[0])
	for i := 1; i < len(seq); i++ {
		assert.Equal(t, (seq[i-1]+spec.C)%spec.M, seq[i])
	}
}

func TestGenerateMultiplicativeCongruential(t *testing.T) {
	spec := MultiplicativeCongruential{N: 8, X0: 5, A: 3, M: 17}
	seq, err := Generate(spec)
	require.NoError(t, err)

	require.Len(t, seq, spec.N)
	assert.Equal(t, int64((spec.A*spec.X0)%spec.M), seq[0])
	for i := 1; i < len(seq); i++ {
		assert.Equal(t, (spec.A*seq[i-1])%spec.M, seq[i])
	}
}

func TestGenerateFibonacci(t *testing.T) {
	spec := Fibonacci{N: 6, X0: 3, X1: 5, M: 16}
	seq, err := Generate(spec)
	require.NoError(t, err)

	// Both seeds dropped: n terms, first term is (x0+x1) mod m
	require.Len(t, seq, spec.N)
	assert.Equal(t, int64(8), seq[0])
	assert.Equal(t, int64(13), seq[1])
	assert.Equal(t, int64(5), seq[2]) // (8+13) mod 16
}

func TestGenerateMidSquare(t *testing.T) {
	// 12^2=144 -> pad "0144" -> middle "14"; 14^2=196 -> "0196" -> "19";
	// 19^2=361 -> "0361" -> "36"; 36^2=1296 -> "29"
	spec := MidSquare{N: 4, D: 2, X1: 12}
	seq, err := Generate(spec)
	require.NoError(t, err)

	// Seed and first generated term dropped: n-1 terms remain
	assert.Equal(t, core.RawSequence{19, 36, 29}, seq)
}

func TestGenerateMidProduct(t *testing.T) {
	// 12*34=408 -> "0408" -> "40"; 34*40=1360 -> "36"; 40*36=1440 -> "44"
	spec := MidProduct{N: 3, D: 2, X1: 12, X2: 34}
	seq, err := Generate(spec)
	require.NoError(t, err)

	// Both seeds kept: n+2 terms
	assert.Equal(t, core.RawSequence{12, 34, 40, 36, 44}, seq)
}

func TestGenerateDeterministic(t *testing.T) {
	spec := MixedCongruential{N: 20, X0: 7, A: 5, C: 3, M: 64}

	first, err := Generate(spec)
	require.NoError(t, err)
	second, err := Generate(spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"mixed zero seed", MixedCongruential{N: 5, X0: 0, A: 5, C: 3, M: 16}, core.ErrInvalidParameter},
		{"mixed modulus below multiplier", MixedCongruential{N: 5, X0: 7, A: 20, C: 3, M: 16}, core.ErrInvalidParameter},
		{"additive zero constant", AdditiveCongruential{N: 5, X0: 3, C: 0, M: 16}, core.ErrInvalidParameter},
		{"multiplicative modulus below seed", MultiplicativeCongruential{N: 5, X0: 20, A: 3, M: 16}, core.ErrInvalidParameter},
		{"fibonacci negative seed", Fibonacci{N: 5, X0: -1, X1: 2, M: 16}, core.ErrInvalidParameter},
		{"fibonacci modulus not dominant", Fibonacci{N: 5, X0: 3, X1: 17, M: 16}, core.ErrInvalidParameter},
		{"mid-square digit mismatch", MidSquare{N: 5, D: 4, X1: 123}, core.ErrDigitMismatch},
		{"mid-product second seed mismatch", MidProduct{N: 5, D: 2, X1: 12, X2: 345}, core.ErrDigitMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.spec)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExtractMiddle(t *testing.T) {
	tests := []struct {
		name    string
		v       int64
		d       int
		want    int64
		wantErr bool
	}{
		{"even length matching parity", 1234, 2, 23, false},
		{"odd rendering padded for even d", 144, 2, 14, false},
		{"odd d odd rendering", 12345, 3, 234, false},
		{"window is whole rendering", 42, 2, 42, false},
		{"too few digits", 7, 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractMiddle(tt.v, tt.d)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInsufficientDigits)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	seq := core.RawSequence{0, 4, 8, 15}
	norm := Normalize(seq, 16)

	require.Len(t, norm, len(seq))
	assert.Equal(t, core.NormalizedSequence{0, 0.25, 0.5, 0.9375}, norm)
	for _, v := range norm {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestModulusBinding(t *testing.T) {
	assert.Equal(t, int64(100), MidSquare{D: 2, X1: 12}.Modulus())
	assert.Equal(t, int64(10000), MidProduct{D: 4, X1: 1234, X2: 5678}.Modulus())
	assert.Equal(t, int64(31), MixedCongruential{M: 31}.Modulus())
	assert.Equal(t, int64(31), Fibonacci{M: 31}.Modulus())
}
