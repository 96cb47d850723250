package generator

import (
	"randlab/domain/core"
)

// Normalize maps each raw term e to e/modulus, producing values in [0, 1).
// The modulus comes from Spec.Modulus and is guaranteed positive by
// validation; Normalize itself has no failure modes.
func Normalize(seq core.RawSequence, modulus int64) core.NormalizedSequence {
	out := make(core.NormalizedSequence, len(seq))
	for i, e := range seq {
		out[i] = float64(e) / float64(modulus)
	}
	return out
}
