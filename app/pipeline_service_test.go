package app

import (
	"context"
	"testing"

	"randlab/domain/core"
	"randlab/domain/generator"
	"randlab/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedSpec(t *testing.T) *config.RunSpec {
	t.Helper()
	spec, err := config.Parse([]byte(`{
		"parametros_generador": {
			"nombre": "mixed_congruential",
			"n": 99, "x0": 7, "a": 5, "c": 3, "m": 64
		},
		"metodo_distribucion": {
			"tipo": "tabla",
			"tabla_contingencia": {"A": 0.3, "B": 0.7}
		}
	}`))
	require.NoError(t, err)
	return spec
}

func TestPipelineRun(t *testing.T) {
	svc := NewPipelineService()
	result, err := svc.Run(context.Background(), mixedSpec(t))
	require.NoError(t, err)

	assert.False(t, core.ID(result.RunID).IsEmpty())
	assert.Equal(t, generator.KindMixed, result.GeneratorKind)
	assert.Len(t, result.Raw, 100) // seed included
	assert.Len(t, result.Normalized, 100)
	for _, v := range result.Normalized {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	assert.Equal(t, 9, result.Uniformity.DegreesOfFreedom)
	require.NotNil(t, result.Fit)
	require.NotEmpty(t, result.Samples)
	require.NotEmpty(t, result.Frequencies)
	require.NotNil(t, result.RawSummary)

	total := 0
	for _, f := range result.Frequencies {
		total += f.Count
	}
	assert.Equal(t, len(result.Samples), total)
}

func TestPipelineDeterministic(t *testing.T) {
	svc := NewPipelineService()

	first, err := svc.Run(context.Background(), mixedSpec(t))
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), mixedSpec(t))
	require.NoError(t, err)

	assert.Equal(t, first.Raw, second.Raw)
	assert.Equal(t, first.Normalized, second.Normalized)
	assert.Equal(t, first.Uniformity, second.Uniformity)
	// Table sample values are NaN; labels carry the identity
	assert.Equal(t, sampleLabels(first.Samples), sampleLabels(second.Samples))
}

func TestPipelineWithoutDistribution(t *testing.T) {
	spec, err := config.Parse([]byte(`{
		"parametros_generador": {"nombre": "fibonacci", "n": 50, "x0": 3, "x1": 5, "m": 97}
	}`))
	require.NoError(t, err)

	result, err := NewPipelineService().Run(context.Background(), spec)
	require.NoError(t, err)

	assert.Len(t, result.Raw, 50) // both seeds dropped
	assert.Nil(t, result.Fit)
	assert.Empty(t, result.Samples)
}

func TestPipelineSkipsFitForDensityCurves(t *testing.T) {
	spec, err := config.Parse([]byte(`{
		"parametros_generador": {
			"nombre": "mixed_congruential",
			"n": 99, "x0": 7, "a": 5, "c": 3, "m": 64
		},
		"metodo_distribucion": {"tipo": "normal", "mu": 0, "sigma": 1}
	}`))
	require.NoError(t, err)

	result, err := NewPipelineService().Run(context.Background(), spec)
	require.NoError(t, err)

	// Without discretization the theoretical view is a density curve, whose
	// point labels never match sample labels; a chi-square against it would
	// reject correctly distributed data.
	require.NotEmpty(t, result.Samples)
	assert.Len(t, result.Theoretical, 100)
	assert.Nil(t, result.Fit)
}

func TestPipelineFitsDiscretizedNormal(t *testing.T) {
	spec, err := config.Parse([]byte(`{
		"parametros_generador": {
			"nombre": "mixed_congruential",
			"n": 99, "x0": 7, "a": 5, "c": 3, "m": 64
		},
		"metodo_distribucion": {"tipo": "normal", "mu": 0, "sigma": 1, "classes": 6}
	}`))
	require.NoError(t, err)

	result, err := NewPipelineService().Run(context.Background(), spec)
	require.NoError(t, err)

	require.NotNil(t, result.Fit)
	assert.GreaterOrEqual(t, result.Fit.DegreesOfFreedom, 0)
}

func TestPipelineSurfacesValidationErrors(t *testing.T) {
	spec, err := config.Parse([]byte(`{
		"parametros_generador": {"nombre": "fibonacci", "n": 5, "x0": 3, "x1": 200, "m": 97}
	}`))
	require.NoError(t, err)

	_, err = NewPipelineService().Run(context.Background(), spec)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestRunBatch(t *testing.T) {
	svc := NewPipelineService()
	specs := []*config.RunSpec{mixedSpec(t), mixedSpec(t), mixedSpec(t)}

	results, err := svc.RunBatch(context.Background(), specs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Identical specs across goroutines yield identical sequences
	for _, r := range results[1:] {
		assert.Equal(t, results[0].Raw, r.Raw)
	}
	// But every run keeps its own identity
	assert.NotEqual(t, results[0].RunID, results[1].RunID)
}

func TestRunBatchPropagatesFailure(t *testing.T) {
	bad, err := config.Parse([]byte(`{"parametros_generador": {"nombre": "no such generator"}}`))
	require.NoError(t, err)

	_, err = NewPipelineService().RunBatch(context.Background(), []*config.RunSpec{mixedSpec(t), bad})
	assert.ErrorIs(t, err, core.ErrUnknownVariant)
}
