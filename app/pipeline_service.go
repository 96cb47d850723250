// Package app orchestrates the generation and validation pipeline: generator
// parameters in, raw sequence, uniforms, chi-square results, domain samples
// and frequencies out. All formatting and I/O stays in the reporting layer.
package app

import (
	"context"
	"time"

	"randlab/domain/core"
	"randlab/domain/distribution"
	"randlab/domain/generator"
	"randlab/domain/stats"
	"randlab/internal/analysis"
	"randlab/internal/config"
	"randlab/internal/errors"
)

// RunResult is the complete output of one pipeline run
type RunResult struct {
	RunID          core.RunID              `json:"run_id"`
	GeneratorKind  generator.Kind          `json:"generator"`
	Raw            core.RawSequence        `json:"raw_sequence"`
	Normalized     core.NormalizedSequence `json:"normalized_sequence"`
	UniformityBins int                     `json:"uniformity_bins"`
	Uniformity     stats.ChiSquareResult   `json:"uniformity"`
	Samples        []distribution.Sample   `json:"samples,omitempty"`
	Frequencies    []stats.Frequency       `json:"frequencies,omitempty"`
	Theoretical    distribution.ProbTable  `json:"theoretical_probabilities,omitempty"`
	Fit            *stats.ChiSquareResult  `json:"distribution_fit,omitempty"`
	RawSummary     *stats.Summary          `json:"raw_summary,omitempty"`
	SampleSummary  *stats.Summary          `json:"sample_summary,omitempty"`
	RuntimeMs      int64                   `json:"runtime_ms"`
}

// PipelineService executes run specs. It is stateless: every run is a pure
// function of its spec, so concurrent runs need no locking.
type PipelineService struct{}

// NewPipelineService creates a pipeline service
func NewPipelineService() *PipelineService {
	return &PipelineService{}
}

// Run executes one spec: generate → normalize → uniformity test, then, when
// a distribution is configured, sample → count frequencies → fit test.
func (s *PipelineService) Run(ctx context.Context, spec *config.RunSpec) (*RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	genSpec, err := spec.GeneratorSpec()
	if err != nil {
		return nil, err
	}

	raw, err := generator.Generate(genSpec)
	if err != nil {
		return nil, err
	}
	normalized := generator.Normalize(raw, genSpec.Modulus())

	uniformity, err := analysis.TestUniform(normalized, spec.UniformBins())
	if err != nil {
		return nil, errors.Wrap(err, "uniformity test failed")
	}

	result := &RunResult{
		RunID:          core.NewRunID(),
		GeneratorKind:  genSpec.Kind(),
		Raw:            raw,
		Normalized:     normalized,
		UniformityBins: spec.UniformBins(),
		Uniformity:     uniformity,
	}
	if summary, ok := analysis.Summarize(rawFloats(raw)); ok {
		result.RawSummary = &summary
	}

	sampler, err := spec.Sampler()
	if err != nil {
		return nil, err
	}
	if sampler != nil {
		s.runDistributionStage(result, sampler, normalized)
	}

	result.RuntimeMs = time.Since(start).Milliseconds()
	return result, nil
}

func (s *PipelineService) runDistributionStage(result *RunResult, sampler distribution.Sampler, uniforms core.NormalizedSequence) {
	samples := sampler.Generate(uniforms)
	result.Samples = samples
	result.Theoretical = sampler.TheoreticalProbabilities()
	result.Frequencies = countFrequencies(samples)

	if summary, ok := analysis.Summarize(sampleValues(samples)); ok {
		result.SampleSummary = &summary
	}

	// Fit only against true mass tables; density curves stay a plotting aid
	masses := sampler.FitProbabilities()
	if len(samples) > 0 && len(masses) > 0 {
		fit, err := analysis.TestDistribution(sampleLabels(samples), masses.Map())
		if err == nil {
			result.Fit = &fit
		}
	}
}

// countFrequencies tallies samples per label in first-appearance order
func countFrequencies(samples []distribution.Sample) []stats.Frequency {
	index := make(map[string]int, len(samples))
	freqs := make([]stats.Frequency, 0)
	for _, s := range samples {
		if i, ok := index[s.Label]; ok {
			freqs[i].Count++
			continue
		}
		index[s.Label] = len(freqs)
		freqs = append(freqs, stats.Frequency{Label: s.Label, Count: 1})
	}
	return freqs
}

func sampleLabels(samples []distribution.Sample) []string {
	labels := make([]string, len(samples))
	for i, s := range samples {
		labels[i] = s.Label
	}
	return labels
}

func sampleValues(samples []distribution.Sample) []float64 {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	return values
}

func rawFloats(seq core.RawSequence) []float64 {
	values := make([]float64, len(seq))
	for i, v := range seq {
		values[i] = float64(v)
	}
	return values
}
