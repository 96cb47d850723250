// Package config loads the JSON run specification that drives the pipeline.
// Field names follow the reference configuration files
// (parametros_generador, metodo_distribucion, tabla_contingencia), so
// existing course material keeps working unchanged.
package config

import (
	"encoding/json"
	"os"
	"strings"

	"randlab/domain/core"
	"randlab/domain/distribution"
	"randlab/domain/generator"
	"randlab/internal/errors"
)

// RunSpec is one pipeline run as described by a JSON document
type RunSpec struct {
	Generator GeneratorParams `json:"parametros_generador"`
	Method    *MethodParams   `json:"metodo_distribucion,omitempty"`
	// Top-level contingency table, the shape used by the artificial-sample
	// configs. When Method is absent but this table is present, the run
	// defaults to table sampling.
	Table OrderedTable `json:"tabla_contingencia,omitempty"`
	// Bins overrides the uniformity test interval count; zero means the
	// default of 10.
	Bins int `json:"intervalos,omitempty"`
}

// GeneratorParams mirrors parametros_generador. Only the fields relevant to
// the named algorithm are read; the rest stay zero.
type GeneratorParams struct {
	Nombre string `json:"nombre"`
	N      int    `json:"n"`
	D      int    `json:"d"`
	X0     int64  `json:"x0"`
	X1     int64  `json:"x1"`
	X2     int64  `json:"x2"`
	A      int64  `json:"a"`
	C      int64  `json:"c"`
	M      int64  `json:"m"`
}

// MethodParams mirrors metodo_distribucion
type MethodParams struct {
	Tipo    string       `json:"tipo"`
	N       int          `json:"n"`
	P       float64      `json:"p"`
	Lambda  float64      `json:"lambda"`
	Mu      float64      `json:"mu"`
	Sigma   float64      `json:"sigma"`
	Step    float64      `json:"step"`
	Min     float64      `json:"min"`
	Max     float64      `json:"max"`
	Classes int          `json:"classes"`
	Table   OrderedTable `json:"tabla_contingencia,omitempty"`
}

// Load reads and parses a run spec from a JSON file
func Load(path string) (*RunSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read run spec %s", path)
	}
	return Parse(data)
}

// Parse parses a run spec from JSON bytes
func Parse(data []byte) (*RunSpec, error) {
	spec := &RunSpec{}
	if err := json.Unmarshal(data, spec); err != nil {
		return nil, errors.Wrap(err, "failed to parse run spec")
	}
	if spec.Generator.Nombre == "" {
		return nil, errors.ConfigInvalid("parametros_generador.nombre is required")
	}
	return spec, nil
}

// GeneratorSpec maps the nombre discriminator onto the closed generator
// variant set. Both the reference's mixed Spanish/English names and
// snake_case aliases are accepted.
func (r *RunSpec) GeneratorSpec() (generator.Spec, error) {
	g := r.Generator
	switch canonical(g.Nombre) {
	case "von neumann", "mid square", "cuadrados medios":
		return generator.MidSquare{N: g.N, D: g.D, X1: g.X1}, nil
	case "mid product", "productos medios":
		return generator.MidProduct{N: g.N, D: g.D, X1: g.X1, X2: g.X2}, nil
	case "fibonacci":
		return generator.Fibonacci{N: g.N, X0: g.X0, X1: g.X1, M: g.M}, nil
	case "mixed congruential", "congruencial mixto":
		return generator.MixedCongruential{N: g.N, X0: g.X0, A: g.A, C: g.C, M: g.M}, nil
	case "additive congruential", "congruencial aditivo":
		return generator.AdditiveCongruential{N: g.N, X0: g.X0, C: g.C, M: g.M}, nil
	case "multiplicative congruential", "congruencial multiplicativo":
		return generator.MultiplicativeCongruential{N: g.N, X0: g.X0, A: g.A, M: g.M}, nil
	default:
		return nil, core.NewUnknownVariantError("generator", g.Nombre)
	}
}

// Sampler maps the tipo discriminator onto a distribution sampler, or
// returns (nil, nil) when the run configures no distribution stage.
func (r *RunSpec) Sampler() (distribution.Sampler, error) {
	m := r.Method
	if m == nil {
		if len(r.Table) == 0 {
			return nil, nil
		}
		return distribution.NewTable(r.Table.Probs())
	}

	switch canonical(m.Tipo) {
	case "tabla", "table":
		table := m.Table
		if len(table) == 0 {
			table = r.Table
		}
		return distribution.NewTable(table.Probs())
	case "binomial":
		return distribution.NewBinomial(m.N, m.P)
	case "poisson":
		return distribution.NewPoisson(m.Lambda)
	case "exponencial", "exponential":
		return distribution.NewExponential(m.Lambda, distribution.ExponentialOptions{
			Step: m.Step,
			Min:  m.Min,
			Max:  m.Max,
		})
	case "normal":
		return distribution.NewNormal(m.Mu, m.Sigma, distribution.NormalOptions{
			Classes:  m.Classes,
			ClassMin: m.Min,
			ClassMax: m.Max,
		})
	default:
		return nil, core.NewUnknownVariantError("distribution", m.Tipo)
	}
}

// UniformBins returns the configured interval count or the default
func (r *RunSpec) UniformBins() int {
	if r.Bins > 0 {
		return r.Bins
	}
	return 10
}

// canonical lowercases a discriminator and collapses separators so that
// "Mixed Congruential", "mixed_congruential" and "MIXED-CONGRUENTIAL" all
// match the same case.
func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.Join(strings.Fields(name), " ")
}
