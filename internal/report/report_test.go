package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"randlab/app"
	"randlab/internal/config"
	"randlab/internal/errors"
	"randlab/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(t *testing.T) *app.RunResult {
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

	result, err := app.NewPipelineService().Run(context.Background(), spec)
	require.NoError(t, err)
	return result
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult(t)

	require.NoError(t, NewTextReporter(&buf).Report(result))

	out := buf.String()
	assert.Contains(t, out, result.RunID.String())
	assert.Contains(t, out, "mixed_congruential")
	assert.Contains(t, out, "uniformity (k=10)")
	assert.Contains(t, out, "distribution fit")
	assert.Contains(t, out, "df=9")
}

func TestTextReportTruncatesLongSequences(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult(t) // 100 raw terms, preview caps at 50

	require.NoError(t, NewTextReporter(&buf).Report(result))
	assert.Contains(t, buf.String(), "…")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult(t)

	require.NoError(t, Render([]ports.Reporter{NewTextReporter(&buf)}, result))
	assert.NotEmpty(t, buf.String())
}

func TestRenderWrapsReporterFailure(t *testing.T) {
	result := sampleResult(t)
	// SaveAs on a nonexistent directory fails
	bad := NewExcelReporter(filepath.Join(t.TempDir(), "missing", "report.xlsx"))

	err := Render([]ports.Reporter{bad}, result)
	require.Error(t, err)
	assert.Equal(t, errors.CodeReportFailed, errors.GetCode(err))
}

func TestExcelReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	result := sampleResult(t)

	require.NoError(t, NewExcelReporter(path).Report(result))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
