package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"randlab/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *App {
	return NewApp(app.NewPipelineService())
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(newTestApp().Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateRun(t *testing.T) {
	srv := httptest.NewServer(newTestApp().Router())
	defer srv.Close()

	body := `{
		"parametros_generador": {
			"nombre": "mixed_congruential",
			"n": 99, "x0": 7, "a": 5, "c": 3, "m": 64
		},
		"metodo_distribucion": {
			"tipo": "tabla",
			"tabla_contingencia": {"A": 0.3, "B": 0.7}
		}
	}`
	resp, err := http.Post(srv.URL+"/api/runs", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result app.RunResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.Raw, 100)
	assert.Equal(t, 9, result.Uniformity.DegreesOfFreedom)
	assert.NotEmpty(t, result.Samples)
}

func TestCreateRunRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(newTestApp().Router())
	defer srv.Close()

	// Over the 1 MiB request limit
	body := strings.Repeat(" ", 1<<20+1)
	resp, err := http.Post(srv.URL+"/api/runs", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateRunRejectsBadSpec(t *testing.T) {
	srv := httptest.NewServer(newTestApp().Router())
	defer srv.Close()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing name", `{"parametros_generador": {"n": 5}}`},
		{"unknown generator", `{"parametros_generador": {"nombre": "xorshift", "n": 5}}`},
		{"invalid parameters", `{"parametros_generador": {"nombre": "fibonacci", "n": 5, "x0": 3, "x1": 200, "m": 16}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/runs", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
