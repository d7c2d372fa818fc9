package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-opcount/opcount/contrib/bench"
	"github.com/ajroetker/go-opcount/opcount/contrib/scenario"
)

func ptr(v float64) *float64 { return &v }

func sampleReport() Report {
	return Report{
		RunID:       "run-1",
		StartedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Repetitions: 5,
		Host:        bench.Host{GOOS: "linux", GOARCH: "amd64", NumCPU: 8, Features: []string{"avx2"}},
		Results: []bench.Result{
			{
				Algorithm: bench.MergeSort, N: 1000, Scenario: scenario.Random, Repetitions: 5,
				AvgTimeMs: 0.4567, AvgComparisons: 8706.2, AvgAssignments: 9976, EnergyProxy: 18682.2,
			},
			{
				Algorithm: bench.QuickSort, N: 1000, Scenario: scenario.Random, Repetitions: 5,
				AvgTimeMs: 0.25, AvgComparisons: 11000, AvgAssignments: 21000.4, EnergyProxy: 32000.4,
				EnergyJoule: ptr(1.234), EmissionsKg: ptr(0.00000012),
			},
		},
	}
}

func TestRow(t *testing.T) {
	r := sampleReport()
	assert.Equal(t,
		[]string{"MergeSort", "1000", "random", "0.457", "8706.2", "9976.0", "18682.2", "-", "-"},
		Row(r.Results[0]))
	assert.Equal(t,
		[]string{"QuickSort", "1000", "random", "0.250", "11000.0", "21000.4", "32000.4", "1.23", "0.00000012"},
		Row(r.Results[1]))
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "table", sampleReport()))

	out := buf.String()
	for _, want := range []string{"Divide & Conquer", "Repetitions: 5", "run-1", "avg_comp", "MergeSort", "QuickSort", "18682.2", "0.00000012"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "json", sampleReport()))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
	assert.Contains(t, buf.String(), `"energy_joule": null`)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "yaml", sampleReport()))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	require.Len(t, got.Results, 2)
	assert.Equal(t, bench.QuickSort, got.Results[1].Algorithm)
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "csv", sampleReport()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Columns, records[0])
	assert.Equal(t, "MergeSort", records[1][0])
	assert.Equal(t, "-", records[1][7])
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, "xml", sampleReport()))
}
