// Package report renders sweep results as a terminal table, JSON, CSV or YAML.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-opcount/opcount/contrib/bench"
)

// Report is one sweep's results with the context needed to compare them later.
type Report struct {
	RunID       string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	StartedAt   time.Time      `json:"started_at" yaml:"started_at"`
	Repetitions int            `json:"repetitions" yaml:"repetitions"`
	Host        bench.Host     `json:"host" yaml:"host"`
	Results     []bench.Result `json:"results" yaml:"results"`
}

// Columns is the column order shared by the table and CSV formats.
var Columns = []string{
	"Algo", "n", "mode", "avg_time_ms", "avg_comp", "avg_assign",
	"energy_proxy", "energy_joule", "emissions_kg",
}

// Render writes r to w in format: table, json, csv or yaml.
func Render(w io.Writer, format string, r Report) error {
	switch format {
	case "table", "":
		return renderTable(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "csv":
		return renderCSV(w, r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown report format %q", format)
}

// Row formats one result in Columns order. Unmeasured energy is "-".
func Row(res bench.Result) []string {
	return []string{
		string(res.Algorithm),
		strconv.Itoa(res.N),
		string(res.Scenario),
		strconv.FormatFloat(res.AvgTimeMs, 'f', 3, 64),
		strconv.FormatFloat(res.AvgComparisons, 'f', 1, 64),
		strconv.FormatFloat(res.AvgAssignments, 'f', 1, 64),
		strconv.FormatFloat(res.EnergyProxy, 'f', 1, 64),
		optional(res.EnergyJoule, 2),
		optional(res.EmissionsKg, 8),
	}
}

func optional(v *float64, prec int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(w io.Writer, r Report) error {
	rows := lo.Map(r.Results, func(res bench.Result, _ int) []string { return Row(res) })

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			// Text columns left, numbers right.
			if col == 0 || col == 2 {
				return cellStyle
			}
			return cellStyle.Align(lipgloss.Right)
		})

	if _, err := fmt.Fprintln(w, titleStyle.Render("=== Divide & Conquer Energy Experiment ===")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Repetitions: %d\nHost: %s\n", r.Repetitions, r.Host); err != nil {
		return err
	}
	if r.RunID != "" {
		if _, err := fmt.Fprintf(w, "Run: %s\n", r.RunID); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, res := range r.Results {
		if err := cw.Write(Row(res)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
