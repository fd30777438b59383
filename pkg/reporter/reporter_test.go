package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kconflint/kconflint/pkg/config"
	"github.com/kconflint/kconflint/pkg/lint"
	"github.com/kconflint/kconflint/pkg/reporter"
	"github.com/kconflint/kconflint/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/src/Kconfig",
				Diagnostics: []lint.Diagnostic{
					{Path: "/src/Kconfig", Line: 2, Column: 13, Severity: config.SeverityWarning, Message: "Trailing whitespace"},
					{Path: "/src/Kconfig", Line: 5, Severity: config.SeverityWarning, Message: "Multiple consecutive empty lines"},
				},
			},
			{Path: "/src/drivers/Kconfig"},
		},
		Stats: runner.Stats{
			FilesDiscovered:       2,
			FilesProcessed:        2,
			FilesWithIssues:       1,
			DiagnosticsTotal:      2,
			DiagnosticsBySeverity: map[string]int{"warning": 2},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{"text", reporter.FormatText, false},
		{"", reporter.FormatText, false},
		{"json", reporter.FormatJSON, false},
		{"sarif", "", true},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := reporter.New(reporter.Options{Format: "sarif"})
	assert.Error(t, err)
}

func TestTextReporter_GroupsByFile(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatText,
		Color:       "never",
		ShowSummary: true,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "/src/Kconfig (2 issues)")
	assert.Contains(t, out, "Line 2:13: [warning] Trailing whitespace")
	assert.Contains(t, out, "Line 5: [warning] Multiple consecutive empty lines")
	assert.Contains(t, out, "2 issues (2 warnings) in 1 file")
	// Clean file produces no header.
	assert.NotContains(t, out, "drivers")
}

func TestTextReporter_RelativePaths(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:     &buf,
		Color:      "never",
		WorkingDir: "/src",
	})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Kconfig (2 issues)")
	assert.NotContains(t, buf.String(), "/src/Kconfig")
}

func TestTextReporter_NoFiles(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to check.")
}

func TestTextReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/src/Kconfig", Error: errors.New("write failed")},
		},
		Stats: runner.Stats{FilesErrored: 1},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "error: write failed")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatJSON,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 2)
	assert.Equal(t, "/src/Kconfig", output.Files[0].Path)
	require.Len(t, output.Files[0].Diagnostics, 2)
	assert.Equal(t, "warning", output.Files[0].Diagnostics[0].Severity)
	assert.Equal(t, 2, output.Files[0].Diagnostics[0].Line)
	assert.Equal(t, 13, output.Files[0].Diagnostics[0].Column)
	assert.Empty(t, output.Files[1].Diagnostics)

	assert.Equal(t, 2, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 2, output.Summary.BySeverity["warning"])
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	// Compact output is a single line.
	assert.Equal(t, 1, bytes.Count(bytes.TrimSpace(buf.Bytes()), []byte("\n"))+1)
}

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Empty(t, output.Files)
}
