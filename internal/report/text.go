// Package report renders completed pipeline runs: a plain-text report for
// the terminal and an xlsx workbook for coursework hand-ins.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"randlab/app"
	"randlab/domain/core"
	"randlab/domain/stats"
)

// sequencePreview caps how many terms the text report prints per sequence
const sequencePreview = 50

// TextReporter writes a human-readable run report to an io.Writer
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a text reporter
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report renders the run
func (r *TextReporter) Report(result *app.RunResult) error {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "run\t%s\n", result.RunID)
	fmt.Fprintf(tw, "generator\t%s\n", result.GeneratorKind)
	fmt.Fprintf(tw, "raw sequence (%d)\t%s\n", len(result.Raw), formatRaw(result.Raw))
	fmt.Fprintf(tw, "normalized (%d)\t%s\n", len(result.Normalized), formatNormalized(result.Normalized))
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "uniformity (k=%d)\t%s\n", result.UniformityBins, formatChiSquare(result.Uniformity))

	if len(result.Samples) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "samples generated\t%d\n", len(result.Samples))
		for _, f := range result.Frequencies {
			fmt.Fprintf(tw, "  %s\t%d\n", f.Label, f.Count)
		}
	}
	if result.Fit != nil {
		fmt.Fprintf(tw, "distribution fit\t%s\n", formatChiSquare(*result.Fit))
	}

	if result.RawSummary != nil {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "raw summary\t%s\n", formatSummary(*result.RawSummary))
	}
	if result.SampleSummary != nil {
		fmt.Fprintf(tw, "sample summary\t%s\n", formatSummary(*result.SampleSummary))
	}

	return tw.Flush()
}

func formatChiSquare(r stats.ChiSquareResult) string {
	verdict := "fails"
	if r.Passes(0.05) {
		verdict = "passes"
	}
	return fmt.Sprintf("statistic=%.4f df=%d p=%.4f (%s at 0.05)", r.Statistic, r.DegreesOfFreedom, r.PValue, verdict)
}

func formatSummary(s stats.Summary) string {
	return fmt.Sprintf("mean=%.4f sd=%.4f min=%.4f median=%.4f max=%.4f", s.Mean, s.StdDev, s.Min, s.Median, s.Max)
}

func formatRaw(seq core.RawSequence) string {
	parts := make([]string, 0, len(seq))
	for i, v := range seq {
		if i == sequencePreview {
			parts = append(parts, "…")
			break
		}
		parts = append(parts, strconv.FormatInt(v, 10))
	}
	return strings.Join(parts, " ")
}

func formatNormalized(seq core.NormalizedSequence) string {
	parts := make([]string, 0, len(seq))
	for i, v := range seq {
		if i == sequencePreview {
			parts = append(parts, "…")
			break
		}
		parts = append(parts, strconv.FormatFloat(v, 'f', 4, 64))
	}
	return strings.Join(parts, " ")
}
