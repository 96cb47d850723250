package report

import (
	"github.com/xuri/excelize/v2"

	"randlab/app"
	"randlab/internal/errors"
)

const (
	sheetSequences = "Sequences"
	sheetChiSquare = "ChiSquare"
	sheetSamples   = "Samples"
)

// ExcelReporter writes the run report as an xlsx workbook
type ExcelReporter struct {
	path string
}

// NewExcelReporter creates a reporter that writes to path
func NewExcelReporter(path string) *ExcelReporter {
	return &ExcelReporter{path: path}
}

// Report writes one workbook: sequences, chi-square results, and samples
// with their observed frequencies.
func (r *ExcelReporter) Report(result *app.RunResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := r.writeSequences(f, result); err != nil {
		return errors.Wrap(err, "failed to write sequence sheet")
	}
	if err := r.writeChiSquare(f, result); err != nil {
		return errors.Wrap(err, "failed to write chi-square sheet")
	}
	if err := r.writeSamples(f, result); err != nil {
		return errors.Wrap(err, "failed to write samples sheet")
	}

	if err := f.SaveAs(r.path); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", r.path)
	}
	return nil
}

func (r *ExcelReporter) writeSequences(f *excelize.File, result *app.RunResult) error {
	if err := f.SetSheetName("Sheet1", sheetSequences); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetSequences, "A1", &[]interface{}{"i", "raw", "normalized"}); err != nil {
		return err
	}
	for i, raw := range result.Raw {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{i, raw, result.Normalized[i]}
		if err := f.SetSheetRow(sheetSequences, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExcelReporter) writeChiSquare(f *excelize.File, result *app.RunResult) error {
	if _, err := f.NewSheet(sheetChiSquare); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetChiSquare, "A1", &[]interface{}{"test", "statistic", "df", "p_value"}); err != nil {
		return err
	}
	uniform := []interface{}{"uniformity", result.Uniformity.Statistic, result.Uniformity.DegreesOfFreedom, result.Uniformity.PValue}
	if err := f.SetSheetRow(sheetChiSquare, "A2", &uniform); err != nil {
		return err
	}
	if result.Fit != nil {
		fit := []interface{}{"distribution_fit", result.Fit.Statistic, result.Fit.DegreesOfFreedom, result.Fit.PValue}
		if err := f.SetSheetRow(sheetChiSquare, "A3", &fit); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExcelReporter) writeSamples(f *excelize.File, result *app.RunResult) error {
	if len(result.Frequencies) == 0 {
		return nil
	}
	if _, err := f.NewSheet(sheetSamples); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetSamples, "A1", &[]interface{}{"label", "observed", "theoretical_p"}); err != nil {
		return err
	}
	theoretical := result.Theoretical.Map()
	for i, freq := range result.Frequencies {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{freq.Label, freq.Count, theoretical[freq.Label]}
		if err := f.SetSheetRow(sheetSamples, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
