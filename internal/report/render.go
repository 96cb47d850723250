package report

import (
	"randlab/app"
	"randlab/internal/errors"
	"randlab/ports"
)

// Render runs one result through every configured reporter
func Render(reporters []ports.Reporter, result *app.RunResult) error {
	for _, r := range reporters {
		if err := r.Report(result); err != nil {
			return errors.ReportFailed("report rendering failed", err)
		}
	}
	return nil
}
