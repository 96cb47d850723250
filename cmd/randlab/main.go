package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"randlab/app"
	"randlab/internal/config"
	"randlab/internal/errors"
	"randlab/internal/report"
	"randlab/ports"
	"randlab/ui"
)

func main() {
	// Optional .env for local defaults; absence is fine
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "randlab",
		Short: "Pseudo-random generation and statistical validation toolkit",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newBatchCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if errors.IsAppError(err) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", errors.GetCode(err), err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "run <spec.json>",
		Short: "Execute one run spec and print the report",
		Long: `Execute the full pipeline for a JSON run spec: generate the raw
sequence, normalize it, test uniformity, and when a distribution is
configured, sample it and test the fit.

Example: randlab run muestra_artificial_1.json --xlsx report.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := config.Load(args[0])
			if err != nil {
				return err
			}

			result, err := app.NewPipelineService().Run(cmd.Context(), spec)
			if err != nil {
				return errors.RunFailed("run failed", err)
			}

			return report.Render(reporters(cmd, xlsxPath), result)
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also export the report as an xlsx workbook")
	return cmd
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <spec.json>...",
		Short: "Execute several run specs concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := make([]*config.RunSpec, len(args))
			for i, path := range args {
				spec, err := config.Load(path)
				if err != nil {
					return err
				}
				specs[i] = spec
			}

			results, err := app.NewPipelineService().RunBatch(cmd.Context(), specs)
			if err != nil {
				return errors.RunFailed("batch failed", err)
			}

			text := report.NewTextReporter(cmd.OutOrStdout())
			for i, result := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", args[i])
				if err := text.Report(result); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pipeline over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.NewApp(app.NewPipelineService()).Start(port)
		},
	}

	cmd.Flags().StringVar(&port, "port", envOrDefault("PORT", "8080"), "HTTP listen port")
	return cmd
}

func reporters(cmd *cobra.Command, xlsxPath string) []ports.Reporter {
	out := []ports.Reporter{report.NewTextReporter(cmd.OutOrStdout())}
	if xlsxPath != "" {
		out = append(out, report.NewExcelReporter(xlsxPath))
	}
	return out
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
