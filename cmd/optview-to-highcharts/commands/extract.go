package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/optview/internal/output"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <report.html|URL>",
		Short: "Print the counters found in a report",
		Long: `Extract reads a report the same way the default command does and prints
the counters, with the largest one marked, instead of writing a page.

Examples:
  optview-to-highcharts extract report/index.html
  optview-to-highcharts extract report/index.html --format jsonl`,
		Args: requireSource,
		RunE: runExtract,
	}
	cmd.Flags().StringP("format", "f", "json", "output format: json, jsonl, yaml")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	conv, err := newConverter()
	if err != nil {
		return err
	}

	result, err := conv.ConvertSource(ctx, args[0])
	if err != nil {
		return err
	}

	w, err := output.NewWriter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	if err := w.WriteAll(result.Records); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	if result.HeadingMismatch() {
		logInfo("heading %q declares %d counters, found %d",
			result.Heading.Text, result.Heading.Declared, len(result.Records))
	}
	return nil
}
