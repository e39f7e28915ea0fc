package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/optview/internal/logger"
	"github.com/jmylchreest/optview/internal/output"
	"github.com/jmylchreest/optview/pkg/optview"
	"github.com/jmylchreest/optview/pkg/render"
)

const defaultOutput = "index.html"

func addConvertFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("output", "o", defaultOutput, "page to write")
	flags.String("template-prefix", "", "file replacing the page text before the data array")
	flags.String("template-suffix", "", "file replacing the page text after the data array")

	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("template_prefix", flags.Lookup("template-prefix"))
	_ = viper.BindPFlag("template_suffix", flags.Lookup("template-suffix"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conv, err := newConverter()
	if err != nil {
		logError("%v", err)
		return reportedError{err}
	}

	source := args[0]
	logger.Debug("convert command starting", "source", source)

	result, err := conv.ConvertSource(ctx, source)
	if err != nil {
		var serr *optview.SourceError
		if errors.As(err, &serr) {
			fmt.Fprintf(cmd.OutOrStdout(), "There was a problem while reading the file %v\n", serr.Err)
		} else {
			logError("%v", err)
		}
		return reportedError{err}
	}

	outPath := viper.GetString("output")
	if outPath == "" {
		outPath = defaultOutput
	}
	if err := output.WriteFile(outPath, []byte(result.Output), 0o644); err != nil {
		logError("%v", err)
		return reportedError{err}
	}

	logInfo("%s", summarize(outPath, result))
	return nil
}

// summarize describes a finished conversion in one line.
func summarize(outPath string, result optview.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Wrote %s", outPath)
	if result.Title != "" {
		fmt.Fprintf(&b, " from %q", result.Title)
	}
	fmt.Fprintf(&b, " (%d counters, total %d, %s)", len(result.Records), result.Records.Total(),
		humanize.Bytes(uint64(len(result.Output))))
	if r, ok := result.Records.Largest(); ok {
		fmt.Fprintf(&b, ", largest %s", r)
	}
	return b.String()
}

// newConverter builds a converter from flags, environment and config file.
func newConverter() (*optview.Converter, error) {
	tmpl, err := render.LoadTemplate(viper.GetString("template_prefix"), viper.GetString("template_suffix"))
	if err != nil {
		return nil, err
	}

	opts := []optview.Option{
		optview.WithTemplate(tmpl),
		optview.WithStrict(viper.GetBool("strict")),
	}

	if s := strings.TrimSpace(viper.GetString("max_input_size")); s != "" && s != "0" {
		n, err := humanize.ParseBytes(s)
		if err != nil {
			return nil, fmt.Errorf("invalid max-input-size %q: %w", s, err)
		}
		opts = append(opts, optview.WithMaxInputSize(int64(n)))
	}
	if d := viper.GetDuration("timeout"); d > 0 {
		opts = append(opts, optview.WithTimeout(d))
	}

	return optview.New(opts...), nil
}
