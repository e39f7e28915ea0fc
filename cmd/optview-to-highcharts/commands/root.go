// Package commands implements the CLI commands for optview-to-highcharts.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/optview/internal/logger"
)

// ExitFailure is the process status for every failure.
const ExitFailure = 128

var errMissingSource = errors.New("missing input report")

// reportedError marks an error whose diagnostic was already printed.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optview-to-highcharts <report.html|URL>",
		Short: "Turn an optimization report's issue summary into a pie chart page",
		Long: `optview-to-highcharts reads the issue-type summary list of an
optimization report and writes a chart page that embeds the same counters
as a data array. The largest counter is pulled out of the pie.

Examples:
  # Convert a local report, writing index.html in the current directory
  optview-to-highcharts report/index.html

  # Convert a published report and choose the output path
  optview-to-highcharts https://ci.example.com/opt/index.html -o chart.html

  # Print the extracted counters instead of writing a page
  optview-to-highcharts extract report/index.html --format yaml`,
		Args:          requireSource,
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(os.Stdout)

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.optview.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "suppress progress output")
	flags.String("max-input-size", "", "max report size (e.g., 5MB, empty=unlimited)")
	flags.Bool("strict", false, "fail when list items cannot be read instead of skipping them")
	flags.Duration("timeout", 0, "timeout for reports fetched over HTTP (default 30s)")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("max_input_size", flags.Lookup("max-input-size"))
	_ = viper.BindPFlag("strict", flags.Lookup("strict"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))

	addConvertFlags(cmd)
	cmd.AddCommand(newExtractCmd(), newVersionCmd())
	return cmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".optview")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("OPTVIEW")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			logError("%v", err)
		}
	}
	return err
}

// requireSource prints usage when the report argument is missing.
func requireSource(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		_ = cmd.Usage()
		return reportedError{errMissingSource}
	case len(args) > 1:
		return fmt.Errorf("accepts 1 report, received %d", len(args))
	}
	return nil
}

func initLogger() {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
