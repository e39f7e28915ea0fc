// Package main is the entry point for the optview-to-highcharts CLI.
package main

import (
	"os"

	"github.com/jmylchreest/optview/cmd/optview-to-highcharts/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitFailure)
	}
}
