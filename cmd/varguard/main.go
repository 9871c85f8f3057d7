package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "VarGuard"
	version = "v0.3.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     "varguard",
		Short:   "Portfolio VaR monitor with regime-driven trading control",
		Version: version,
		Long: `VarGuard monitors aggregate portfolio Value-at-Risk, classifies it
into risk regimes (normal, warning, breach, shutdown) and drives a
trading engine worker through an ordered directive queue, stopping the
engine outright when risk becomes extreme.`,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newSimulateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
