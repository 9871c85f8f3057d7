package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/varguard/varguard/internal/config"
	"github.com/varguard/varguard/internal/sim"
)

func newSimulateCmd() *cobra.Command {
	var (
		configPath string
		paths      int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run standalone Monte Carlo path simulations",
		Long:  "Generate paths for the configured stochastic process and print summary statistics, without starting the risk monitor.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			return runSimulate(cfg.Sim, paths)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config (defaults apply when omitted)")
	cmd.Flags().IntVarP(&paths, "paths", "p", 5, "number of paths to generate")
	return cmd
}

func runSimulate(c config.SimConfig, paths int) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	process := processFromConfig(c)

	fmt.Printf("%s: %d paths, %d steps, maturity %.2f\n", c.Process, paths, c.TimeSteps, c.Maturity)
	for i := 0; i < paths; i++ {
		path := sim.Simulate(process, rng)
		lo, hi := path[0], path[0]
		for _, v := range path {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		fmt.Printf("path %d: start=%.4f terminal=%.4f min=%.4f max=%.4f\n",
			i+1, path[0], path[len(path)-1], lo, hi)
	}
	return nil
}
