package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/varguard/varguard/internal/alerts"
	"github.com/varguard/varguard/internal/config"
	"github.com/varguard/varguard/internal/engine"
	"github.com/varguard/varguard/internal/metrics"
	"github.com/varguard/varguard/internal/risk"
	"github.com/varguard/varguard/internal/sim"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		positions  int
		interval   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the risk monitor against a simulated position feed",
		Long: `Feed Monte Carlo VaR estimates into the risk manager as new
positions, one per interval, until the position budget is exhausted or
the manager escalates to shutdown. Metrics are served over HTTP while
the run is live.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			return runMonitor(cfg, positions, interval)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config (defaults apply when omitted)")
	cmd.Flags().IntVarP(&positions, "positions", "n", 8, "number of simulated positions to open")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 2*time.Second, "delay between position openings")
	return cmd
}

func runMonitor(cfg config.Config, positions int, interval time.Duration) error {
	collector := metrics.NewCollector()
	queue := engine.NewQueue()
	worker := engine.NewWorker(queue)

	sink := alerts.NewThrottledSink(alerts.NewLogSink(), cfg.Alerts.MaxPerMinute)
	manager, err := risk.NewManagerWithRecorder(cfg.Risk.VarLimit, cfg.Risk.WarningLevel, sink, queue, collector)
	if err != nil {
		return err
	}
	guarded := risk.NewLockedManager(manager)

	worker.Start()

	srv := metrics.NewServer(cfg.Metrics.ListenAddr, collector, func() metrics.RiskStatus {
		snap := guarded.Snapshot()
		return metrics.RiskStatus{
			CurrentVaR: snap.CurrentVaR,
			Regime:     snap.Regime,
			Positions:  snap.Positions,
		}
	})
	if cfg.Metrics.Enabled {
		go func() {
			log.Info().Str("addr", cfg.Metrics.ListenAddr).Msg("metrics server listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	estimator := sim.VaREstimator{
		Process:    processFromConfig(cfg.Sim),
		Paths:      cfg.Sim.Paths,
		Confidence: cfg.Sim.Confidence,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

feed:
	for i := 0; i < positions; i++ {
		select {
		case <-sigCh:
			log.Info().Msg("interrupted, closing position feed")
			break feed
		case <-worker.Done():
			break feed
		case <-ticker.C:
		}

		id := uuid.NewString()
		contribution := estimator.Estimate(rng)
		guarded.AddPosition(id, contribution)

		snap := guarded.Snapshot()
		log.Info().
			Str("position", id).
			Float64("contribution", contribution).
			Float64("current_var", snap.CurrentVaR).
			Str("regime", snap.Regime).
			Msg("position opened")

		if guarded.Regime() == risk.Shutdown {
			break
		}
	}

	// Without a shutdown escalation the worker would block on an empty
	// queue forever; closing the queue drains it and stops the worker.
	queue.Close()
	<-worker.Done()

	if cfg.Metrics.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}

	log.Info().
		Int64("trades", worker.TradesExecuted()).
		Int64("skipped", worker.TradesSkipped()).
		Int64("alerts_dropped", sink.Dropped()).
		Str("final_regime", guarded.Regime().String()).
		Msg("run complete")
	return nil
}

func processFromConfig(c config.SimConfig) sim.Process {
	if c.Process == "vasicek" {
		return sim.Vasicek{
			InitialValue:  c.InitialValue,
			RiskFreeRate:  c.RiskFreeRate,
			MeanReversion: c.MeanReversion,
			Volatility:    c.Volatility,
			TimeSteps:     c.TimeSteps,
			Maturity:      c.Maturity,
		}
	}
	return sim.GeometricBrownianMotion{
		InitialValue: c.InitialValue,
		RiskFreeRate: c.RiskFreeRate,
		Volatility:   c.Volatility,
		TimeSteps:    c.TimeSteps,
		Maturity:     c.Maturity,
	}
}
