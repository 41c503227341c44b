package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reaxtrace/reaxtrace/bond"
	"github.com/reaxtrace/reaxtrace/internal/config"
	"github.com/reaxtrace/reaxtrace/internal/logging"
	"github.com/reaxtrace/reaxtrace/internal/writer"
	"github.com/reaxtrace/reaxtrace/scheduler"
)

func newReactCommand() *cobra.Command {
	cfg := &config.Config{}
	var configPath string

	cmd := &cobra.Command{
		Use:   "react <trjfile>",
		Short: "Detect chemical reactions in a molecular dynamics trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runReact(c.Context(), c, cfg, configPath, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file; flags explicitly set on the command line override it")
	flags.BoolVarP(&cfg.WriteReactionSpecies, "write-species", "w", false, "write reaction species and reactive-frame MOL2 files")
	flags.IntVarP(&cfg.NoiseEventLife, "noise-event-life", "l", 20, "noise filter life L (frames)")
	flags.IntVarP(&cfg.ChunkSize, "chunk-size", "n", 200, "sliding window chunk size C (must exceed 2L+1)")
	flags.IntVar(&cfg.StepBy, "step", 1, "read every Nth frame of the trajectory")
	flags.StringVar(&cfg.Format, "format", "", `trajectory format: "xyz" or "lammps" (default: infer from extension)`)
	flags.StringVar(&cfg.OutputPath, "output", "reaction.csv", "output CSV path")
	flags.Float64Var(&cfg.BondRatio, "bond-ratio", bond.DefaultRatio, "covalent radius sum multiplier for the bonding cutoff")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address if set")

	return cmd
}

// mergeFileConfig overlays fileCfg onto cfg for every flag the user did not
// explicitly pass on the command line, so "--config x.yaml --chunk-size 500"
// takes chunk_size from the flag and everything else from x.yaml.
func mergeFileConfig(cmd *cobra.Command, cfg, fileCfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("write-species") {
		cfg.WriteReactionSpecies = fileCfg.WriteReactionSpecies
	}
	if !flags.Changed("noise-event-life") {
		cfg.NoiseEventLife = fileCfg.NoiseEventLife
	}
	if !flags.Changed("chunk-size") {
		cfg.ChunkSize = fileCfg.ChunkSize
	}
	if !flags.Changed("step") {
		cfg.StepBy = fileCfg.StepBy
	}
	if !flags.Changed("format") {
		cfg.Format = fileCfg.Format
	}
	if !flags.Changed("output") {
		cfg.OutputPath = fileCfg.OutputPath
	}
	if !flags.Changed("bond-ratio") {
		cfg.BondRatio = fileCfg.BondRatio
	}
	if !flags.Changed("log-level") {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if !flags.Changed("metrics-addr") {
		cfg.MetricsAddr = fileCfg.MetricsAddr
	}
}

func runReact(ctx context.Context, cmd *cobra.Command, cfg *config.Config, configPath, trajectory string) error {
	if configPath != "" {
		fileCfg, err := config.LoadFile(configPath)
		if err != nil {
			return fmt.Errorf("cli: loading config %q: %w", configPath, err)
		}
		mergeFileConfig(cmd, cfg, fileCfg)
	}
	cfg.Trajectory = trajectory

	config.ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("cli: building logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configPath != "" {
		config.Watch(configPath, func(newCfg *config.Config) {
			if err := log.SetLevel(newCfg.LogLevel); err != nil {
				return
			}
			log.Info("config file changed, log level updated", logging.String("log_level", newCfg.LogLevel))
		})
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(cfg.MetricsAddr, log)
	}

	src, err := openSource(cfg.Trajectory, cfg.Format, cfg.StepBy)
	if err != nil {
		return fmt.Errorf("cli: opening %q: %w", cfg.Trajectory, err)
	}

	sink, err := writer.NewCSVWriter(cfg.OutputPath)
	if err != nil {
		return err
	}

	outDir := filepath.Dir(cfg.OutputPath)
	sched, err := scheduler.New(scheduler.Config{
		ChunkSize:            cfg.ChunkSize,
		NoiseEventLife:       cfg.NoiseEventLife,
		BondOptions:          []bond.Option{bond.WithRatio(cfg.BondRatio)},
		WriteReactionSpecies: cfg.WriteReactionSpecies,
		SpeciesDir:           filepath.Join(outDir, "reaction-species"),
		ReactiveFramesDir:    filepath.Join(outDir, "reactive-frames"),
	})
	if err != nil {
		return err
	}

	log.Info("starting reaction detection",
		logging.String("trajectory", cfg.Trajectory),
		logging.Int("chunk_size", cfg.ChunkSize),
		logging.Int("noise_event_life", cfg.NoiseEventLife),
	)

	if err := sched.Run(ctx, src, sink); err != nil {
		return fmt.Errorf("cli: scheduler run: %w", err)
	}

	log.Info("reaction detection complete", logging.String("output", cfg.OutputPath))
	return nil
}
