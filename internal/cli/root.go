// Package cli wires reaxtrace's cobra command tree: react (the main
// reaction-detection pipeline), plus the independent rings and lindemann
// analytics leaves. Each is an explicit subcommand; the root command runs
// none of them on its own.
package cli

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/reaxtrace/reaxtrace/frame"
	"github.com/reaxtrace/reaxtrace/internal/logging"
	"github.com/reaxtrace/reaxtrace/internal/metrics"
)

// NewRootCommand builds the reaxtrace root command and its subcommands.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reaxtrace",
		Short: "Analyse molecular-dynamics trajectories for chemical reactions and structural metrics",
		Long: `reaxtrace analyses a multi-frame XYZ or LAMMPS dump trajectory: its
"react" command infers bonds from covalent radii, tracks per-pair
bonding timelines across a sliding window of frames, filters thermal-
vibration noise, and emits one row per detected bond-breaking/forming
reaction. The "rings" and "lindemann" commands run independent structural
analytics over the same trajectory formats.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newReactCommand(), newRingsCommand(), newLindemannCommand())
	return cmd
}

func openSource(trjfile, format string, stepBy int) (frame.Source, error) {
	f, err := os.Open(trjfile)
	if err != nil {
		return nil, err
	}

	if format == "" {
		format = detectFormat(trjfile)
	}
	switch format {
	case "lammps":
		return frame.NewLAMMPSReader(f, f, stepBy, nil)
	default:
		return frame.NewXYZReader(f, f, stepBy)
	}
}

func detectFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".dump" || ext == ".lammpstrj" {
		return "lammps"
	}
	return "xyz"
}

func startMetricsServer(addr string, log logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn("metrics server stopped", logging.Err(err))
		}
	}()
}
