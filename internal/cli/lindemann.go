package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/reaxtrace/reaxtrace/lindemann"
)

func newLindemannCommand() *cobra.Command {
	var format string
	var stepBy int
	var perAtom bool

	cmd := &cobra.Command{
		Use:   "lindemann <trjfile>",
		Short: "Compute the Lindemann melting index across a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			src, err := openSource(args[0], format, stepBy)
			if err != nil {
				return fmt.Errorf("cli: opening %q: %w", args[0], err)
			}
			defer src.Close()

			var acc lindemann.Accumulator
			for {
				fr, ok, err := src.Next()
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				if err := acc.Observe(fr); err != nil {
					return fmt.Errorf("cli: %w", err)
				}
			}

			if perAtom {
				byAtom := acc.PerAtom()
				ids := make([]int, 0, len(byAtom))
				for id := range byAtom {
					ids = append(ids, id)
				}
				sort.Ints(ids)
				fmt.Fprintf(c.OutOrStdout(), "%-10s %s\n", "atom_id", "lindemann_index")
				for _, id := range ids {
					fmt.Fprintf(c.OutOrStdout(), "%-10d %.8f\n", id, byAtom[id])
				}
				return nil
			}

			fmt.Fprintf(c.OutOrStdout(), "%.8f\n", acc.Index())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&format, "format", "", `trajectory format: "xyz" or "lammps" (default: infer from extension)`)
	flags.IntVar(&stepBy, "step", 1, "read every Nth frame of the trajectory")
	flags.BoolVar(&perAtom, "per-atom", false, "report a Lindemann index per atom instead of the whole-system average")

	return cmd
}
