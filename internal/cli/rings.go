package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reaxtrace/reaxtrace/bond"
	"github.com/reaxtrace/reaxtrace/frame"
	"github.com/reaxtrace/reaxtrace/rings"
)

func newRingsCommand() *cobra.Command {
	var format string
	var stepBy int
	var maxRingSize int
	var frameIndex int
	var bondRatio float64

	cmd := &cobra.Command{
		Use:   "rings <trjfile>",
		Short: "Enumerate the smallest rings in one frame of a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			src, err := openSource(args[0], format, stepBy)
			if err != nil {
				return fmt.Errorf("cli: opening %q: %w", args[0], err)
			}
			defer src.Close()

			var fr frame.Frame
			found := false
			for i := 0; i <= frameIndex; i++ {
				next, ok, err := src.Next()
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				fr = next
				found = i == frameIndex
			}
			if !found {
				return fmt.Errorf("cli: trajectory has no frame %d", frameIndex)
			}

			g := bond.Infer(fr, bond.WithRatio(bondRatio))
			for _, ring := range rings.FindRings(g, maxRingSize) {
				fmt.Fprintln(c.OutOrStdout(), ring)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&format, "format", "", `trajectory format: "xyz" or "lammps" (default: infer from extension)`)
	flags.IntVar(&stepBy, "step", 1, "read every Nth frame of the trajectory")
	flags.IntVar(&maxRingSize, "max-ring-size", 8, "largest ring size to search for")
	flags.IntVar(&frameIndex, "frame", 0, "0-based frame index to analyse")
	flags.Float64Var(&bondRatio, "bond-ratio", bond.DefaultRatio, "covalent radius sum multiplier for the bonding cutoff")

	return cmd
}
