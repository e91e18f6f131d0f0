package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Apply time-based decay to all active entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine()
		if err != nil {
			return err
		}
		n, err := eng.Decay()
		if err != nil {
			return err
		}
		fmt.Printf("Decay applied to %d entries\n", n)
		return nil
	},
}
