package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import entries from the legacy geometry/perception documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine()
		if err != nil {
			return err
		}
		n, err := eng.Migrate()
		if err != nil {
			return err
		}
		fmt.Printf("Migrated %d entries from old system\n", n)
		return nil
	},
}
