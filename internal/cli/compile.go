package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile and print the lens text",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine()
		if err != nil {
			return err
		}
		lens, err := eng.CompileLens()
		if err != nil {
			return err
		}
		fmt.Println(lens)
		return nil
	},
}
