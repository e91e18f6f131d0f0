package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lazypower/metacog/internal/engine"
	"github.com/lazypower/metacog/internal/store"
)

var (
	addSource   string
	addEvidence []string
)

var addCmd = &cobra.Command{
	Use:   "add <type> <content> [confidence] [domain]",
	Short: "Add a belief entry",
	Long: "Add an entry of one of the six types: perception, override, protection,\n" +
		"self_obs, decision, curiosity. Near-duplicate content reinforces the\n" +
		"existing entry instead of creating a new one.",
	Args: cobra.RangeArgs(2, 4),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addSource, "source", "", "Provenance label")
	addCmd.Flags().StringArrayVar(&addEvidence, "evidence", nil, "Evidence item (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}

	confidence := 0.7
	if len(args) > 2 {
		confidence, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Printf("Failed (bad confidence %q)\n", args[2])
			return nil
		}
	}
	domain := ""
	if len(args) > 3 {
		domain = args[3]
	}

	entry, err := eng.Add(store.EntryType(args[0]), args[1], confidence, engine.AddOptions{
		Source:   addSource,
		Domain:   domain,
		Evidence: addEvidence,
	})
	if errors.Is(err, engine.ErrInvalidType) || errors.Is(err, engine.ErrEmptyContent) {
		fmt.Println("Failed (invalid type or empty content)")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Added [%s] %s\n", entry.Type, clip(entry.Content, 80))
	return nil
}

// clip shortens content for one-line status output.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
