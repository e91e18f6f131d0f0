package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazypower/metacog/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show entry counts and the strongest entries per type",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}

	doc := eng.Store.Load()

	active := 0
	resolved := 0
	byType := map[store.EntryType]int{}
	for _, e := range doc.Entries {
		if e.Resolved {
			resolved++
			continue
		}
		active++
		byType[e.Type]++
	}

	fmt.Println("Metacognition Engine:")
	fmt.Printf("  Active entries: %d\n", active)
	fmt.Printf("  Resolved: %d\n", resolved)
	fmt.Printf("  Decisions traced: %d\n", doc.Meta.TotalDecisions)
	fmt.Printf("  Corrections: %d\n", doc.Meta.TotalCorrections)
	fmt.Println()

	for _, typ := range store.EntryTypes {
		count := byType[typ]
		if count == 0 {
			continue
		}
		fmt.Printf("  %s %s: %d\n", typ.Glyph(), typ, count)
		for _, e := range eng.Active(typ, 5) {
			fmt.Printf("    [%.2f x%d] %s\n", e.Strength, e.Reinforcements, clip(e.Content, 80))
		}
	}

	if curiosities := eng.Active(store.TypeCuriosity, 10); len(curiosities) > 0 {
		fmt.Println()
		fmt.Println("  Curiosity lifecycle:")
		for _, c := range curiosities {
			fmt.Printf("    [%s|%dev] %s\n", c.Lifecycle, len(c.Evidence), clip(c.Content, 70))
		}
	}

	return nil
}
