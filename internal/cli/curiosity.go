package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lazypower/metacog/internal/engine"
	"github.com/lazypower/metacog/internal/store"
)

var curiosityCmd = &cobra.Command{
	Use:   "curiosity",
	Short: "Manage open questions through their lifecycle",
}

var curiosityAddCmd = &cobra.Command{
	Use:   "add <content> [confidence] [domain]",
	Short: "Birth a curiosity",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  runCuriosityAdd,
}

var curiosityEvolveCmd = &cobra.Command{
	Use:   "evolve <id> [evidence]",
	Short: "Advance a curiosity's lifecycle",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCuriosityEvolve,
}

var curiosityResolveCmd = &cobra.Command{
	Use:   "resolve <id> <resolution> [type]",
	Short: "Resolve a curiosity into a new belief",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runCuriosityResolve,
}

func init() {
	curiosityCmd.AddCommand(curiosityAddCmd)
	curiosityCmd.AddCommand(curiosityEvolveCmd)
	curiosityCmd.AddCommand(curiosityResolveCmd)
}

func runCuriosityAdd(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}

	confidence := 0.7
	if len(args) > 1 {
		confidence, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Printf("Failed (bad confidence %q)\n", args[1])
			return nil
		}
	}
	domain := ""
	if len(args) > 2 {
		domain = args[2]
	}

	entry, err := eng.Add(store.TypeCuriosity, args[0], confidence, engine.AddOptions{Domain: domain})
	if errors.Is(err, engine.ErrEmptyContent) {
		fmt.Println("Failed (empty content)")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Curiosity born: %s\n", clip(entry.Content, 80))
	return nil
}

func runCuriosityEvolve(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}

	evidence := ""
	if len(args) > 1 {
		evidence = args[1]
	}

	entry, err := eng.EvolveCuriosity(args[0], "", evidence)
	if errors.Is(err, engine.ErrNotFound) || errors.Is(err, engine.ErrNotCuriosity) {
		fmt.Printf("Failed (%v)\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Curiosity [%s]: %s\n", entry.Lifecycle, clip(entry.Content, 80))
	return nil
}

func runCuriosityResolve(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}

	becomes := store.TypePerception
	if len(args) > 2 {
		becomes = store.EntryType(args[2])
	}

	entry, err := eng.ResolveCuriosity(args[0], args[1], becomes)
	if errors.Is(err, engine.ErrNotFound) || errors.Is(err, engine.ErrInvalidType) {
		fmt.Printf("Failed (%v)\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Resolved -> [%s]: %s\n", entry.Type, clip(entry.Content, 80))
	return nil
}
