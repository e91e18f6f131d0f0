package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lazypower/metacog/internal/engine"
	"github.com/lazypower/metacog/internal/evidence"
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Gather evidence, compile the lens, and inject into the boot document",
	RunE:  runInject,
}

func runInject(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}

	name := filepath.Base(eng.Cfg.Boot.Path)
	if err := injectOnce(eng, newGatherer(eng)); err != nil {
		if errors.Is(err, engine.ErrNoBootDoc) {
			fmt.Printf("Failed to update %s (document does not exist)\n", name)
			return nil
		}
		return err
	}

	if info, err := os.Stat(eng.Cfg.Boot.Path); err == nil {
		fmt.Printf("%s updated (%d bytes)\n", name, info.Size())
	} else {
		fmt.Printf("%s updated\n", name)
	}
	return nil
}

// injectOnce runs one gather → compile → inject cycle. Shared with the
// daemon.
func injectOnce(eng *engine.Engine, g *evidence.Gatherer) error {
	lens, err := eng.CompileLens()
	if err != nil {
		return err
	}
	return eng.Inject(g.Compile(), lens)
}
