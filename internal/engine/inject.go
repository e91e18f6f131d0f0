package engine

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Inject writes the evidence block and compiled lens into the boot document
// between the configured sentinel markers. When both markers are present the
// region between and including them is replaced, leaving all surrounding
// content byte-identical; otherwise the block is appended under a separator.
//
// The engine never creates the boot document: a missing file fails with
// ErrNoBootDoc and nothing is written. Re-running with identical inputs and
// a frozen clock reproduces the same document content.
func (e *Engine) Inject(evidence, lens string) error {
	path := e.Cfg.Boot.Path
	start := e.Cfg.Boot.StartMarker
	end := e.Cfg.Boot.EndMarker

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoBootDoc
		}
		return fmt.Errorf("read boot document: %w", err)
	}
	content := string(data)

	block := start + "\n" +
		"## 📊 LIVE STATE (Auto-Generated — Do Not Edit)\n\n" +
		evidence + "\n\n" +
		lens + "\n" +
		end

	startIdx := strings.Index(content, start)
	endIdx := strings.Index(content, end)
	if startIdx >= 0 && endIdx >= 0 {
		content = content[:startIdx] + block + content[endIdx+len(end):]
	} else {
		content = strings.TrimRight(content, " \t\n") + "\n\n---\n\n" + block + "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write boot document: %w", err)
	}
	e.Log.Debug("boot document updated",
		zap.String("path", path),
		zap.Int("bytes", len(content)))
	return nil
}
