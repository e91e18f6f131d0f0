// Package store persists the belief database as a single JSON document.
//
// Every engine operation is a full load → mutate → save cycle. There is no
// long-lived cached instance and no cross-process locking; the intended
// invocation pattern is a single periodic, sequential caller, and concurrent
// writers are last-writer-wins. Atomic replace-on-save is the only
// durability guarantee.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store knows where the belief document lives on disk.
type Store struct {
	Path string
	log  *zap.Logger
}

// New creates a Store for the document at path. A nil logger is replaced
// with a no-op logger.
func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{Path: path, log: log}
}

// Load reads the document from disk. A missing or unreadable file degrades
// to a fresh empty document; no error is surfaced to the caller. Missing
// top-level keys are filled in from the empty-document template.
func (s *Store) Load() *Document {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read document, starting fresh", zap.String("path", s.Path), zap.Error(err))
		}
		return NewDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn("parse document, starting fresh", zap.String("path", s.Path), zap.Error(err))
		return NewDocument()
	}

	doc.normalize()
	return &doc
}

// Save writes the document to a temporary path and atomically replaces the
// target, so a crash mid-write never leaves a partial document behind.
func (s *Store) Save(doc *Document) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
