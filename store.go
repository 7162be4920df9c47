package stockpile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DocumentStore abstracts where the ledger document lives.
//
// This is the single injectable persistence step: a System calls Save with
// the full ledger after every mutation. Swapping the implementation (a file,
// memory, or something incremental) does not touch the engine.
type DocumentStore interface {
	// Load reads the whole document. A store with no document yet returns
	// an empty ledger, not an error.
	Load() (*Ledger, error)
	// Save atomically replaces the whole document.
	Save(*Ledger) error
}

// FileStore persists the ledger as one JSON document on disk.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads and decodes the document. A missing file is a fresh store and
// loads as an empty ledger.
func (s *FileStore) Load() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.Path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.Path, err)
	}
	return ledger, nil
}

// Save encodes the ledger to the file, creating parent directories as
// needed. The document is written to a temporary file first and moved into
// place, so a crash mid-write cannot leave a truncated document behind.
func (s *FileStore) Save(l *Ledger) error {
	dir := filepath.Dir(s.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for ledger file %q: %w", s.Path, err)
		}
	}
	f, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %w", s.Path, err)
	}
	if err := EncodeLedger(f, l); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("could not write ledger file %q: %w", s.Path, err)
	}
	if err := os.Rename(f.Name(), s.Path); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("could not replace ledger file %q: %w", s.Path, err)
	}
	return nil
}

// MemoryStore keeps the encoded document in memory. It backs tests and
// embedding hosts that manage durability themselves.
type MemoryStore struct {
	doc []byte
}

// Load decodes the held document, or returns an empty ledger when nothing
// was saved yet.
func (s *MemoryStore) Load() (*Ledger, error) {
	if len(s.doc) == 0 {
		return NewLedger(), nil
	}
	return DecodeLedger(bytes.NewReader(s.doc))
}

// Save replaces the held document.
func (s *MemoryStore) Save(l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return err
	}
	s.doc = buf.Bytes()
	return nil
}

// Document returns the encoded document as last saved.
func (s *MemoryStore) Document() []byte { return s.doc }
