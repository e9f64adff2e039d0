package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Files used by a Repository, relative to its directory.
const (
	InventoryFile = "inventory.jsonl"
	LedgerFile    = "transactions.jsonl"
)

// Repository loads and saves a store in a directory.
//
// Loading never fails: a missing or unreadable file yields an empty catalog
// or ledger, and the problem is logged. A file that exists but could not be
// loaded is kept aside as "<name>.corrupt" by the next save, so that its
// history is never overwritten. Saving errors are logged and returned, they
// never change the store itself.
type Repository struct {
	Dir string
	Log *zap.Logger

	failed map[string]bool // files that exist but could not be loaded
}

// NewRepository creates a repository for dir. A nil logger discards logs.
func NewRepository(dir string, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{Dir: dir, Log: log}
}

func (r *Repository) path(name string) string { return filepath.Join(r.Dir, name) }

// load opens the named file and decodes it, logging failures.
func load[T any](r *Repository, name string, decode func(io.Reader) (T, error)) (v T, ok bool) {
	path := r.path(name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.Log.Info("file does not exist, starting empty", zap.String("path", path))
		return v, false
	}
	if err != nil {
		r.Log.Warn("could not open file, starting empty", zap.String("path", path), zap.Error(err))
		r.markFailed(name)
		return v, false
	}
	defer f.Close()

	v, err = decode(f)
	if err != nil {
		r.Log.Warn("could not decode file, starting empty", zap.String("path", path), zap.Error(err))
		r.markFailed(name)
		return v, false
	}
	return v, true
}

func (r *Repository) markFailed(name string) {
	if r.failed == nil {
		r.failed = make(map[string]bool)
	}
	r.failed[name] = true
}

// CorruptSuffix is appended to the name of a file that could not be loaded
// when it is moved aside.
const CorruptSuffix = ".corrupt"

// keepAside renames a file that failed to load, so the save that follows
// does not overwrite it.
func (r *Repository) keepAside(name string) error {
	if !r.failed[name] {
		return nil
	}
	path := r.path(name)
	if err := os.Rename(path, path+CorruptSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not keep %q aside: %w", path, err)
	}
	r.Log.Warn("kept unreadable file aside", zap.String("path", path+CorruptSuffix))
	delete(r.failed, name)
	return nil
}

// LoadInventory loads the catalog, or returns an empty one.
func (r *Repository) LoadInventory() *Inventory {
	inv, ok := load(r, InventoryFile, DecodeInventory)
	if !ok {
		return NewInventory()
	}
	r.Log.Debug("loaded inventory", zap.Int("products", inv.Len()))
	return inv
}

// LoadLedger loads the ledger, or returns an empty one.
func (r *Repository) LoadLedger() *Ledger {
	l, ok := load(r, LedgerFile, DecodeLedger)
	if !ok {
		return NewLedger()
	}
	r.Log.Debug("loaded ledger", zap.Int("transactions", l.Len()))
	return l
}

// Load loads a whole store.
func (r *Repository) Load() *Store {
	return &Store{inventory: r.LoadInventory(), ledger: r.LoadLedger()}
}

// save creates the named file and encodes into it.
func (r *Repository) save(name string, encode func(io.Writer) error) (err error) {
	path := r.path(name)
	defer func() {
		if err != nil {
			r.Log.Error("could not save file", zap.String("path", path), zap.Error(err))
		}
	}()

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", r.Dir, err)
	}
	if err := r.keepAside(name); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %q: %w", path, err)
	}
	r.Log.Debug("saved file", zap.String("path", path))
	return nil
}

// SaveInventory saves the catalog.
func (r *Repository) SaveInventory(inv *Inventory) error {
	return r.save(InventoryFile, func(w io.Writer) error { return EncodeInventory(w, inv) })
}

// SaveLedger saves the ledger.
func (r *Repository) SaveLedger(l *Ledger) error {
	return r.save(LedgerFile, func(w io.Writer) error { return EncodeLedger(w, l) })
}

// Save saves both the catalog and the ledger of s.
func (r *Repository) Save(s *Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(r.SaveInventory(s.inventory), r.SaveLedger(s.ledger))
}
