package i18n

import (
	"io/fs"
	"sync/atomic"
)

// Store hands out immutable Bundle snapshots to concurrent readers while a
// loader swaps in rebuilt bundles, e.g. under development hot-reload. A
// request takes one snapshot and uses it for its entire lifetime; in-flight
// requests are never exposed to a catalog mutating mid-computation.
type Store struct {
	current atomic.Pointer[Bundle]
}

// NewStore creates a store serving the given bundle.
func NewStore(bundle *Bundle) *Store {
	s := &Store{}
	s.current.Store(bundle)
	return s
}

// Snapshot returns the current bundle.
func (s *Store) Snapshot() *Bundle {
	return s.current.Load()
}

// Replace atomically swaps in a new bundle. Readers holding the previous
// snapshot are unaffected.
func (s *Store) Replace(bundle *Bundle) {
	s.current.Store(bundle)
}

// Reload rebuilds the bundle from the filesystem and swaps it in. On failure
// the previous snapshot stays in place and the error propagates to the
// caller, aborting the reload.
func (s *Store) Reload(fsys fs.FS, defaultLocale string) error {
	bundle, err := LoadBundle(fsys, defaultLocale)
	if err != nil {
		return err
	}
	s.current.Store(bundle)
	return nil
}
