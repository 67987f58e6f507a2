// Package badger provides the BadgerHold-based holding store.
package badger

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"

	"github.com/portview/portview/internal/common"
)

// Store wraps a BadgerHold database connection plus the insertion-order
// sequence for the holdings collection.
type Store struct {
	db     *badgerhold.Store
	seq    *badger.Sequence
	logger *common.Logger
}

// NewStore creates a new BadgerHold store at the given directory path.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create badger directory %s: %w", path, err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil // Disable default badger logger

	db, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	seq, err := db.Badger().GetSequence([]byte("holding_seq"), 64)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open holding sequence: %w", err)
	}

	logger.Debug().Str("path", path).Msg("BadgerHold store opened")

	return &Store{
		db:     db,
		seq:    seq,
		logger: logger,
	}, nil
}

// NextSeq returns the next insertion sequence number.
func (s *Store) NextSeq() (uint64, error) {
	return s.seq.Next()
}

// Close releases the sequence and closes the BadgerHold database.
func (s *Store) Close() error {
	if s.seq != nil {
		s.seq.Release()
		s.seq = nil
	}
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}
