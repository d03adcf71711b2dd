package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBStore persists values in an embedded LevelDB database.
type LevelDBStore struct {
	db     *leveldb.DB
	logger *log.Logger
}

// OpenLevelDB opens (or creates) the database at path.
func OpenLevelDB(path string, logger *log.Logger) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb at %s: %w", path, err)
	}
	logger.Printf("LevelDB store opened at %s", path)
	return NewLevelDBStore(db, logger), nil
}

// NewLevelDBStore wraps an already opened database.
func NewLevelDBStore(db *leveldb.DB, logger *log.Logger) *LevelDBStore {
	return &LevelDBStore{db: db, logger: logger}
}

func (s *LevelDBStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leveldb get %s: %w", key, err)
	}
	return v, nil
}

func (s *LevelDBStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("leveldb put %s: %w", key, err)
	}
	return nil
}

func (s *LevelDBStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("leveldb delete %s: %w", key, err)
	}
	return nil
}

func (s *LevelDBStore) Close() error {
	s.logger.Println("Closing LevelDB store")
	return s.db.Close()
}
