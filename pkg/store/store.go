// Package store persists named interval sequences in an embedded LevelDB
// database. Values are the JSON encoding of the sequence; keys are the
// caller-chosen names, iterated in lexical order.
package store

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/Bibendus83/period/pkg/period"
)

// ErrNotFound is returned when no sequence is stored under the given name
var ErrNotFound = errors.New("no sequence stored under this name")

// Store is a LevelDB-backed collection of named sequences
type Store struct {
	db      *leveldb.DB
	dataDir string
}

// Open opens, creating if needed, the sequence database under dataDir
func Open(dataDir string) (*Store, error) {
	db, err := leveldb.OpenFile(dataDir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "store: cannot open database at %s", dataDir)
	}
	log.Debug().Str("dataDir", dataDir).Msg("Opened sequence store")
	return &Store{db: db, dataDir: dataDir}, nil
}

// Close flushes and closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the sequence under name, replacing any previous value. An
// empty name gets a generated UUID. The assigned name is returned.
func (s *Store) Save(name string, seq *period.Sequence) (string, error) {
	if name == "" {
		name = uuid.NewV4().String()
	}
	buf, err := json.Marshal(seq)
	if err != nil {
		return "", errors.Wrapf(err, "store: cannot encode sequence %s", name)
	}
	if err := s.db.Put([]byte(name), buf, nil); err != nil {
		return "", errors.Wrapf(err, "store: cannot save sequence %s", name)
	}
	log.Debug().Str("name", name).Int("intervals", seq.Len()).Msg("Saved sequence")
	return name, nil
}

// Load returns the sequence stored under name
func (s *Store) Load(name string) (*period.Sequence, error) {
	buf, err := s.db.Get([]byte(name), nil)
	if err == leveldb.ErrNotFound {
		return nil, errors.Wrapf(ErrNotFound, "%s", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "store: cannot load sequence %s", name)
	}
	seq := period.NewSequence()
	if err := json.Unmarshal(buf, seq); err != nil {
		return nil, errors.Wrapf(err, "store: cannot decode sequence %s", name)
	}
	log.Debug().Str("name", name).Int("intervals", seq.Len()).Msg("Loaded sequence")
	return seq, nil
}

// Delete removes the sequence stored under name
func (s *Store) Delete(name string) error {
	ok, err := s.db.Has([]byte(name), nil)
	if err != nil {
		return errors.Wrapf(err, "store: cannot check sequence %s", name)
	}
	if !ok {
		return errors.Wrapf(ErrNotFound, "%s", name)
	}
	return s.db.Delete([]byte(name), nil)
}

// Names lists the names of all stored sequences in lexical order
func (s *Store) Names() ([]string, error) {
	names := []string{}
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		names = append(names, string(iter.Key()))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "store: iteration failed")
	}
	return names, nil
}
