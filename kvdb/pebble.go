package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db   *pebble.DB
	path string
}

func openPebble(path string) (*pebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "kvdb: open pebble %s", path)
	}
	return &pebbleStore{db: db, path: path}, nil
}

func (s *pebbleStore) Put(key, value []byte) error {
	return errors.Wrap(s.db.Set(key, value, pebble.Sync), "kvdb: pebble put")
}

func (s *pebbleStore) Scan(prefix []byte, fn func(key, value []byte) error) error {
	opts := &pebble.IterOptions{}
	if len(prefix) > 0 {
		opts.LowerBound = prefix
		opts.UpperBound = prefixUpperBound(prefix)
	}

	it, err := s.db.NewIter(opts)
	if err != nil {
		return errors.Wrap(err, "kvdb: pebble iterator")
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		if err := fn(cloneBytes(it.Key()), cloneBytes(it.Value())); err != nil {
			return err
		}
	}
	return errors.Wrap(it.Error(), "kvdb: pebble scan")
}

func (s *pebbleStore) Size() (int64, error) {
	return getDirSize(s.path)
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
