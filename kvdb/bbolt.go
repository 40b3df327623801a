package kvdb

import (
	"bytes"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

type bboltStore struct {
	db   *bbolt.DB
	path string
}

func openBbolt(path string) (*bboltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "kvdb: open bbolt %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "kvdb: create bbolt bucket")
	}
	return &bboltStore{db: db, path: path}, nil
}

func (s *bboltStore) Put(key, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put(key, value)
	})
	return errors.Wrap(err, "kvdb: bbolt put")
}

func (s *bboltStore) Scan(prefix []byte, fn func(key, value []byte) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketName)).Cursor()
		// 키/값은 트랜잭션 안에서만 유효하므로 복사해서 넘김
		k, v := c.First()
		if len(prefix) > 0 {
			k, v = c.Seek(prefix)
		}
		for ; k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if err := fn(cloneBytes(k), cloneBytes(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *bboltStore) Size() (int64, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return 0, errors.Wrap(err, "kvdb: stat bbolt file")
	}
	return fi.Size(), nil
}

func (s *bboltStore) Close() error {
	return s.db.Close()
}
