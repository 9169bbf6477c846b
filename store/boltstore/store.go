// Package boltstore persists SplitEventLog snapshots to a bolt
// database, so a consensus host can checkpoint the bounded, in-memory
// log across restarts. This is caller-owned persistence; the eventlog
// package itself never touches disk, per spec.md §5.
package boltstore

import (
	"encoding/json"

	"github.com/boltdb/bolt"
	"github.com/cockroachdb/errors"

	"splitchain/core"
	"splitchain/eventlog"
)

var (
	bucketName = []byte("split_event_log")
	logKey     = []byte("snapshot")
)

// Store wraps a bolt database handle dedicated to event log
// snapshots.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the bolt database at path and
// ensures the event log bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "boltstore: opening %q", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "boltstore: creating bucket")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// snapshot is the JSON-marshaled form of a Log: its ordered events
// plus the configured bound, sufficient to reconstruct an equivalent
// eventlog.Log on load.
type snapshot struct {
	Events    []core.SplitEvent `json:"events"`
	MaxEvents int                `json:"maxEvents"`
}

// SaveLog persists log's full event window, overwriting any prior
// snapshot.
func (s *Store) SaveLog(log eventlog.Log) error {
	snap := snapshot{Events: log.Events(), MaxEvents: log.MaxEvents()}
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "boltstore: marshaling log snapshot")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(logKey, data)
	})
}

// LoadLog reconstructs a Log from the last saved snapshot. If no
// snapshot has ever been saved, it returns an empty log bounded by
// eventlog.DefaultMaxEvents.
func (s *Store) LoadLog() (eventlog.Log, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get(logKey)
		if v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return eventlog.Log{}, errors.Wrap(err, "boltstore: reading log snapshot")
	}
	if data == nil {
		return eventlog.New(eventlog.DefaultMaxEvents), nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return eventlog.Log{}, errors.Wrap(err, "boltstore: unmarshaling log snapshot")
	}

	log := eventlog.New(snap.MaxEvents)
	for _, evt := range snap.Events {
		log = log.Append(evt)
	}
	return log, nil
}
