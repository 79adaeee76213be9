// Package store connects to the data store and manages the records of
// completed walking sessions
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/stridewalk/stride/internal/apperr"
	"github.com/stridewalk/stride/internal/timeutil"
	"github.com/stridewalk/stride/phase"
)

const summariesBucket = "summaries"

var errStrideRunning = &apperr.Error{
	Message: "is Stride already running? Only one instance can be active at a time",
}

// DB is the database storage interface.
type DB interface {
	// SaveSummary stores the record of a completed session, keyed by
	// its start time.
	SaveSummary(sum phase.Summary) error
	// ListSummaries returns stored records, most recent first. A limit
	// of zero returns everything.
	ListSummaries(limit int) ([]phase.Summary, error)
	// DeleteSummary removes the record that started at the given time.
	DeleteSummary(startTime time.Time) error
	// Close ends the database connection
	Close() error
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) SaveSummary(sum phase.Summary) error {
	value, err := json.Marshal(sum)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(summariesBucket)).
			Put(timeutil.ToKey(sum.StartTime), value)
	})
}

func (c *Client) ListSummaries(limit int) ([]phase.Summary, error) {
	var summaries []phase.Summary

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(summariesBucket)).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			var sum phase.Summary

			if err := json.Unmarshal(v, &sum); err != nil {
				return err
			}

			summaries = append(summaries, sum)

			if limit > 0 && len(summaries) == limit {
				return nil
			}
		}

		return nil
	})

	return summaries, err
}

func (c *Client) DeleteSummary(startTime time.Time) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(summariesBucket)).
			Delete(timeutil.ToKey(startTime))
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errStrideRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(summariesBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}
