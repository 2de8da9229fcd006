package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"seokit/internal/domain"
)

var (
	bucketReports = []byte("reports")
	bucketMeta    = []byte("meta")
)

// ErrNotFound is returned by Get when no report exists for a path.
var ErrNotFound = errors.New("report not found")

// BoltStore persists batch reports keyed by file path.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketReports, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Put(report domain.StoredReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report %s: %w", report.Path, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketReports).Put([]byte(report.Path), data)
	})
}

// PutBatch writes all reports in a single transaction.
func (s *BoltStore) PutBatch(reports []domain.StoredReport) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketReports)
		for _, report := range reports {
			data, err := json.Marshal(report)
			if err != nil {
				return fmt.Errorf("failed to encode report %s: %w", report.Path, err)
			}
			if err := b.Put([]byte(report.Path), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) Get(path string) (domain.StoredReport, error) {
	var report domain.StoredReport
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketReports).Get([]byte(path))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return json.Unmarshal(data, &report)
	})
	return report, err
}

func (s *BoltStore) Delete(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketReports).Delete([]byte(path))
	})
}

// List returns every stored report ordered by path.
func (s *BoltStore) List() ([]domain.StoredReport, error) {
	var reports []domain.StoredReport
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketReports).ForEach(func(k, v []byte) error {
			var report domain.StoredReport
			if err := json.Unmarshal(v, &report); err != nil {
				return fmt.Errorf("failed to decode report %s: %w", k, err)
			}
			reports = append(reports, report)
			return nil
		})
	})
	return reports, err
}

// Clear removes all reports. Schema metadata is kept.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketReports); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(bucketReports)
		return err
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
