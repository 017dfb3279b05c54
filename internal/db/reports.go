//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/str"
	"go.etcd.io/bbolt"
	"sort"
)

var (
	bucketReports = []byte("reports")
	bucketCharts  = []byte("charts")
	bucketMaps    = []byte("maps")

	ErrNoReport = errors.New("report not found")
)

// ReportStore - finished runs keyed by their id: the JSON report, the chart, and the document map
type ReportStore struct {
	bdb *bbolt.DB
}

func NewReportStore(path string) (*ReportStore, error) {
	bdb, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = bdb.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketReports, bucketCharts, bucketMaps} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		bdb.Close()
		return nil, err
	}
	return &ReportStore{bdb: bdb}, nil
}

func (s *ReportStore) Close() error {
	return s.bdb.Close()
}

// Put - store a report along with its rendered html
func (s *ReportStore) Put(r *str.TopicReport) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	key := []byte(r.ID)
	return s.bdb.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketReports).Put(key, data); err != nil {
			return err
		}
		if len(r.Chart) > 0 {
			if err := tx.Bucket(bucketCharts).Put(key, r.Chart); err != nil {
				return err
			}
		}
		if len(r.DocMap) > 0 {
			return tx.Bucket(bucketMaps).Put(key, r.DocMap)
		}
		return nil
	})
}

// Get - the report; Chart and DocMap are filled in as well
func (s *ReportStore) Get(id string) (*str.TopicReport, error) {
	var r str.TopicReport
	key := []byte(id)
	err := s.bdb.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketReports).Get(key)
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNoReport, id)
		}
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		// bbolt values are only valid inside the transaction
		r.Chart = clone(tx.Bucket(bucketCharts).Get(key))
		r.DocMap = clone(tx.Bucket(bucketMaps).Get(key))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReportStore) Chart(id string) ([]byte, error) {
	return s.blob(bucketCharts, id)
}

func (s *ReportStore) DocMap(id string) ([]byte, error) {
	return s.blob(bucketMaps, id)
}

// List - every stored report, newest first, without the html
func (s *ReportStore) List() ([]str.TopicReport, error) {
	var rr []str.TopicReport
	err := s.bdb.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketReports).ForEach(func(k, v []byte) error {
			var r str.TopicReport
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			rr = append(rr, r)
			return nil
		})
	})
	sort.Slice(rr, func(i, j int) bool { return rr[i].Created.After(rr[j].Created) })
	return rr, err
}

func (s *ReportStore) Delete(id string) error {
	key := []byte(id)
	return s.bdb.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketReports, bucketCharts, bucketMaps} {
			if err := tx.Bucket(b).Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ReportStore) blob(bucket []byte, id string) ([]byte, error) {
	var out []byte
	err := s.bdb.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNoReport, id)
		}
		out = clone(data)
		return nil
	})
	return out, err
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
