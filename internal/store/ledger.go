// Package store persists crawl and evaluation data between runs: a
// resume-safe ledger of evaluation results and a compressed cache of crawled
// skill documents.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katahira/mekiki/internal/models"
)

// Ledger is the keyed record of prior evaluations. It has an explicit
// lifecycle: Open at batch start, Put+Flush after each unit of work. A flush
// after every unit means a crash loses at most one evaluation.
type Ledger struct {
	path    string
	records []models.EvaluationRecord
	index   map[string]int // record key -> position in records
}

// OpenLedger loads the ledger at path. A missing file yields an empty ledger.
func OpenLedger(path string) (*Ledger, error) {
	l := &Ledger{path: path, index: map[string]int{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	if err := json.Unmarshal(data, &l.records); err != nil {
		return nil, fmt.Errorf("parsing ledger %s: %w", path, err)
	}
	for i, r := range l.records {
		l.index[r.Key()] = i
	}
	return l, nil
}

// Has reports whether a record with the given key exists.
func (l *Ledger) Has(key string) bool {
	_, ok := l.index[key]
	return ok
}

// Get returns the record with the given key.
func (l *Ledger) Get(key string) (models.EvaluationRecord, bool) {
	i, ok := l.index[key]
	if !ok {
		return models.EvaluationRecord{}, false
	}
	return l.records[i], true
}

// Put inserts or replaces a record.
func (l *Ledger) Put(rec models.EvaluationRecord) {
	if i, ok := l.index[rec.Key()]; ok {
		l.records[i] = rec
		return
	}
	l.index[rec.Key()] = len(l.records)
	l.records = append(l.records, rec)
}

// Records returns all records in insertion order.
func (l *Ledger) Records() []models.EvaluationRecord {
	return l.records
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Path returns the backing file path.
func (l *Ledger) Path() string {
	return l.path
}

// Flush writes the ledger to disk. A temp-file rename keeps a crash
// mid-write from corrupting previously persisted results.
func (l *Ledger) Flush() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	data, err := json.MarshalIndent(l.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}
