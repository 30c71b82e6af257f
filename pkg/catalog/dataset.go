package catalog

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Dataset is an immutable, ordered snapshot of valid records together with
// where it came from. Records keep source order.
type Dataset struct {
	ID       uuid.UUID
	Source   string
	LoadedAt time.Time
	records  []Record
}

// NewDataset snapshots recs under a fresh generation ID. Invalid records are
// dropped so every dataset upholds the width/diameter invariant.
func NewDataset(source string, recs []Record) *Dataset {
	valid, _ := FilterValid(recs)
	return &Dataset{
		ID:       uuid.New(),
		Source:   source,
		LoadedAt: time.Now(),
		records:  valid,
	}
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of the records in source order.
func (d *Dataset) Records() []Record { return slices.Clone(d.records) }

// At returns the i-th record.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Find returns the first record with the given ID.
func (d *Dataset) Find(id string) (Record, bool) {
	for _, r := range d.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Index returns the position of the first record with the given ID, or -1.
func (d *Dataset) Index(id string) int {
	return slices.IndexFunc(d.records, func(r Record) bool { return r.ID == id })
}

// Pair resolves a left/right selection. An unknown left ID selects the first
// record; an unknown right ID selects the second, or the first when the
// dataset holds a single record. ok is false only for an empty dataset.
func (d *Dataset) Pair(leftID, rightID string) (left, right Record, ok bool) {
	if len(d.records) == 0 {
		return Record{}, Record{}, false
	}
	left, found := d.Find(leftID)
	if !found {
		left = d.records[0]
	}
	right, found = d.Find(rightID)
	if !found {
		right = d.records[min(1, len(d.records)-1)]
	}
	return left, right, true
}

// WorkingSet holds the active dataset. Reloads replace it wholesale with
// [WorkingSet.Swap]; concurrent readers see either the old or the new
// dataset, never a mix.
type WorkingSet struct {
	current atomic.Pointer[Dataset]
}

// NewWorkingSet creates a working set seeded with d.
func NewWorkingSet(d *Dataset) *WorkingSet {
	ws := &WorkingSet{}
	ws.current.Store(d)
	return ws
}

// Load returns the active dataset. It is nil only if nothing was ever stored.
func (w *WorkingSet) Load() *Dataset { return w.current.Load() }

// Swap installs d as the active dataset and returns the previous one.
func (w *WorkingSet) Swap(d *Dataset) *Dataset { return w.current.Swap(d) }
