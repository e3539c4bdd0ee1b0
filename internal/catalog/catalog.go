package catalog

import (
	"sync"
	"time"
)

// MergeResult reports what a Merge call changed.
type MergeResult struct {
	Added      int
	Duplicates int
	Total      int
}

// Snapshot is a point-in-time copy of the catalog.
type Snapshot struct {
	Records     []Record
	LastUpdated time.Time
}

// Catalog owns the aggregated records. Records keep their merge order.
// The first record seen for an id wins; later duplicates are dropped.
type Catalog struct {
	mu          sync.RWMutex
	records     []Record
	index       map[string]int
	lastUpdated time.Time
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Merge appends records whose ids are not already present.
func (c *Catalog) Merge(records []Record) MergeResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == nil {
		c.index = make(map[string]int)
	}

	var res MergeResult
	for _, r := range records {
		if _, ok := c.index[r.ID]; ok {
			res.Duplicates++
			continue
		}
		c.index[r.ID] = len(c.records)
		c.records = append(c.records, r.Clone())
		res.Added++
	}
	if res.Added > 0 {
		c.lastUpdated = time.Now()
	}
	res.Total = len(c.records)
	return res
}

// Query returns copies of the records matching f, in merge order.
func (c *Catalog) Query(f Filter) []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := f.NormalizedQuery()
	out := make([]Record, 0, len(c.records))
	for _, r := range c.records {
		if f.matches(r, query) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Find looks up a record by id.
func (c *Catalog) Find(id string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i].Clone(), true
}

// Len returns the number of records held.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Snapshot returns a copy of the current records.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{LastUpdated: c.lastUpdated}
	if len(c.records) > 0 {
		snap.Records = make([]Record, len(c.records))
		for i, r := range c.records {
			snap.Records[i] = r.Clone()
		}
	}
	return snap
}
