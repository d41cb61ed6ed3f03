package table

import (
	"sort"
)

// SortByKey sorts rows by key, byte by byte. The sort is stable, so
// rows with the same key stay in the order they were read and the
// first one in the file is the one found by lookups.
func (t *Table) SortByKey() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Key < t.Rows[j].Key
	})
}

// FindLinear walks through the rows and returns the first whose key
// matches. It is slow, but it is the definition of what Index.Find
// has to give back.
func (t *Table) FindLinear(key string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Key == key {
			return r, true
		}
	}
	return Row{}, false
}

// Index maps a key to the first row with that key.
// It must be rebuilt if the table is sorted or keys are changed.
type Index struct {
	t   *Table
	pos map[string]int
}

// NewIndex builds an index over the rows as they are now.
func NewIndex(t *Table) *Index {
	pos := make(map[string]int, len(t.Rows))
	for i, r := range t.Rows {
		if _, ok := pos[r.Key]; !ok {
			pos[r.Key] = i
		}
	}
	return &Index{t: t, pos: pos}
}

// Find returns the row for a key and whether there was one.
func (idx *Index) Find(key string) (Row, bool) {
	i, ok := idx.pos[key]
	if !ok {
		return Row{}, false
	}
	return idx.t.Rows[i], true
}

// Len is the number of distinct keys.
func (idx *Index) Len() int { return len(idx.pos) }
