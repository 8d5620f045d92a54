// Package engine implements the search: transposition-table-backed,
// root-parallel principal-variation search over internal/board's move
// generator and evaluation.
package engine

import "github.com/tessera-project/pijersi/internal/board"

// NodeType classifies a transposition table entry's score: PV entries hold
// an exact score, Cut entries a lower bound (the search beta-cut before
// finishing), All entries an upper bound (no move raised alpha).
type NodeType uint8

const (
	NodeAll NodeType = iota
	NodeCut
	NodePV
)

// BucketSize is the number of entries per hash bucket; a 4-way bucket
// absorbs most collisions without the table ever growing.
const BucketSize = 4

type entry struct {
	hash     uint64
	action   board.Action
	depth    uint8
	score    int64
	nodeType NodeType
	occupied bool
}

type bucket struct {
	entries [BucketSize]entry
}

// insert applies the replacement scheme: a matching hash is replaced when
// the new depth is higher, or equal-depth with the new entry a PV node
// replacing a non-PV one; otherwise the shallowest (or first empty) slot
// is evicted.
func (bk *bucket) insert(hash uint64, depth uint8, action board.Action, score int64, nt NodeType) {
	minDepth := uint8(255)
	minIndex := 0
	haveEmpty := false

	for i := range bk.entries {
		e := &bk.entries[i]
		if e.occupied && e.hash == hash {
			if depth > e.depth || (depth == e.depth && e.nodeType != NodePV && nt == NodePV) {
				*e = entry{hash: hash, action: action, depth: depth, score: score, nodeType: nt, occupied: true}
			}
			return
		}
		if !e.occupied {
			if !haveEmpty {
				minIndex = i
				haveEmpty = true
			}
			continue
		}
		if !haveEmpty && e.depth < minDepth {
			minDepth = e.depth
			minIndex = i
		}
	}
	bk.entries[minIndex] = entry{hash: hash, action: action, depth: depth, score: score, nodeType: nt, occupied: true}
}

func (bk *bucket) read(hash uint64) (entry, bool) {
	for _, e := range bk.entries {
		if e.occupied && e.hash == hash {
			return e, true
		}
	}
	return entry{}, false
}

// Table is the search transposition table: hash & (len-1) selects a
// bucket, matching the bitmask indexing the original engine uses instead
// of a modulo.
type Table struct {
	data []bucket
	mask uint64
}

// NewTable allocates a table with 2^bits buckets (bits=20 -> ~1M buckets,
// 4 entries each). The reference engine defaults to 2^25 buckets
// (24-bit key width, doubled); that size is reachable here by raising
// bits, but 20 is a saner default for a Go process that isn't tuned for a
// dedicated search server.
func NewTable(bits int) *Table {
	size := uint64(1) << uint(bits)
	return &Table{data: make([]bucket, size), mask: size - 1}
}

// Insert records a search result for hash at depth.
func (t *Table) Insert(hash uint64, depth int, action board.Action, score int64, nt NodeType) {
	t.data[hash&t.mask].insert(hash, uint8(depth), action, score, nt)
}

// Read returns the stored result for hash, if any.
func (t *Table) Read(hash uint64) (depth int, action board.Action, score int64, nt NodeType, ok bool) {
	e, found := t.data[hash&t.mask].read(hash)
	if !found {
		return 0, board.Action{}, 0, 0, false
	}
	return int(e.depth), e.action, e.score, e.nodeType, true
}

// Clear empties every bucket.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = bucket{}
	}
}
