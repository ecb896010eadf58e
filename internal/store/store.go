// Package store provides the ordered line collection behind a sort run: a
// red-black tree keyed by an ordering policy, holding either a set or a
// multiset of lines.
package store

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"git.home.luguber.info/inful/linesort/internal/ordering"
)

// Store is an ordered collection of lines. With unique semantics at most one
// line per comparator-equivalence class is kept; otherwise every inserted
// occurrence survives, including byte-distinct lines that compare equal.
type Store struct {
	tree   *redblacktree.Tree
	unique bool
	size   int
}

// New builds an empty Store governed by policy for its whole lifetime.
func New(policy ordering.Policy, unique bool) *Store {
	cmp := func(a, b interface{}) int {
		return policy.Compare(a.(string), b.(string))
	}
	return &Store{tree: redblacktree.NewWith(cmp), unique: unique}
}

// Insert adds line to the collection. Under unique semantics a line that
// compares equal to an already-present one is dropped; the first-inserted
// line stays, even when the two differ byte-wise (e.g. by case under a
// case-insensitive policy).
func (s *Store) Insert(line string) {
	if v, found := s.tree.Get(line); found {
		if s.unique {
			return
		}
		// Put keeps the existing node key; the bucket carries each
		// occurrence in insertion order.
		s.tree.Put(line, append(v.([]string), line))
		s.size++
		return
	}
	s.tree.Put(line, []string{line})
	s.size++
}

// Len returns the number of lines the collection holds.
func (s *Store) Len() int { return s.size }

// Each walks the collection in comparator order, calling f for every held
// occurrence until f returns false.
func (s *Store) Each(f func(line string) bool) {
	it := s.tree.Iterator()
	for it.Next() {
		for _, line := range it.Value().([]string) {
			if !f(line) {
				return
			}
		}
	}
}
