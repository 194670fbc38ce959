// Package oset provides an insertion-ordered set with O(1) add,
// membership test and removal.
package oset

import "iter"

type entry[K comparable] struct {
	key        K
	prev, next *entry[K]
}

// Set remembers the order in which keys were first added. The zero
// value is not usable; call New.
type Set[K comparable] struct {
	m    map[K]*entry[K]
	root entry[K] // sentinel of a circular doubly-linked list
}

func New[K comparable](keys ...K) *Set[K] {
	s := &Set[K]{m: map[K]*entry[K]{}}
	s.root.prev = &s.root
	s.root.next = &s.root
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s *Set[K]) Len() int {
	return len(s.m)
}

func (s *Set[K]) Has(k K) bool {
	_, ok := s.m[k]
	return ok
}

// Add appends k to the set if not already present and reports whether
// it was added.
func (s *Set[K]) Add(k K) bool {
	if _, ok := s.m[k]; ok {
		return false
	}
	e := &entry[K]{key: k, prev: s.root.prev, next: &s.root}
	e.prev.next = e
	s.root.prev = e
	s.m[k] = e
	return true
}

// Delete removes k and reports whether it was present.
func (s *Set[K]) Delete(k K) bool {
	e, ok := s.m[k]
	if !ok {
		return false
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(s.m, k)
	return true
}

// All iterates the keys in insertion order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := s.root.next; e != &s.root; e = e.next {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values returns the keys in insertion order.
func (s *Set[K]) Values() []K {
	res := make([]K, 0, len(s.m))
	for k := range s.All() {
		res = append(res, k)
	}
	return res
}

// Index returns the position of k in insertion order, or -1.
func (s *Set[K]) Index(k K) int {
	if !s.Has(k) {
		return -1
	}
	i := 0
	for e := s.root.next; e != &s.root; e = e.next {
		if e.key == k {
			return i
		}
		i++
	}
	return -1
}
