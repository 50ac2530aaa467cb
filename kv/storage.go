package kv

import (
	"iter"
)

type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Storage is an associative structure for storing (string, string) pairs. It acts as a map but
// uses linear search instead, which proves to be more efficient on relatively low amount of
// entries, which often enough is the case. Unlike a map, it keeps the insertion order, so the
// first pair added under a key is the one returned by Get.
//
// Keys are compared exactly: query parameter names are case-sensitive.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromPairs returns a new instance holding a copy of passed pairs in the same order.
func NewFromPairs(pairs ...Pair) *Storage {
	s := NewPrealloc(len(pairs))
	s.pairs = append(s.pairs, pairs...)

	return s
}

// Add adds a new pair of key and value.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the value was found. If it wasn't, it'll
// be an empty string.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// Has reports whether at least one pair has the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Values returns an iterator over all values of the key, in insertion order.
func (s *Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range s.pairs {
			if pair.Key == key && !yield(pair.Value) {
				return
			}
		}
	}
}

// Pairs returns an iterator over all the pairs in insertion order.
func (s *Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Filter returns a new Storage holding only the pairs the predicate accepted, keeping
// their relative order.
func (s *Storage) Filter(keep func(Pair) bool) *Storage {
	filtered := New()

	for _, pair := range s.pairs {
		if keep(pair) {
			filtered.pairs = append(filtered.pairs, pair)
		}
	}

	return filtered
}

// Expose returns the underlying slice. Modifying it affects the storage.
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Len returns a number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

// Empty reports whether no pairs are stored.
func (s *Storage) Empty() bool {
	return len(s.pairs) == 0
}

// Clear all the entries. However, all the allocated space won't be freed.
func (s *Storage) Clear() {
	s.pairs = s.pairs[:0]
}
