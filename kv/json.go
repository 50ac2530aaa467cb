package kv

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the storage as an array of pairs, so neither the order nor the
// duplicates are lost.
func (s *Storage) MarshalJSON() ([]byte, error) {
	if len(s.pairs) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal(s.pairs)
}

// UnmarshalJSON appends the pairs from an array produced by MarshalJSON.
func (s *Storage) UnmarshalJSON(data []byte) error {
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}

	s.pairs = append(s.pairs, pairs...)

	return nil
}
