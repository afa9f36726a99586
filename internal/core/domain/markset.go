package domain

import "sort"

// MarkSet is a set of composite identity keys used for favorite and
// visited marks. Presence means true; there is no other metadata.
//
// JSON has no set type, so the wire encoding is always a sorted array
// of strings. Normalising through Encode/DecodeMarkSet on every load
// and save guarantees the stored shape never diverges from the
// default-value shape handed back on first load.
type MarkSet map[string]struct{}

// NewMarkSet builds a set from zero or more keys.
func NewMarkSet(keys ...string) MarkSet {
	s := make(MarkSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key is in the set.
func (s MarkSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Toggle returns a copy of the set with key flipped. Toggling twice
// returns a set equal to the original.
func (s MarkSet) Toggle(key string) MarkSet {
	out := make(MarkSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	if _, ok := out[key]; ok {
		delete(out, key)
	} else {
		out[key] = struct{}{}
	}
	return out
}

// Encode returns the canonical wire form: a sorted string slice.
// An empty set encodes as an empty (non-nil) slice so the stored
// shape is stable across sessions.
func (s MarkSet) Encode() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DecodeMarkSet rebuilds a set from its wire form. Duplicate entries
// collapse silently.
func DecodeMarkSet(keys []string) MarkSet {
	return NewMarkSet(keys...)
}
