// Package history stores the lines previously accepted by the editor. The
// store is a bounded, ordered collection, most recent last; the session
// layers its navigation semantics (live-entry mirroring and index clamping)
// on top of the primitives here.
package history

// DefaultCapacity bounds the store when no explicit capacity is given.
const DefaultCapacity = 100

// Store is a bounded ordered collection of accepted lines.
type Store struct {
	entries  []string
	capacity int
}

// New returns a Store bounded at capacity entries. Non-positive capacities
// fall back to DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Push appends line to the store. A line byte-identical to the most recent
// entry is discarded, so the store never holds two consecutive duplicates.
// When at capacity the oldest entry is evicted first.
func (s *Store) Push(line string) {
	if n := len(s.entries); n > 0 && s.entries[n-1] == line {
		return
	}

	if len(s.entries) == s.capacity {
		// Evict the oldest entry in place.
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = line
		return
	}

	s.entries = append(s.entries, line)
}

// Pop removes and returns the most recent entry. The second return is false
// on an empty store.
func (s *Store) Pop() (string, bool) {
	n := len(s.entries)
	if n == 0 {
		return "", false
	}
	line := s.entries[n-1]
	s.entries = s.entries[:n-1]
	return line, true
}

// At returns the entry at index i, oldest first.
func (s *Store) At(i int) string { return s.entries[i] }

// ReplaceAt overwrites the entry at index i.
func (s *Store) ReplaceAt(i int, line string) { s.entries[i] = line }

// Len returns the number of stored entries.
func (s *Store) Len() int { return len(s.entries) }

// Capacity returns the configured bound.
func (s *Store) Capacity() int { return s.capacity }

// Entries returns a copy of the stored lines, oldest first.
func (s *Store) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}
