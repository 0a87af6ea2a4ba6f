// Package urlstate mirrors list parameters into a navigable address. Each
// synchronizer keeps its own history of addresses: writes and navigations push
// entries, and Back drops to the previous one.
package urlstate

import (
	"net/url"
	"sync"
)

// Codec maps parameters to and from a query string. Decode must be lenient:
// unrecognized values become defaults instead of errors.
type Codec[P any] interface {
	Decode(q url.Values) P
	Encode(p P, q url.Values)
}

type Synchronizer[P any] struct {
	codec Codec[P]

	mu      sync.Mutex
	history []url.URL
	cursor  int
}

// New returns a synchronizer positioned at the given address.
func New[P any](codec Codec[P], location *url.URL) *Synchronizer[P] {
	return &Synchronizer[P]{
		codec:   codec,
		history: []url.URL{stripped(location)},
	}
}

// Read parses the parameters of the current address.
func (s *Synchronizer[P]) Read() P {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codec.Decode(s.history[s.cursor].Query())
}

// Write replaces the query of the current address with the canonical form of
// p and pushes the result as a new history entry, dropping any forward
// entries. Keys the codec does not own are kept.
func (s *Synchronizer[P]) Write(p P) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.history[s.cursor]
	q := next.Query()
	s.codec.Encode(p, q)
	next.RawQuery = q.Encode()

	s.history = append(s.history[:s.cursor+1], next)
	s.cursor++
}

// Navigate records an address reached from outside, such as a bookmark or a
// typed URL, as a new history entry.
func (s *Synchronizer[P]) Navigate(location *url.URL) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history[:s.cursor+1], stripped(location))
	s.cursor++
}

// Back moves to the previous entry, e.g. when the address just navigated to
// could not be loaded. It reports false at the oldest entry.
func (s *Synchronizer[P]) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// Location returns the current address as a path with query, suitable for a
// Location header.
func (s *Synchronizer[P]) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.history[s.cursor]
	return u.RequestURI()
}

// Len returns the number of history entries.
func (s *Synchronizer[P]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// Matches reports whether the current address has the same path and query
// as location.
func (s *Synchronizer[P]) Matches(location *url.URL) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.history[s.cursor]
	other := stripped(location)
	return cur.Path == other.Path && sameQuery(cur.Query(), other.Query())
}

// Only the path and query take part in the address; scheme and host depend on
// how the request reached us.
func stripped(u *url.URL) url.URL {
	return url.URL{Path: u.Path, RawQuery: u.RawQuery}
}

func sameQuery(a, b url.Values) bool {
	return a.Encode() == b.Encode()
}
