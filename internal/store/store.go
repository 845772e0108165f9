// Package store holds one resource store per screen of the console. A store
// mirrors the last page fetched from the upstream: a list, a loading flag, an
// error string and pagination metadata. Fetches replace the list wholesale;
// a failed fetch keeps the previous list visible and only records the error.
package store

import (
	"sync"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
)

// ListSnapshot is a point-in-time copy of a store's list state. Mutating a
// snapshot never affects the store.
type ListSnapshot[T any] struct {
	Items      []T               `json:"data"`
	Loading    bool              `json:"loading"`
	Error      string            `json:"error"`
	Pagination models.Pagination `json:"pagination"`
}

// listCore is the state shared by every resource store. Fetches are stamped
// from a monotonic counter; a response that is no longer the latest issued
// for the store is discarded entirely, its error included.
type listCore[T any] struct {
	mu         sync.Mutex
	items      []T
	loading    bool
	err        string
	pagination models.Pagination
	seq        uint64
}

// begin marks a fetch in flight and returns its fence stamp.
func (s *listCore[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	s.err = ""
	return s.seq
}

// settle records the outcome of the fetch stamped seq. It reports whether
// the response was still the latest and therefore applied.
func (s *listCore[T]) settle(seq uint64, items []T, p models.Pagination, havePagination bool, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.loading = false
	if err != nil {
		// Stale-but-visible: prior items stay untouched.
		s.err = err.Error()
		return true
	}
	s.err = ""
	s.items = items
	if havePagination {
		s.pagination = p
	}
	return true
}

// replaceWhere swaps the first matching record in place, preserving its
// position. An absent record is not inserted; the caller re-fetches if it
// needs to see the change.
func (s *listCore[T]) replaceWhere(match func(*T) bool, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if match(&s.items[i]) {
			s.items[i] = item
			return true
		}
	}
	return false
}

// mutateWhere edits the first matching record in place.
func (s *listCore[T]) mutateWhere(match func(*T) bool, edit func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if match(&s.items[i]) {
			edit(&s.items[i])
			return true
		}
	}
	return false
}

func (s *listCore[T]) snapshot() ListSnapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return ListSnapshot[T]{
		Items:      items,
		Loading:    s.loading,
		Error:      s.err,
		Pagination: s.pagination,
	}
}
