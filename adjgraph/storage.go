package adjgraph

import "github.com/katalvlaran/pathfind/search"

// MapStorage is per-vertex scratch memory keyed by vertex ID. Its key set is
// fixed to the vertices of the graph at creation time; unwritten slots read
// as T's zero value.
type MapStorage[T any] struct {
	valid map[string]struct{}
	data  map[string]T
}

var _ search.Storage[string, search.Visited[string, int]] = (*MapStorage[search.Visited[string, int]])(nil)

// NewStorage allocates a storage with one slot per vertex of g.
//
// Complexity: O(V)
func NewStorage[T any, C search.Cost](g *Graph[C]) *MapStorage[T] {
	ids := g.Vertices()
	s := &MapStorage[T]{
		valid: make(map[string]struct{}, len(ids)),
		data:  make(map[string]T, len(ids)),
	}
	for _, id := range ids {
		s.valid[id] = struct{}{}
	}

	return s
}

// IsValid reports whether id was a vertex when the storage was created.
func (s *MapStorage[T]) IsValid(id string) bool {
	_, ok := s.valid[id]
	return ok
}

// Get returns the slot of id.
func (s *MapStorage[T]) Get(id string) T { return s.data[id] }

// Set writes the slot of id.
func (s *MapStorage[T]) Set(id string, v T) { s.data[id] = v }

// Len returns the number of slots.
func (s *MapStorage[T]) Len() int { return len(s.valid) }
