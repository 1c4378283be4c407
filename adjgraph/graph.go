// Package adjgraph is a string-keyed, weighted, directed adjacency list that
// satisfies search.Map, so the search engine can run on arbitrary graphs and
// not only on grids.
//
// Vertices are identified by non-empty strings. Edges are kept per source
// vertex in insertion order, and NeighborsOf yields them in that order, which
// makes searches reproducible. Parallel edges and self-loops are allowed.
//
// Errors:
//
//	ErrEmptyID        - vertex ID is the empty string.
//	ErrNegativeWeight - edge weight is below zero.
//	ErrVertexNotFound - NewFinder was given an unknown start or goal.
//
// All methods are safe for concurrent use; mutations take a write lock and
// queries a read lock.
package adjgraph

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/katalvlaran/pathfind/search"
)

// Sentinel errors for adjacency graph operations.
var (
	// ErrEmptyID indicates that a vertex ID is the empty string.
	ErrEmptyID = errors.New("adjgraph: vertex ID is empty")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("adjgraph: negative edge weight")

	// ErrVertexNotFound indicates a reference to a vertex that does not exist.
	ErrVertexNotFound = errors.New("adjgraph: vertex not found")
)

// Edge is an outgoing edge as stored in the adjacency list.
type Edge[C search.Cost] struct {
	To     string
	Weight C
}

// Graph is a directed weighted graph. The zero value is not usable; call New.
type Graph[C search.Cost] struct {
	mu    sync.RWMutex
	order []string             // vertex IDs in insertion order
	adj   map[string][]Edge[C] // vertex ID → outgoing edges
}

// New returns an empty graph.
//
// Complexity: O(1)
func New[C search.Cost]() *Graph[C] {
	return &Graph[C]{adj: make(map[string][]Edge[C])}
}

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
//
// Complexity: O(1)
func (g *Graph[C]) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph[C]) addVertexLocked(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
}

// AddEdge appends a directed edge from → to with weight w.
// Missing endpoints are added first.
//
// Complexity: O(1) amortized.
func (g *Graph[C]) AddEdge(from, to string, w C) error {
	if from == "" || to == "" {
		return ErrEmptyID
	}
	if w < 0 {
		return fmt.Errorf("%w: %s -> %s (%v)", ErrNegativeWeight, from, to, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adj[from] = append(g.adj[from], Edge[C]{To: to, Weight: w})

	return nil
}

// HasVertex reports whether id is a vertex of g.
//
// Complexity: O(1)
func (g *Graph[C]) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// IsValid implements search.Map. Every vertex is addressable.
func (g *Graph[C]) IsValid(id string) bool { return g.HasVertex(id) }

// Vertices returns the vertex IDs in insertion order.
func (g *Graph[C]) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// Edges returns a copy of the outgoing edges of id, nil for unknown vertices.
func (g *Graph[C]) Edges(id string) []Edge[C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge[C](nil), g.adj[id]...)
}

// NeighborsOf implements search.Map. It yields (to, weight) for every
// outgoing edge of id in insertion order; an unknown id yields nothing.
// The edge list is snapshotted when iteration starts, so the caller may
// mutate g while ranging.
//
// Complexity: O(out-degree)
func (g *Graph[C]) NeighborsOf(id string) iter.Seq2[string, C] {
	return func(yield func(string, C) bool) {
		for _, e := range g.Edges(id) {
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}

// NewFinder returns a search from start to goal over g backed by a fresh
// MapStorage. Both endpoints must be vertices.
func NewFinder[C search.Cost](
	g *Graph[C],
	start, goal string,
	opts ...search.Option[string, C],
) (*search.PathFinder[string, C, *MapStorage[search.Visited[string, C]]], error) {
	for _, id := range []string{start, goal} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	s := NewStorage[search.Visited[string, C]](g)

	return search.New(start, goal, s, search.Comparator[C](search.Natural[C]{}), opts...), nil
}
