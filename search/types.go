package search

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors returned by the search engine.
var (
	// ErrBrokenChain indicates that path reconstruction followed a predecessor
	// link to a node that was never settled, or around a cycle. It signals a
	// broken storage or map implementation, never an unreachable goal.
	ErrBrokenChain = errors.New("search: predecessor chain does not lead back to the start")

	// ErrCostOverflow indicates that an accumulated cost came out smaller than
	// the cost it was built from: integer wrap-around or a negative edge.
	ErrCostOverflow = errors.New("search: accumulated cost overflowed or decreased")
)

// Cost is the set of numeric types usable as edge and path costs.
// The zero value is the cost of the empty path.
//
// Sums are not widened: pick a type that holds the cost of the longest
// path. A sum that wraps around stops the search with ErrCostOverflow,
// so with narrow types such as uint8 a search can fail where a wider
// type would find the path.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Comparator orders two accumulated costs. It is the comparison context of
// the search: one value is threaded through New and carried on every
// frontier entry, so an ordering may depend on state held by the comparator.
// Compare returns a negative number when a sorts before b, zero when they
// are equivalent and a positive number otherwise.
type Comparator[C Cost] interface {
	Compare(a, b C) int
}

// Natural is the trivial comparison context: plain numeric ordering.
type Natural[C Cost] struct{}

// Compare implements Comparator.
func (Natural[C]) Compare(a, b C) int { return cmp.Compare(a, b) }

// Map is the capability set of an explorable graph.
//
// IsValid reports whether node is an in-bounds, addressable location; it
// does not imply the node is traversable.
//
// NeighborsOf yields every traversable neighbor of a valid node together with
// the cost of the edge leading there. A fresh sequence is produced per call.
// Behavior for an invalid node is left to the implementation.
type Map[R comparable, C Cost] interface {
	IsValid(node R) bool
	NeighborsOf(node R) iter.Seq2[R, C]
}

// Storage is per-node scratch memory allocated by a map, with one slot per
// node initialized to T's zero value.
//
// IsValid is a pure bounds check of the storage itself. Get and Set on a
// node for which IsValid is false have unspecified behavior.
type Storage[R comparable, T any] interface {
	IsValid(node R) bool
	Get(node R) T
	Set(node R, value T)
}

// VisitedItem records how a settled node was reached.
type VisitedItem[R comparable, C Cost] struct {
	Cost    C    // accumulated cost from the start node
	From    R    // predecessor on the shortest path; meaningful only if HasFrom
	HasFrom bool // false only for the start node
}

// Visited is the storage slot type used by a PathFinder. Its zero value
// means "not settled yet".
type Visited[R comparable, C Cost] struct {
	item    VisitedItem[R, C]
	settled bool
}

// Settle returns a settled slot holding item.
func Settle[R comparable, C Cost](item VisitedItem[R, C]) Visited[R, C] {
	return Visited[R, C]{item: item, settled: true}
}

// Settled reports whether the slot has been written.
func (v Visited[R, C]) Settled() bool { return v.settled }

// Item returns the recorded item and whether the slot is settled.
func (v Visited[R, C]) Item() (VisitedItem[R, C], bool) { return v.item, v.settled }

// String renders the slot as a three-wide cost cell, blank when unsettled.
// Grid storages use it to print cost heat maps.
func (v Visited[R, C]) String() string {
	if !v.settled {
		return fmt.Sprintf("%3s ", "")
	}

	return fmt.Sprintf("%03v ", v.item.Cost)
}

// Status is the tag of a State.
type Status int

const (
	// Computing means the search has neither found the goal nor run dry.
	Computing Status = iota
	// NoPathFound means the frontier ran empty before the goal was settled.
	NoPathFound
	// PathFound means the goal was settled and a PathResult is available.
	PathFound
)

// String returns a lower-case name of the status.
func (s Status) String() string {
	switch s {
	case Computing:
		return "computing"
	case NoPathFound:
		return "no path found"
	case PathFound:
		return "path found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Done reports whether s is terminal.
func (s Status) Done() bool { return s != Computing }

// PathResult describes a shortest path, built once when the goal is settled.
type PathResult[R comparable, C Cost] struct {
	Path      []R // start .. goal inclusive
	Start     R
	Goal      R
	TotalCost C
}

// State is a snapshot of a PathFinder. Result is non-nil iff Status is
// PathFound, and the same pointer is returned by every later Step.
type State[R comparable, C Cost] struct {
	Status Status
	Result *PathResult[R, C]
}

// Done reports whether the state is terminal.
func (s State[R, C]) Done() bool { return s.Status.Done() }

// BacktrackError reports a predecessor link that cannot be followed: it
// points at an unsettled node, or (Cycle) it closes a loop.
type BacktrackError[R comparable] struct {
	Node    R    // node whose predecessor was followed
	Missing R    // predecessor that ends the walk
	Cycle   bool // the chain revisits nodes instead of reaching the start
}

// Error implements error.
func (e *BacktrackError[R]) Error() string {
	if e.Cycle {
		return fmt.Sprintf("%v: cycle at %v -> %v", ErrBrokenChain, e.Node, e.Missing)
	}

	return fmt.Sprintf("%v: %v -> %v", ErrBrokenChain, e.Node, e.Missing)
}

// Unwrap lets errors.Is match ErrBrokenChain.
func (e *BacktrackError[R]) Unwrap() error { return ErrBrokenChain }
