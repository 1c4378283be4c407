package search

import (
	"fmt"
	"slices"
)

// PathFinder is an incremental uniform-cost search from Start to Goal.
// R is the node reference type, C the cost type and S the concrete storage
// type, which Finish and Visited hand back without any type assertion.
type PathFinder[R comparable, C Cost, S Storage[R, Visited[R, C]]] struct {
	start   R
	goal    R
	cmp     Comparator[C]
	visited S
	queue   frontier[R, C]
	state   State[R, C]
	settled int // slots written so far; bounds the backtracking walk
	err     error
	options Options[R, C]
}

// New returns a finder in the Computing state whose frontier holds only the
// start node at zero cost. Nothing is settled until the first Step.
// A nil comparator selects Natural ordering. New does not touch any map, so
// validating start and goal is left to the caller.
//
// Complexity: O(1).
func New[R comparable, C Cost, S Storage[R, Visited[R, C]]](
	start, goal R,
	visited S,
	cmp Comparator[C],
	opts ...Option[R, C],
) *PathFinder[R, C, S] {
	cfg := DefaultOptions[R, C]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cmp == nil {
		cmp = Natural[C]{}
	}

	f := &PathFinder[R, C, S]{
		start:   start,
		goal:    goal,
		cmp:     cmp,
		visited: visited,
		state:   State[R, C]{Status: Computing},
		options: cfg,
	}
	f.queue.push(entry[R, C]{cmp: cmp, node: start})

	return f
}

// Step performs at most one expansion against m and returns the new state.
//
//  1. A terminal finder returns its state unchanged; a failed one its error.
//  2. An empty frontier moves the finder to NoPathFound.
//  3. A popped entry for an already settled node is discarded.
//  4. Otherwise the node is settled. If it is the goal the path is rebuilt
//     and the finder moves to PathFound; else every unsettled neighbor is
//     pushed with cost = settled cost + edge cost. A sum that wraps around
//     fails the finder with ErrCostOverflow.
//
// Complexity: O(d log F), d = neighbors yielded, F = frontier size.
func (f *PathFinder[R, C, S]) Step(m Map[R, C]) (State[R, C], error) {
	// 1) failed or terminal: nothing to do
	if f.err != nil {
		return f.state, f.err
	}
	if f.state.Done() {
		return f.state, nil
	}

	// 2) pop; an empty frontier ends the search
	e, ok := f.queue.pop()
	if !ok {
		f.finish(State[R, C]{Status: NoPathFound})
		return f.state, nil
	}

	// 3) stale duplicate of a settled node
	if f.visited.Get(e.node).Settled() {
		f.options.OnDiscard(e.node)
		return f.state, nil
	}

	// 4) settle
	item := VisitedItem[R, C]{Cost: e.cost, From: e.from, HasFrom: e.hasFrom}
	f.visited.Set(e.node, Settle(item))
	f.settled++
	f.options.OnSettle(e.node, item)

	// 5) goal reached: rebuild the path
	if e.node == f.goal {
		path, err := f.backtrack()
		if err != nil {
			f.err = err
			return f.state, err
		}
		f.finish(State[R, C]{
			Status: PathFound,
			Result: &PathResult[R, C]{
				Path:      path,
				Start:     f.start,
				Goal:      f.goal,
				TotalCost: e.cost,
			},
		})
		return f.state, nil
	}

	// 6) relax every unsettled neighbor
	for next, edge := range m.NeighborsOf(e.node) {
		if f.visited.Get(next).Settled() {
			continue
		}
		cost := e.cost + edge
		if cost < e.cost {
			f.err = fmt.Errorf("%w: %v -> %v (%v + %v)", ErrCostOverflow, e.node, next, e.cost, edge)
			return f.state, f.err
		}
		f.queue.push(entry[R, C]{
			cmp:     f.cmp,
			cost:    cost,
			node:    next,
			from:    e.node,
			hasFrom: true,
		})
		f.options.OnPush(next, cost)
	}

	return f.state, nil
}

// Finish steps until the search terminates and returns the final state
// together with the storage. It has no logic of its own beyond the loop,
// and the finder should not be used afterwards.
func (f *PathFinder[R, C, S]) Finish(m Map[R, C]) (State[R, C], S, error) {
	for {
		st, err := f.Step(m)
		if err != nil || st.Done() {
			return st, f.visited, err
		}
	}
}

// backtrack walks From links from the goal to the start node. A valid
// chain never holds more nodes than have been settled, so a longer walk
// means the links form a cycle.
func (f *PathFinder[R, C, S]) backtrack() ([]R, error) {
	path := []R{f.goal}
	cur := f.goal
	for {
		item, ok := f.visited.Get(cur).Item()
		if !ok {
			node := f.goal
			if len(path) > 1 {
				node = path[len(path)-2]
			}
			return nil, &BacktrackError[R]{Node: node, Missing: cur}
		}
		if !item.HasFrom {
			break
		}
		if len(path) >= f.settled {
			return nil, &BacktrackError[R]{Node: cur, Missing: item.From, Cycle: true}
		}
		path = append(path, item.From)
		cur = item.From
	}
	slices.Reverse(path)

	return path, nil
}

func (f *PathFinder[R, C, S]) finish(st State[R, C]) {
	f.state = st
	f.options.OnFinish(st.Status)
}

// State returns the current state.
func (f *PathFinder[R, C, S]) State() State[R, C] { return f.state }

// Err returns the invariant violation that stopped the search, if any.
func (f *PathFinder[R, C, S]) Err() error { return f.err }

// Visited returns the storage holding every settled node.
func (f *PathFinder[R, C, S]) Visited() S { return f.visited }

// Start returns the start node.
func (f *PathFinder[R, C, S]) Start() R { return f.start }

// Goal returns the goal node.
func (f *PathFinder[R, C, S]) Goal() R { return f.goal }

// FrontierLen returns the number of pending frontier entries, stale
// duplicates included.
func (f *PathFinder[R, C, S]) FrontierLen() int { return f.queue.len() }
