// Package pathfind is an incremental shortest-path engine for costed maps:
// start a search, advance it one expansion at a time, and render or inspect
// it between steps.
//
// 🚀 What is pathfind?
//
//	A small generic library built around one resumable Dijkstra state machine:
//		• search:  PathFinder with Step/Finish, pluggable Map and Storage
//		• gridmap: 2D grids with walls, per-cell costs, one-way cells and teleports
//		• adjgraph: string-keyed weighted digraphs on the same engine
//		• metrics: Prometheus counters fed by search hooks
//
// ✨ Why pathfind?
//
//   - Stepwise – at most one node is settled per Step, ideal for animation
//   - Representation-agnostic – any type with IsValid/NeighborsOf is a map
//   - Observable – OnPush, OnSettle, OnDiscard and OnFinish hooks
//
// Layout:
//
//	search/       — engine: PathFinder, Map, Storage, Visited, options
//	gridmap/      — grid realization, text/JSON codecs, nearest-cell Snapper
//	adjgraph/     — adjacency-list realization with map-backed storage
//	metrics/      — Prometheus collector wired through search options
//	cmd/gridpath/ — CLI that loads a grid and prints path and heat map
//
// Quick ASCII example (# is a wall, S start, G goal):
//
//	S.#G
//	..#.
//	....
//
// yields the 7-move route down the left side, across the bottom and up.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
