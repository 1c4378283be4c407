// Package search implements a steppable uniform-cost (Dijkstra) shortest-path
// search over any graph that satisfies the Map contract.
//
// Overview:
//
//   - A PathFinder owns a min-priority frontier and a per-node Storage of
//     Visited slots supplied by the caller (usually created by the map itself).
//   - Step performs at most one expansion and returns a State snapshot, so a
//     render loop can interleave a bounded amount of work per frame.
//   - Finish drives Step to a terminal state and hands the storage back.
//
// State machine:
//
//	Computing ──► NoPathFound   (frontier exhausted)
//	          └─► PathFound     (goal settled; path reconstructed)
//
// Terminal states are sticky: further Step calls return the same State
// without touching the frontier or the storage.
//
// Lazy deletion:
//
//   - A node may sit in the frontier several times with different costs.
//   - The first pop of a node settles it; later pops find the slot already
//     written and are discarded. Such a Step settles nothing.
//
// Cost ordering:
//
//   - Costs are any numeric type (Cost constraint). Ordering is delegated to
//     a Comparator carried on every frontier entry; Natural is plain ordering.
//   - Entries with equal cost pop in insertion order, so runs are reproducible.
//
// Errors:
//
//   - NoPathFound is a State, never an error.
//   - A predecessor chain that reaches an unsettled node, or loops, while
//     reconstructing the path is reported as *BacktrackError
//     (errors.Is ErrBrokenChain).
//   - An accumulated cost that wraps around is reported as ErrCostOverflow.
//   - Either way the finder stays failed and returns the same error from
//     every Step.
//
// Complexity:
//
//   - Step:   O(d log F), d = out-degree of the settled node, F = frontier size.
//   - Finish: O((V + E) log E) time, O(E) frontier memory under lazy deletion.
//
// Thread safety:
//
//   - A PathFinder is not safe for concurrent use. Independent finders over
//     the same read-only map are fine as long as each owns its storage.
package search
