package search

import "container/heap"

// entry is a pending expansion. It carries the comparator it is ordered by.
type entry[R comparable, C Cost] struct {
	cmp     Comparator[C]
	cost    C
	node    R
	from    R
	hasFrom bool
	seq     uint64 // insertion order, breaks cost ties
}

// entryHeap implements heap.Interface as a min-heap on cost, then seq.
type entryHeap[R comparable, C Cost] []entry[R, C]

func (h entryHeap[R, C]) Len() int { return len(h) }

func (h entryHeap[R, C]) Less(i, j int) bool {
	if c := h[i].cmp.Compare(h[i].cost, h[j].cost); c != 0 {
		return c < 0
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[R, C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[R, C]) Push(x any) { *h = append(*h, x.(entry[R, C])) }

func (h *entryHeap[R, C]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[R, C]{} // drop the comparator reference
	*h = old[:n-1]

	return e
}

// frontier wraps entryHeap with typed push/pop and sequence numbering.
type frontier[R comparable, C Cost] struct {
	items entryHeap[R, C]
	next  uint64
}

func (f *frontier[R, C]) push(e entry[R, C]) {
	e.seq = f.next
	f.next++
	heap.Push(&f.items, e)
}

func (f *frontier[R, C]) pop() (entry[R, C], bool) {
	if len(f.items) == 0 {
		return entry[R, C]{}, false
	}

	return heap.Pop(&f.items).(entry[R, C]), true
}

func (f *frontier[R, C]) len() int { return len(f.items) }
