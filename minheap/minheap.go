// Package minheap provides a generic binary min-heap with stable tie-breaking:
// among elements that compare equal under the heap's less function, the one
// inserted first is extracted first.
//
// Stability is what makes partial-tree MST runs deterministic: two candidate
// arcs of the same weight are always taken in the order they were offered.
//
// The heap is built on container/heap; every element carries an insertion
// sequence number used as the secondary key.
//
// Complexity:
//   - Insert, DeleteMin: O(log n).
//   - Merge(other): O(m log m + m log(n+m)) for m = other.Len().
package minheap

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrEmpty is returned by DeleteMin when the heap holds no elements.
var ErrEmpty = errors.New("minheap: heap is empty")

// entry pairs a value with its insertion sequence number.
type entry[T any] struct {
	val T
	seq uint64
}

// entries implements heap.Interface ordered by (less, seq).
type entries[T any] struct {
	items []entry[T]
	less  func(a, b T) bool
}

// Len returns the number of stored entries.
func (e *entries[T]) Len() int { return len(e.items) }

// Less orders by the user key first, then by insertion sequence.
func (e *entries[T]) Less(i, j int) bool {
	a, b := e.items[i], e.items[j]
	if e.less(a.val, b.val) {
		return true
	}
	if e.less(b.val, a.val) {
		return false
	}

	return a.seq < b.seq
}

// Swap swaps entries at indices i and j.
func (e *entries[T]) Swap(i, j int) { e.items[i], e.items[j] = e.items[j], e.items[i] }

// Push appends a new entry; called by heap.Push.
func (e *entries[T]) Push(x any) { e.items = append(e.items, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop after moving the minimum there.
func (e *entries[T]) Pop() any {
	old := e.items
	n := len(old)
	it := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the reference for the GC
	e.items = old[:n-1]

	return it
}

// Heap is a stable min-heap of T. The zero value is not usable; call New.
type Heap[T any] struct {
	q    entries[T]
	next uint64 // sequence number for the next Insert
}

// New returns an empty heap ordered by less. less must be a strict weak
// ordering; elements for which neither less(a,b) nor less(b,a) holds are
// extracted in insertion order.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{q: entries[T]{less: less}}
}

// Len returns the number of elements in h.
func (h *Heap[T]) Len() int { return h.q.Len() }

// Insert adds x to the heap. It always succeeds.
func (h *Heap[T]) Insert(x T) {
	heap.Push(&h.q, entry[T]{val: x, seq: h.next})
	h.next++
}

// DeleteMin removes and returns the smallest element, or ErrEmpty.
func (h *Heap[T]) DeleteMin() (T, error) {
	if h.q.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return heap.Pop(&h.q).(entry[T]).val, nil
}

// Merge moves every element of other into h and leaves other empty.
//
// other's elements are re-inserted in their original insertion order, so
// among equal keys they keep their relative order and rank after everything
// already in h. Merging a heap into itself is a no-op.
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || other == h {
		return
	}

	moved := other.q.items
	sort.Slice(moved, func(i, j int) bool { return moved[i].seq < moved[j].seq })
	for _, it := range moved {
		h.Insert(it.val)
	}

	other.q.items = nil
	other.next = 0
}
