package partialtree

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/mstree/core"
)

// node is one cell of the circular list.
type node struct {
	tree *Tree
	next *node
}

// List is a circular singly-linked list of partial trees.
//
// rear points at the last node and rear.next at the first; an empty list has
// rear == nil and size 0. size always equals the number of nodes.
type List struct {
	rear  *node
	size  int
	roots *core.Forest
}

// NewList returns an empty list whose membership queries resolve roots in
// roots.
func NewList(roots *core.Forest) *List {
	return &List{roots: roots}
}

// Forest returns the root table the list resolves membership against.
func (l *List) Forest() *core.Forest { return l.roots }

// Size returns the number of trees in l. Complexity: O(1).
func (l *List) Size() int { return l.size }

// Append adds t at the back of the list; it becomes the new rear.
// Complexity: O(1).
func (l *List) Append(t *Tree) {
	n := &node{tree: t}
	if l.rear == nil {
		n.next = n
	} else {
		n.next = l.rear.next
		l.rear.next = n
	}
	l.rear = n
	l.size++
}

// Remove removes and returns the tree at the front of the list.
//
// Errors: ErrEmptyList if the list is empty.
// Complexity: O(1).
func (l *List) Remove() (*Tree, error) {
	if l.rear == nil {
		return nil, ErrEmptyList
	}

	front := l.rear.next
	if front == l.rear {
		l.rear = nil
	} else {
		l.rear.next = front.next
	}
	l.size--

	return front.tree, nil
}

// RemoveTreeContaining removes and returns the first tree, scanning from the
// front, whose anchor resolves to the same root as v.
//
// If the removed node was the rear, its predecessor becomes the rear.
//
// Errors: ErrNoMatch after a full circuit without a match, on an empty list,
// or for a nil vertex.
// Complexity: O(size) list steps, each resolving one root chain.
func (l *List) RemoveTreeContaining(v *core.Vertex) (*Tree, error) {
	if v == nil {
		return nil, fmt.Errorf("nil vertex: %w", ErrNoMatch)
	}
	if l.rear == nil {
		return nil, fmt.Errorf("vertex %s in empty list: %w", v, ErrNoMatch)
	}

	target := l.roots.Root(v.Index)
	prev, ptr := l.rear, l.rear.next
	for i := 0; i < l.size; i++ {
		if l.roots.Root(ptr.tree.root.Index) == target {
			switch {
			case ptr == prev: // single node
				l.rear = nil
			default:
				prev.next = ptr.next
				if ptr == l.rear {
					l.rear = prev
				}
			}
			l.size--

			return ptr.tree, nil
		}
		prev, ptr = ptr, ptr.next
	}

	return nil, fmt.Errorf("vertex %s: %w", v, ErrNoMatch)
}

// Iterator walks a List front to back exactly once.
type Iterator struct {
	ptr  *node
	rest int
}

// Iterator returns a fresh one-shot iterator positioned at the front.
// Mutating the list while iterating is not supported.
func (l *List) Iterator() *Iterator {
	it := &Iterator{rest: l.size}
	if l.rear != nil {
		it.ptr = l.rear.next
	}

	return it
}

// Next returns the next tree and true, or nil and false once every tree
// present at construction time has been produced.
func (it *Iterator) Next() (*Tree, bool) {
	if it.rest <= 0 {
		return nil, false
	}
	t := it.ptr.tree
	it.ptr = it.ptr.next
	it.rest--

	return t, true
}

// All returns a range-over-func sequence of the trees, front to back.
// Each call to the sequence starts a fresh Iterator.
func (l *List) All() iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		it := l.Iterator()
		for t, ok := it.Next(); ok; t, ok = it.Next() {
			if !yield(t) {
				return
			}
		}
	}
}
