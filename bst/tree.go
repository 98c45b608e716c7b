//go:build !solution

package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V] // keys strictly less than key
	right *node[K, V] // keys greater than or equal to key
}

// Tree is an unbalanced binary search tree. Values are ordered by the key
// extracted at insertion time. Equal keys are kept: a later value goes to the
// right of every earlier one, so Search finds the earliest and All yields
// them in insertion order.
//
// The zero value is not usable, create trees with New.
type Tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	key  func(V) K
	size int
}

// New creates an empty tree ordered by key(v).
func New[K constraints.Ordered, V any](key func(V) K) *Tree[K, V] {
	return &Tree[K, V]{key: key}
}

// Insert adds v to the tree. No rebalancing is done, so the shape depends
// on insertion order only; sorted input makes a chain.
func (t *Tree[K, V]) Insert(v V) {
	n := &node[K, V]{key: t.key(v), value: v}

	link := &t.root
	for *link != nil {
		if n.key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = n
	t.size++
}

// Search returns the value stored under k. The second result is false when
// no such key has been inserted.
func (t *Tree[K, V]) Search(k K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case k == n.key:
			return n.value, true
		case k < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	var zero V
	return zero, false
}

// All returns an in-order iterator over the stored values. The sequence may be
// ranged over any number of times; the tree must not be modified while it runs.
func (t *Tree[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		var stack []*node[K, V]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// Len returns the number of inserted values.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*node[K, V]{t.root}
	for len(level) > 0 {
		height++
		var next []*node[K, V]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}
