package container

import "github.com/luxfi/symcore/utils/linked"

// NodeList is an ordered, mutable sequence supporting bidirectional
// iteration and removal of an arbitrary element without a full rescan.
// Built atop utils/linked.List: a NodeList does not intern its elements
// and is a reference type — callers share it by pointer and release it
// explicitly (Clear) when done, matching spec.md 4.A.
type NodeList[T any] struct {
	l *linked.List[T]
}

// NewNodeList returns an empty NodeList.
func NewNodeList[T any]() *NodeList[T] {
	return &NodeList[T]{l: linked.NewList[T]()}
}

// Len returns the number of elements in the list.
func (l *NodeList[T]) Len() int {
	return l.l.Len()
}

// Iterator walks a NodeList from front to back or back to front.
type Iterator[T any] struct {
	cur *linked.ListNode[T]
}

// Begin returns an iterator positioned at the front of the list.
func (l *NodeList[T]) Begin() Iterator[T] {
	return Iterator[T]{cur: l.l.Front()}
}

// End returns an iterator positioned at the back of the list.
func (l *NodeList[T]) End() Iterator[T] {
	return Iterator[T]{cur: l.l.Back()}
}

// IsDone reports whether the iterator has run off either end of the list.
func (it Iterator[T]) IsDone() bool {
	return it.cur == nil
}

// Elem returns the value the iterator is positioned at.
func (it Iterator[T]) Elem() T {
	return it.cur.Value
}

// Next advances the iterator toward the back of the list.
func (it Iterator[T]) Next() Iterator[T] {
	if it.cur == nil {
		return it
	}
	return Iterator[T]{cur: it.cur.Next}
}

// Prev moves the iterator toward the front of the list.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.cur == nil {
		return it
	}
	return Iterator[T]{cur: it.cur.Prev}
}

// PushFront inserts value at the front of the list.
func (l *NodeList[T]) PushFront(value T) {
	l.l.PushFront(value)
}

// PushBack inserts value at the back of the list.
func (l *NodeList[T]) PushBack(value T) {
	l.l.PushBack(value)
}

// RemoveAt removes the element the iterator is positioned at and returns
// an iterator to the element that followed it.
func (l *NodeList[T]) RemoveAt(it Iterator[T]) Iterator[T] {
	node := it.cur
	if node == nil {
		return it
	}
	next := node.Next
	l.l.Remove(node)
	return Iterator[T]{cur: next}
}

// Clear empties the list.
func (l *NodeList[T]) Clear() {
	l.l.Clear()
}

// Slice returns the list's elements front-to-back as a plain slice.
func (l *NodeList[T]) Slice() []T {
	out := make([]T, 0, l.l.Len())
	for it := l.Begin(); !it.IsDone(); it = it.Next() {
		out = append(out, it.Elem())
	}
	return out
}
