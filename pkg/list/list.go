/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of slist.
 *
 * slist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * slist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package list

import "fmt"

// List is a singly linked list.
// The zero value is an empty list ready to use. A List must not be copied
// by value, use Clone or Assign instead.
type List[T any] struct {
	_    noCopy
	head node[T] // sentinel, head.next is the first element.
	size int
}

// noCopy makes go vet's copylocks check report a List copied by value.
// A copy would share the chain of the original but not its size.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type node[T any] struct {
	next  *node[T]
	value T
	head  bool
}

// New returns an empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Of returns a list holding values in the same order.
func Of[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// FromSlice returns a list holding a copy of every element of s, in order.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	tail := l.BeforeBegin()
	for _, v := range s {
		tail = l.InsertAfter(tail, v)
	}
	return l
}

func (l *List[T]) sentinel() *node[T] {
	l.head.head = true
	return &l.head
}

// Len returns the number of elements in O(1).
func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) Empty() bool {
	return l.size == 0
}

// PushFront inserts v at the front of the list. Existing iterators stay valid.
func (l *List[T]) PushFront(v T) {
	l.InsertAfter(l.BeforeBegin(), v)
}

// PopFront removes the first element. It panics if the list is empty.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		panic("list: pop front on an empty list")
	}
	l.EraseAfter(l.BeforeBegin())
}

// InsertAfter inserts v right after pos and returns an iterator to it.
// pos must be the before-begin iterator or an element of l.
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	p := pos.ref()
	if p == nil {
		panic("list: insert after the past-the-end iterator")
	}
	n := &node[T]{next: p.next, value: v}
	p.next = n
	l.size++
	return Iterator[T]{n: n}
}

// EraseAfter removes the element right after pos and returns an iterator
// to the element that follows the removed one, which may be End.
// Iterators to the removed element are invalidated.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	p := pos.ref()
	if p == nil {
		panic("list: erase after the past-the-end iterator")
	}
	victim := p.next
	if victim == nil {
		panic("list: erase after the last element")
	}
	p.next = victim.next
	l.size--
	detach(victim)
	return Iterator[T]{n: p.next}
}

// Clear removes all elements in O(N).
func (l *List[T]) Clear() {
	n := l.head.next
	l.head.next = nil
	l.size = 0
	for n != nil {
		next := n.next
		detach(n)
		n = next
	}
}

// detach drops everything a removed node refers to, so a stale iterator
// never keeps the rest of a chain alive.
func detach[T any](n *node[T]) {
	var zero T
	n.next = nil
	n.value = zero
}

// BeforeBegin returns an iterator to the position before the first element.
// It can only be used as a position of InsertAfter and EraseAfter.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: l.sentinel()}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.sentinel()}
}

func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End returns the past-the-end iterator. It is never dereferenceable.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head.next}
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// Clone returns an independent copy of l.
func (l *List[T]) Clone() *List[T] {
	return l.CloneFunc(nil)
}

// CloneFunc returns an independent copy of l, every element is copied by f.
// A nil f copies elements by assignment.
// If f panics, nothing but the partial copy is affected.
func (l *List[T]) CloneFunc(f func(v T) T) *List[T] {
	tmp := New[T]()
	tail := tmp.BeforeBegin()
	for n := l.head.next; n != nil; n = n.next {
		v := n.value
		if f != nil {
			v = f(v)
		}
		tail = tmp.InsertAfter(tail, v)
	}
	return tmp
}

// Assign replaces the content of l with a copy of src.
func (l *List[T]) Assign(src *List[T]) {
	l.AssignFunc(src, nil)
}

// AssignFunc replaces the content of l with a copy of src, every element is
// copied by f. The copy is fully built before l is touched, l is unchanged
// if f panics. Assigning a list to itself is a noop.
func (l *List[T]) AssignFunc(src *List[T], f func(v T) T) {
	if l == src {
		return
	}
	tmp := src.CloneFunc(f)
	l.Swap(tmp)
	tmp.Clear()
}

// Swap exchanges the elements of l and other in O(1).
// Iterators to elements follow their elements.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the elements of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Range calls f for every element in order until f returns false.
func (l *List[T]) Range(f func(v T) bool) {
	for n := l.head.next; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// Values returns all elements in order.
func (l *List[T]) Values() []T {
	s := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}
