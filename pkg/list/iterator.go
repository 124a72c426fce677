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

// Position is a cursor into a List. It is implemented by Iterator and
// ConstIterator only.
type Position[T any] interface {
	ref() *node[T]
}

// Iterator is a forward iterator with mutable access to the element.
// Iterators are compared by the element they refer to. Two End iterators
// are always equal.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) ref() *node[T] {
	return it.n
}

// Value returns the element. It panics on End and BeforeBegin.
func (it Iterator[T]) Value() T {
	return mustDeref(it.n).value
}

// Ptr returns a pointer to the element, valid until the element is removed.
func (it Iterator[T]) Ptr() *T {
	return &mustDeref(it.n).value
}

func (it Iterator[T]) Set(v T) {
	mustDeref(it.n).value = v
}

// Next returns the iterator to the following element.
// It panics if it is End.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: mustAdvance(it.n)}
}

// Advance moves it to the following element and returns its prior position.
func (it *Iterator[T]) Advance() Iterator[T] {
	old := *it
	it.n = mustAdvance(it.n)
	return old
}

func (it Iterator[T]) IsEnd() bool {
	return it.n == nil
}

func (it Iterator[T]) Equal(p Position[T]) bool {
	return it.n == p.ref()
}

// Const returns a read-only iterator to the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator is a forward iterator with read-only access to the element.
// There is no way of turning it back into an Iterator.
type ConstIterator[T any] struct {
	n *node[T]
}

func (it ConstIterator[T]) ref() *node[T] {
	return it.n
}

// Value returns a copy of the element. It panics on End and BeforeBegin.
func (it ConstIterator[T]) Value() T {
	return mustDeref(it.n).value
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: mustAdvance(it.n)}
}

func (it *ConstIterator[T]) Advance() ConstIterator[T] {
	old := *it
	it.n = mustAdvance(it.n)
	return old
}

func (it ConstIterator[T]) IsEnd() bool {
	return it.n == nil
}

func (it ConstIterator[T]) Equal(p Position[T]) bool {
	return it.n == p.ref()
}

func mustDeref[T any](n *node[T]) *node[T] {
	if n == nil {
		panic("list: dereference of the past-the-end iterator")
	}
	if n.head {
		panic("list: dereference of the before-begin iterator")
	}
	return n
}

func mustAdvance[T any](n *node[T]) *node[T] {
	if n == nil {
		panic("list: advance of the past-the-end iterator")
	}
	return n.next
}
