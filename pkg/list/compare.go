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

import "golang.org/x/exp/constraints"

// Equal reports whether a and b have the same length and equal elements
// in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically. It returns -1 if a < b,
// 1 if a > b and 0 if they are equivalent.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmpOrdered[T])
}

// CompareFunc is like Compare but compares elements with cmp, which returns
// a negative number, zero or a positive number.
// The first differing pair decides. Otherwise, the shorter list is less.
func CompareFunc[T any](a, b *List[T], cmp func(x, y T) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.value, y.value); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

// cmpOrdered only uses <, elements that are not less than each other
// (NaNs included) are equivalent.
func cmpOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case y < x:
		return 1
	default:
		return 0
	}
}

func Less[T constraints.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

func LessOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

func Greater[T constraints.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}
