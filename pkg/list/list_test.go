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

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkList verifies that size matches the chain and the chain ends.
func checkList[T any](t *testing.T, l *List[T]) {
	t.Helper()

	n := 0
	for e := l.head.next; e != nil; e = e.next {
		n++
		if n > l.size {
			t.Fatalf("chain is longer than size %d", l.size)
		}
	}
	if n != l.size {
		t.Fatalf("broken list, size %d, chain length %d", l.size, n)
	}
	if (l.head.next == nil) != l.Empty() {
		t.Fatal("broken list, sentinel link does not match Empty()")
	}
}

func allValue[T any](l *List[T]) []T {
	s := make([]T, 0)
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		s = append(s, it.Value())
	}
	return s
}

func TestList_ZeroValue(t *testing.T) {
	var l List[int]
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Begin().Equal(l.End()))
	checkList(t, &l)

	l.PushFront(1)
	assert.Equal(t, []int{1}, allValue(&l))
	checkList(t, &l)
}

func TestList_NoCopy(t *testing.T) {
	locker := reflect.TypeOf((*sync.Locker)(nil)).Elem()
	typ := reflect.TypeOf((*List[int])(nil)).Elem()
	found := false
	for i := 0; i < typ.NumField(); i++ {
		if reflect.PointerTo(typ.Field(i).Type).Implements(locker) {
			found = true
		}
	}
	assert.True(t, found, "List must carry a lock marker for go vet copylocks")
}

func TestList_PushFront(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.PushFront(i)
		assert.Equal(t, i+1, l.Len())
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, allValue(l))
	checkList(t, l)

	l.PopFront()
	l.PopFront()
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{2, 1, 0}, allValue(l))
	checkList(t, l)
}

func TestList_PushFront_KeepsIterators(t *testing.T) {
	l := Of(2, 3)
	first := l.Begin()
	l.PushFront(1)
	assert.Equal(t, 2, first.Value())
	assert.Equal(t, 1, l.Begin().Value())
	assert.True(t, l.Begin().Next().Equal(first))
}

func TestList_PopFront_Empty(t *testing.T) {
	l := New[int]()
	assert.Panics(t, func() { l.PopFront() })
	checkList(t, l)
}

func TestList_Clear(t *testing.T) {
	tests := []struct {
		name string
		in   []int
	}{
		{"empty", nil},
		{"one", []int{1}},
		{"many", []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromSlice(tt.in)
			staleBegin := l.Begin()
			l.Clear()
			assert.True(t, l.Empty())
			assert.Equal(t, 0, l.Len())
			assert.Empty(t, allValue(l))
			checkList(t, l)
			if !staleBegin.IsEnd() {
				assert.Nil(t, staleBegin.n.next, "removed node still links the chain")
			}

			l.PushFront(9)
			assert.Equal(t, []int{9}, allValue(l))
		})
	}
}

func TestOf(t *testing.T) {
	l := Of(1, 2, 3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, allValue(l))
	assert.Equal(t, []int{1, 2, 3}, l.Values())
	checkList(t, l)

	assert.True(t, Of[int]().Empty())
}

// at returns the cursor at pos, -1 is the before-begin position.
func at[T any](l *List[T], pos int) Iterator[T] {
	it := l.BeforeBegin()
	for i := -1; i < pos; i++ {
		it = it.Next()
	}
	return it
}

func TestList_InsertAfter(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		pos      int
		v        int
		wantList []int
	}{
		{"empty before begin", nil, -1, 9, []int{9}},
		{"before begin", []int{0, 1, 2}, -1, 9, []int{9, 0, 1, 2}},
		{"mid", []int{0, 1, 2}, 0, 9, []int{0, 9, 1, 2}},
		{"back", []int{0, 1, 2}, 2, 9, []int{0, 1, 2, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromSlice(tt.in)
			got := l.InsertAfter(at(l, tt.pos), tt.v)
			checkList(t, l)
			assert.Equal(t, tt.v, got.Value())
			assert.Equal(t, tt.wantList, allValue(l))
			assert.True(t, at(l, tt.pos).Next().Equal(got))
		})
	}
}

func TestList_InsertAfter_BeforeBeginIsPushFront(t *testing.T) {
	a, b := Of(1, 2), Of(1, 2)
	a.InsertAfter(a.BeforeBegin(), 0)
	b.PushFront(0)
	assert.True(t, Equal(a, b))
	assert.Equal(t, 3, a.Len())
}

func TestList_InsertAfter_End(t *testing.T) {
	l := Of(1)
	assert.Panics(t, func() { l.InsertAfter(l.End(), 2) })
	assert.Panics(t, func() { l.InsertAfter(l.CEnd(), 2) })
	checkList(t, l)
}

func TestList_EraseAfter(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		pos      int
		wantNext []int // value the returned iterator refers to, empty for End.
		wantList []int
	}{
		{"front", []int{0, 1, 2}, -1, []int{1}, []int{1, 2}},
		{"mid", []int{0, 1, 2}, 0, []int{2}, []int{0, 2}},
		{"back", []int{0, 1, 2}, 1, nil, []int{0, 1}},
		{"only", []int{0}, -1, nil, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromSlice(tt.in)
			got := l.EraseAfter(at(l, tt.pos))
			checkList(t, l)
			if len(tt.wantNext) == 0 {
				assert.True(t, got.IsEnd())
			} else {
				assert.Equal(t, tt.wantNext[0], got.Value())
			}
			assert.Equal(t, tt.wantList, allValue(l))
		})
	}
}

func TestList_EraseAfter_NoSuccessor(t *testing.T) {
	l := Of(1, 2)
	assert.Panics(t, func() { l.EraseAfter(at(l, 1)) })
	assert.Panics(t, func() { l.EraseAfter(l.End()) })
	assert.Panics(t, func() { New[int]().EraseAfter(New[int]().BeforeBegin()) })
	assert.Equal(t, []int{1, 2}, allValue(l))
}

func TestList_EraseAfter_UndoesInsertAfter(t *testing.T) {
	l := Of(1, 2, 3)
	for pos := -1; pos < 3; pos++ {
		p := at(l, pos)
		succ := p.Next()
		l.InsertAfter(p, 100)
		got := l.EraseAfter(p)
		assert.Equal(t, 3, l.Len())
		assert.True(t, got.Equal(succ))
		assert.True(t, p.Next().Equal(succ))
		assert.Equal(t, []int{1, 2, 3}, allValue(l))
	}
	checkList(t, l)
}

func TestList_EraseAfter_ConstPosition(t *testing.T) {
	l := Of(1, 2, 3)
	l.EraseAfter(l.CBegin())
	l.InsertAfter(l.CBeforeBegin(), 0)
	assert.Equal(t, []int{0, 1, 3}, allValue(l))
	checkList(t, l)
}

func TestList_Clone(t *testing.T) {
	l := Of(1, 2, 3)
	c := l.Clone()
	assert.True(t, Equal(l, c))
	checkList(t, c)

	l.PushFront(0)
	l.Begin().Next().Set(10)
	l.EraseAfter(at(l, 1))
	assert.Equal(t, []int{1, 2, 3}, allValue(c))
	assert.False(t, Equal(l, c))

	assert.True(t, New[int]().Clone().Empty())
}

func TestList_CloneFunc_Deep(t *testing.T) {
	l := Of([]int{1}, []int{2})
	c := l.CloneFunc(func(v []int) []int { return append([]int(nil), v...) })
	l.Begin().Value()[0] = 100
	assert.Equal(t, [][]int{{1}, {2}}, allValue(c))
}

func TestList_Assign(t *testing.T) {
	dst := Of(7, 8)
	src := Of(1, 2, 3)
	dst.Assign(src)
	assert.Equal(t, []int{1, 2, 3}, allValue(dst))
	checkList(t, dst)

	src.Clear()
	assert.Equal(t, []int{1, 2, 3}, allValue(dst))

	dst.Assign(src)
	assert.True(t, dst.Empty())
	checkList(t, dst)
}

func TestList_Assign_Self(t *testing.T) {
	l := Of(1, 2, 3)
	first := l.Begin()
	l.Assign(l)
	assert.Equal(t, []int{1, 2, 3}, allValue(l))
	assert.True(t, l.Begin().Equal(first))
	checkList(t, l)
}

func TestList_AssignFunc_StrongGuarantee(t *testing.T) {
	dst := Of(7, 8)
	src := Of(1, 2, 3, 4)

	copies := 0
	failingCopy := func(v int) int {
		copies++
		if copies == 3 {
			panic("copy failed")
		}
		return v
	}
	assert.PanicsWithValue(t, "copy failed", func() { dst.AssignFunc(src, failingCopy) })
	assert.Equal(t, []int{7, 8}, allValue(dst))
	assert.Equal(t, []int{1, 2, 3, 4}, allValue(src))
	checkList(t, dst)
	checkList(t, src)
}

func TestList_Swap(t *testing.T) {
	copies := 0
	countingCopy := func(v int) int {
		copies++
		return v
	}
	a := Of(1, 2, 3).CloneFunc(countingCopy)
	b := Of(4).CloneFunc(countingCopy)
	require.Equal(t, 4, copies)

	aFirst := a.Begin()
	a.Swap(b)
	assert.Equal(t, 4, copies, "swap must not copy elements")
	assert.Equal(t, []int{4}, allValue(a))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []int{1, 2, 3}, allValue(b))
	assert.Equal(t, 3, b.Len())
	assert.True(t, b.Begin().Equal(aFirst))
	checkList(t, a)
	checkList(t, b)

	Swap(a, b)
	assert.Equal(t, 4, copies)
	assert.Equal(t, []int{1, 2, 3}, allValue(a))
	assert.Equal(t, []int{4}, allValue(b))

	empty := New[int]()
	Swap(a, empty)
	assert.True(t, a.Empty())
	assert.Equal(t, []int{1, 2, 3}, allValue(empty))
	checkList(t, a)
	checkList(t, empty)
}

func TestList_Range(t *testing.T) {
	l := Of(1, 2, 3, 4)
	var got []int
	l.Range(func(v int) bool {
		got = append(got, v)
		return v < 2
	})
	assert.Equal(t, []int{1, 2}, got)
}

func TestList_String(t *testing.T) {
	assert.Equal(t, "[1 2 3]", Of(1, 2, 3).String())
	assert.Equal(t, "[]", New[string]().String())
}
