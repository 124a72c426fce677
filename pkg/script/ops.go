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

package script

import (
	"errors"
	"fmt"

	"github.com/IrineSistiana/slist/pkg/list"
)

var (
	ErrEmptyList   = errors.New("list is empty")
	ErrOutOfRange  = errors.New("position out of range")
	ErrUnknownList = errors.New("unknown list")
)

const (
	OpPushFront   = "push_front"
	OpPopFront    = "pop_front"
	OpInsertAfter = "insert_after"
	OpEraseAfter  = "erase_after"
	OpClear       = "clear"
	OpSet         = "set"
	OpCopyFrom    = "copy_from"
	OpSwap        = "swap"
	OpReverse     = "reverse"
)

type ValueArgs struct {
	Value string `yaml:"value"`
}

// PosArgs holds a cursor position. -1 is the position before the first
// element, i >= 0 is the i-th element.
type PosArgs struct {
	Pos int `yaml:"pos"`
}

type PosValueArgs struct {
	Pos   int    `yaml:"pos"`
	Value string `yaml:"value"`
}

// SrcArgs names the list to copy from.
type SrcArgs struct {
	Src string `yaml:"src"`
}

// WithArgs names the list to swap with.
type WithArgs struct {
	With string `yaml:"with"`
}

func init() {
	RegOp(OpPushFront, func() interface{} { return new(ValueArgs) }, pushFront)
	RegOp(OpPopFront, nil, popFront)
	RegOp(OpInsertAfter, func() interface{} { return new(PosValueArgs) }, insertAfter)
	RegOp(OpEraseAfter, func() interface{} { return new(PosArgs) }, eraseAfter)
	RegOp(OpClear, nil, clearList)
	RegOp(OpSet, func() interface{} { return new(PosValueArgs) }, set)
	RegOp(OpCopyFrom, func() interface{} { return new(SrcArgs) }, copyFrom)
	RegOp(OpSwap, func() interface{} { return new(WithArgs) }, swap)
	RegOp(OpReverse, nil, reverse)
}

// cursor returns the iterator at pos, which must be in [-1, l.Len()-1].
func cursor(l *list.List[string], pos int) (list.Iterator[string], error) {
	if pos < -1 || pos >= l.Len() {
		return list.Iterator[string]{}, fmt.Errorf("%w: pos %d, size %d", ErrOutOfRange, pos, l.Len())
	}
	it := l.BeforeBegin()
	for i := -1; i < pos; i++ {
		it = it.Next()
	}
	return it, nil
}

func pushFront(_ *Env, l *list.List[string], args interface{}) error {
	l.PushFront(args.(*ValueArgs).Value)
	return nil
}

func popFront(_ *Env, l *list.List[string], _ interface{}) error {
	if l.Empty() {
		return ErrEmptyList
	}
	l.PopFront()
	return nil
}

func insertAfter(_ *Env, l *list.List[string], args interface{}) error {
	a := args.(*PosValueArgs)
	pos, err := cursor(l, a.Pos)
	if err != nil {
		return err
	}
	l.InsertAfter(pos, a.Value)
	return nil
}

func eraseAfter(_ *Env, l *list.List[string], args interface{}) error {
	a := args.(*PosArgs)
	pos, err := cursor(l, a.Pos)
	if err != nil {
		return err
	}
	if pos.Next().IsEnd() {
		return fmt.Errorf("%w: no element after pos %d", ErrOutOfRange, a.Pos)
	}
	l.EraseAfter(pos)
	return nil
}

func clearList(_ *Env, l *list.List[string], _ interface{}) error {
	l.Clear()
	return nil
}

func set(_ *Env, l *list.List[string], args interface{}) error {
	a := args.(*PosValueArgs)
	if a.Pos < 0 {
		return fmt.Errorf("%w: pos %d", ErrOutOfRange, a.Pos)
	}
	it, err := cursor(l, a.Pos)
	if err != nil {
		return err
	}
	it.Set(a.Value)
	return nil
}

func copyFrom(e *Env, l *list.List[string], args interface{}) error {
	src, err := e.Get(args.(*SrcArgs).Src)
	if err != nil {
		return err
	}
	l.Assign(src)
	return nil
}

func swap(e *Env, l *list.List[string], args interface{}) error {
	other, err := e.Get(args.(*WithArgs).With)
	if err != nil {
		return err
	}
	l.Swap(other)
	return nil
}

func reverse(_ *Env, l *list.List[string], _ interface{}) error {
	tmp := list.New[string]()
	l.Range(func(v string) bool {
		tmp.PushFront(v)
		return true
	})
	l.Swap(tmp)
	return nil
}
