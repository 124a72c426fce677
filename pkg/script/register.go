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
	"fmt"
	"sync"

	"github.com/IrineSistiana/slist/pkg/list"
	"golang.org/x/exp/slices"
)

// NewArgsFunc represents a func that creates a new args object.
type NewArgsFunc func() interface{}

// OpFunc runs an op on l. args is the object created by NewArgsFunc,
// or nil if the op type has no args.
type OpFunc func(e *Env, l *list.List[string], args interface{}) error

type OpTypeInfo struct {
	Exec    OpFunc
	NewArgs NewArgsFunc
}

var opTypeRegister struct {
	sync.RWMutex
	m map[string]OpTypeInfo
}

// RegOp registers the op type.
// If the type has been registered. RegOp will panic.
func RegOp(typ string, newArgs NewArgsFunc, f OpFunc) {
	opTypeRegister.Lock()
	defer opTypeRegister.Unlock()

	if _, ok := opTypeRegister.m[typ]; ok {
		panic(fmt.Sprintf("duplicate op type [%s]", typ))
	}
	if opTypeRegister.m == nil {
		opTypeRegister.m = make(map[string]OpTypeInfo)
	}
	opTypeRegister.m[typ] = OpTypeInfo{Exec: f, NewArgs: newArgs}
}

// DelOp deletes the op type.
// It is a noop if typ is not registered.
func DelOp(typ string) {
	opTypeRegister.Lock()
	defer opTypeRegister.Unlock()
	delete(opTypeRegister.m, typ)
}

func GetOp(typ string) (OpTypeInfo, bool) {
	opTypeRegister.RLock()
	defer opTypeRegister.RUnlock()

	info, ok := opTypeRegister.m[typ]
	return info, ok
}

// AllOpTypes returns all registered op types, sorted.
func AllOpTypes() []string {
	opTypeRegister.RLock()
	defer opTypeRegister.RUnlock()

	t := make([]string, 0, len(opTypeRegister.m))
	for typ := range opTypeRegister.m {
		t = append(t, typ)
	}
	slices.Sort(t)
	return t
}
