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

	"github.com/IrineSistiana/slist/mlog"
	"github.com/IrineSistiana/slist/pkg/list"
	"github.com/IrineSistiana/slist/pkg/utils"
	"go.uber.org/zap"
)

// Env holds the lists of a single run. It is not safe for concurrent use.
type Env struct {
	lists map[string]*list.List[string]
	lg    *zap.Logger
}

// Get returns the list tagged tag.
func (e *Env) Get(tag string) (*list.List[string], error) {
	l, ok := e.lists[tag]
	if !ok {
		return nil, fmt.Errorf("%w [%s]", ErrUnknownList, tag)
	}
	return l, nil
}

func (e *Env) L() *zap.Logger {
	return e.lg
}

type Report struct {
	Lists   []ListReport    `yaml:"lists"`
	Compare []CompareReport `yaml:"compare,omitempty"`
}

type ListReport struct {
	Tag    string   `yaml:"tag"`
	Size   int      `yaml:"size"`
	Values []string `yaml:"values"`
}

type CompareReport struct {
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Equal bool   `yaml:"equal"`
	Less  bool   `yaml:"less"`
	Order int    `yaml:"order"` // -1, 0, 1
}

type Runner struct {
	lg *zap.Logger
}

// NewRunner returns a Runner. A nil lg disables logging.
func NewRunner(lg *zap.Logger) *Runner {
	if lg == nil {
		lg = mlog.Nop()
	}
	return &Runner{lg: lg}
}

// Run builds all lists of cfg, runs their ops in config order and
// compares the lists named in cfg.Compare.
// Every list is created before any op runs, so ops may refer to lists
// defined later in cfg.
func (r *Runner) Run(cfg *Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	e := &Env{lists: make(map[string]*list.List[string], len(cfg.Lists)), lg: r.lg}
	for _, lc := range cfg.Lists {
		e.lists[lc.Tag] = list.FromSlice(lc.Init)
	}

	for _, lc := range cfg.Lists {
		l := e.lists[lc.Tag]
		for i, oc := range lc.Ops {
			if err := r.exec(e, l, &oc); err != nil {
				return nil, fmt.Errorf("list %s op #%d %s: %w", lc.Tag, i, oc.Type, err)
			}
			r.lg.Debug("op done", zap.String("list", lc.Tag), zap.Int("op", i), zap.String("type", oc.Type), zap.Int("size", l.Len()))
		}
	}

	rp := &Report{Lists: make([]ListReport, 0, len(cfg.Lists))}
	for _, lc := range cfg.Lists {
		l := e.lists[lc.Tag]
		rp.Lists = append(rp.Lists, ListReport{Tag: lc.Tag, Size: l.Len(), Values: l.Values()})
	}
	for _, cc := range cfg.Compare {
		a, b := e.lists[cc.A], e.lists[cc.B]
		rp.Compare = append(rp.Compare, CompareReport{
			A:     cc.A,
			B:     cc.B,
			Equal: list.Equal(a, b),
			Less:  list.Less(a, b),
			Order: list.Compare(a, b),
		})
	}
	r.lg.Info("script finished", zap.Int("lists", len(rp.Lists)), zap.Int("compares", len(rp.Compare)))
	return rp, nil
}

// exec decodes oc.Args and runs the op. Every field of the args object
// is required.
func (r *Runner) exec(e *Env, l *list.List[string], oc *OpConfig) error {
	info, ok := GetOp(oc.Type)
	if !ok {
		return fmt.Errorf("op type %s not defined", oc.Type)
	}

	var args interface{}
	if info.NewArgs != nil {
		args = info.NewArgs()
		if err := utils.WeakDecodeRequired(oc.Args, args); err != nil {
			return fmt.Errorf("unable to decode op args: %w", err)
		}
	} else if len(oc.Args) > 0 {
		return fmt.Errorf("op type %s takes no args", oc.Type)
	}
	return info.Exec(e, l, args)
}
