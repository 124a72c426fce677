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

	"github.com/IrineSistiana/slist/pkg/utils"
)

// Config is a set of string lists and the ops that run on them.
type Config struct {
	Lists   []ListConfig    `yaml:"lists"`
	Compare []CompareConfig `yaml:"compare"`
}

// ListConfig represents a list and its ops.
type ListConfig struct {
	// Tag, required, must be unique.
	Tag string `yaml:"tag"`

	// Init values, the first value is the first element.
	Init []string `yaml:"init"`

	Ops []OpConfig `yaml:"ops"`
}

// OpConfig represents an op on a list.
type OpConfig struct {
	// Type, required
	Type string `yaml:"type"`

	// Args, might be required by some op types
	Args map[string]interface{} `yaml:"args"`
}

// CompareConfig compares list A against list B after all ops are done.
type CompareConfig struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

var errEmptyTag = errors.New("empty list tag")

// Validate checks tags and op types. It reports all problems at once.
func (c *Config) Validate() error {
	es := new(utils.Errors)
	tags := make(map[string]struct{}, len(c.Lists))
	for i, lc := range c.Lists {
		if len(lc.Tag) == 0 {
			es.Append(fmt.Errorf("list #%d: %w", i, errEmptyTag))
			continue
		}
		if _, dup := tags[lc.Tag]; dup {
			es.Append(fmt.Errorf("duplicate list tag [%s]", lc.Tag))
		}
		tags[lc.Tag] = struct{}{}
		for j, oc := range lc.Ops {
			if _, ok := GetOp(oc.Type); !ok {
				es.Append(fmt.Errorf("list %s op #%d: op type [%s] not defined", lc.Tag, j, oc.Type))
			}
		}
	}
	for i, cc := range c.Compare {
		for _, tag := range [...]string{cc.A, cc.B} {
			if _, ok := tags[tag]; !ok {
				es.Append(fmt.Errorf("compare #%d: %w [%s]", i, ErrUnknownList, tag))
			}
		}
	}
	return es.Build()
}
