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

package utils

import (
	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/constraints"
)

// SetDefaultNum sets *p to d if *p is zero.
func SetDefaultNum[K constraints.Integer | constraints.Float](p *K, d K) {
	if *p == 0 {
		*p = d
	}
}

// CheckNumRange reports whether min <= v <= max.
func CheckNumRange[K constraints.Integer | constraints.Float](v, min, max K) bool {
	return v >= min && v <= max
}

// WeakDecode decodes op args from config to output.
// Unknown keys are errors, values are converted weakly ("1" -> 1).
// A nil in leaves output untouched.
func WeakDecode(in map[string]interface{}, output interface{}) error {
	if in == nil {
		return nil
	}
	return weakDecode(in, output, false)
}

// WeakDecodeRequired is like WeakDecode but every field of output must be
// set by in. A nil in is decoded as an empty map.
func WeakDecodeRequired(in map[string]interface{}, output interface{}) error {
	if in == nil {
		in = map[string]interface{}{}
	}
	return weakDecode(in, output, true)
}

func weakDecode(in map[string]interface{}, output interface{}, errorUnset bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		ErrorUnset:       errorUnset,
		Result:           output,
		WeaklyTypedInput: true,
		TagName:          "yaml",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}
