/*
 * stax - a bitboard engine for falling-block placement and perfect-clear search
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package persistence

import (
	"strings"

	"github.com/fourwide/stax/internal/staxerr"
)

// refValue is either literal text or an alias to another key, mirroring the
// original loader's Value::{Content, Ref} distinction.
type refValue struct {
	text  string
	alias string
	isRef bool
}

// Refv is a small key/value scope read from a "key=value" text file, where a
// value beginning with '&' names another key whose value to use instead.
// It backs the engine's small ruleset-selection config files, which pick a
// kick-table/corner-table/piece-table name by key and let several keys alias
// the same underlying table.
type Refv struct {
	scope map[string]refValue
}

// ParseRefv parses raw into a Refv. Lines are "key=value"; a leading '&' on
// the value makes it an alias to another key. Blank lines and lines
// beginning with '#' are comments.
func ParseRefv(raw string) (*Refv, error) {
	scope := map[string]refValue{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimLeft(line, " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return nil, staxerr.Malformed("persistence: refv line %q has no '='", line)
		}
		key := line[:eq]
		value := line[eq+1:]
		if alias := strings.TrimPrefix(value, "&"); alias != value {
			scope[key] = refValue{alias: alias, isRef: true}
		} else {
			scope[key] = refValue{text: value}
		}
	}
	return &Refv{scope: scope}, nil
}

// Len reports the number of keys declared.
func (r *Refv) Len() int { return len(r.scope) }

// GetRaw resolves label through any chain of aliases down to its literal
// text, or reports ok == false if label (or something it aliases to) is
// undeclared.
func (r *Refv) GetRaw(label string) (string, bool) {
	seen := map[string]bool{}
	for {
		if seen[label] {
			return "", false
		}
		seen[label] = true
		v, ok := r.scope[label]
		if !ok {
			return "", false
		}
		if !v.isRef {
			return v.text, true
		}
		label = v.alias
	}
}
