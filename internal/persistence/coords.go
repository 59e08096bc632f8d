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
	"regexp"
	"strconv"

	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/staxerr"
)

// coordPattern matches one "(x,y)" signed-integer pair, the wire form used
// by .piece/.kick/.corners table lines. Grounded on the original's
// coordinate.rs "(x,y)(x,y)..." list syntax.
var coordPattern = regexp.MustCompile(`\(\s*(-?\d+)\s*,\s*(-?\d+)\s*\)`)

// parseCoords parses a concatenated "(x,y)(x,y)…" offset list, in order.
func parseCoords(s string) ([]piece.Offset, error) {
	matches := coordPattern.FindAllStringSubmatch(s, -1)
	if matches == nil {
		if s == "" {
			return nil, nil
		}
		return nil, staxerr.Malformed("persistence: %q is not a coordinate list", s)
	}
	out := make([]piece.Offset, len(matches))
	for i, m := range matches {
		dx, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, staxerr.Malformed("persistence: bad x in %q: %v", s, err)
		}
		dy, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, staxerr.Malformed("persistence: bad y in %q: %v", s, err)
		}
		out[i] = piece.Offset{DX: dx, DY: dy}
	}
	return out, nil
}
