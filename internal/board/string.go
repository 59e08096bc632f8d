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

package board

import (
	"fmt"
	"strings"
)

// String renders the board as rows separated by '|', most-significant
// (highest y) row first, each row exactly four characters wide ('X' set,
// '_' empty). Leading empty rows are omitted.
func (b Board) String() string {
	h := b.Height()
	if h == 0 {
		return ""
	}
	rows := make([]string, 0, h)
	for y := h - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < Width; x++ {
			if b.Get(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('_')
			}
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "|")
}

// Parse reconstructs a Board from its String() encoding. Rows are given
// most-significant first; an encoding with at most 32 rows is
// right-justified into the low half (i.e. placed at the bottom of the
// board), matching what String produces for short stacks. An encoding with
// more than 32 rows fills the low half completely and spills the remainder
// into the high half.
func Parse(s string) (Board, error) {
	var b Board
	if s == "" {
		return b, nil
	}
	rows := strings.Split(s, "|")
	n := len(rows)
	if n > Height64 {
		return b, fmt.Errorf("board: %d rows exceeds max height %d", n, Height64)
	}
	for i, rowStr := range rows {
		if len(rowStr) != Width {
			return b, fmt.Errorf("board: row %q is not %d characters wide", rowStr, Width)
		}
		y := n - 1 - i
		for x := 0; x < Width; x++ {
			switch rowStr[x] {
			case 'X':
				b.Set(x, y, true)
			case '_':
				b.Set(x, y, false)
			default:
				return b, fmt.Errorf("board: invalid cell character %q in row %q", rowStr[x], rowStr)
			}
		}
	}
	return b, nil
}
