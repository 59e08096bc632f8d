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

// Package board implements the packed 4-column by 64-row playfield bitboard
// and its line-clear operation. Cell (x, y) has x in [0,4) and y in [0,64),
// y growing upward. The grid is stored as two 128-bit halves (rows 0-31 and
// rows 32-63); Go has no native 128-bit integer, so each half is itself two
// uint64 words, four bits per row-column within a word.
package board

import "math/bits"

// half packs 32 rows of 4 bits each into two uint64 words: Lo holds rows
// 0-15 of the half (bits 0-63), Hi holds rows 16-31 (bits 0-63, offset +64
// logically).
type half struct {
	Lo, Hi uint64
}

func (h half) row(r int) uint8 {
	bitIdx := 4 * r
	if bitIdx < 64 {
		return uint8(h.Lo>>bitIdx) & 0xF
	}
	return uint8(h.Hi>>(bitIdx-64)) & 0xF
}

func (h *half) setRow(r int, v uint8) {
	bitIdx := 4 * r
	mask := uint64(0xF)
	if bitIdx < 64 {
		h.Lo = (h.Lo &^ (mask << bitIdx)) | (uint64(v&0xF) << bitIdx)
		return
	}
	bitIdx -= 64
	h.Hi = (h.Hi &^ (mask << bitIdx)) | (uint64(v&0xF) << bitIdx)
}

func (h half) popcount() int {
	return bits.OnesCount64(h.Lo) + bits.OnesCount64(h.Hi)
}

// Board is the 4x64 packed playfield. The zero value is the empty board.
// Equality and hashing are the bitwise equality of the two halves; Board is
// a plain comparable struct, so it can be used directly as a Go map key.
type Board struct {
	Low  half // rows 0-31
	High half // rows 32-63
}

const Width = 4
const Height64 = 64

// Get reports whether cell (x, y) is set. Cells outside [0,4)x[0,64) read
// as empty.
func (b Board) Get(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height64 {
		return false
	}
	var h half
	var row int
	if y < 32 {
		h, row = b.Low, y
	} else {
		h, row = b.High, y-32
	}
	return h.row(row)&(1<<uint(x)) != 0
}

// Set assigns cell (x, y). Out-of-bounds coordinates are a no-op.
func (b *Board) Set(x, y int, v bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height64 {
		return
	}
	var h *half
	var row int
	if y < 32 {
		h, row = &b.Low, y
	} else {
		h, row = &b.High, y-32
	}
	r := h.row(row)
	if v {
		r |= 1 << uint(x)
	} else {
		r &^= 1 << uint(x)
	}
	h.setRow(row, r)
}

// NumMinos returns the popcount across both halves.
func (b Board) NumMinos() int {
	return b.Low.popcount() + b.High.popcount()
}

// IsEmpty reports whether both halves are zero.
func (b Board) IsEmpty() bool {
	return b.Low.Lo == 0 && b.Low.Hi == 0 && b.High.Lo == 0 && b.High.Hi == 0
}

// Height returns 1 + the highest y with any set cell, or 0 if the board is
// empty. The upper half is scanned first since that is where the tallest
// stacks live in practice.
func (b Board) Height() int {
	for r := 31; r >= 0; r-- {
		if b.High.row(r) != 0 {
			return 32 + r + 1
		}
	}
	for r := 31; r >= 0; r-- {
		if b.Low.row(r) != 0 {
			return r + 1
		}
	}
	return 0
}

// Skim removes every fully-set row (all four columns occupied) in place,
// compacting surviving rows downward while preserving their relative order.
// Freed rows at the top become empty. It is idempotent: skimming an
// already-skimmed board is a no-op.
func (b *Board) Skim() {
	var out Board
	idx := 0
	for y := 0; y < Height64; y++ {
		var h half
		var row int
		if y < 32 {
			h, row = b.Low, y
		} else {
			h, row = b.High, y-32
		}
		r := h.row(row)
		if r == 0xF {
			continue
		}
		var oh *half
		var orow int
		if idx < 32 {
			oh, orow = &out.Low, idx
		} else {
			oh, orow = &out.High, idx-32
		}
		oh.setRow(orow, r)
		idx++
	}
	*b = out
}
