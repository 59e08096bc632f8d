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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSetRoundTrip(t *testing.T) {
	var b Board
	for y := 0; y < Height64; y += 7 {
		for x := 0; x < Width; x++ {
			b.Set(x, y, true)
			assert.True(t, b.Get(x, y))
			b.Set(x, y, false)
			assert.False(t, b.Get(x, y))
		}
	}
}

func TestOutOfBoundsReadsEmpty(t *testing.T) {
	var b Board
	assert.False(t, b.Get(-1, 0))
	assert.False(t, b.Get(4, 0))
	assert.False(t, b.Get(0, -1))
	assert.False(t, b.Get(0, 64))
}

func TestOutOfBoundsSetIsNoOp(t *testing.T) {
	var b Board
	b.Set(-1, 0, true)
	b.Set(4, 0, true)
	b.Set(0, -1, true)
	b.Set(0, 64, true)
	assert.True(t, b.IsEmpty())
}

func TestIsEmptyAndNumMinos(t *testing.T) {
	var b Board
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.NumMinos())

	b.Set(0, 0, true)
	b.Set(2, 40, true)
	assert.False(t, b.IsEmpty())
	assert.Equal(t, 2, b.NumMinos())
}

func TestHeight(t *testing.T) {
	var b Board
	assert.Equal(t, 0, b.Height())

	b.Set(0, 0, true)
	assert.Equal(t, 1, b.Height())

	b.Set(3, 40, true)
	assert.Equal(t, 41, b.Height())
}

func TestSkimRemovesFullRowsAndCompactsDownward(t *testing.T) {
	var b Board
	// row 0: full, row 1: 1010, row 2: full, row 3: 0001 (bottom->top)
	for x := 0; x < Width; x++ {
		b.Set(x, 0, true)
		b.Set(x, 2, true)
	}
	b.Set(0, 1, true)
	b.Set(2, 1, true)
	b.Set(3, 3, true)

	b.Skim()

	assert.Equal(t, 2, b.Height())
	assert.True(t, b.Get(0, 0))
	assert.False(t, b.Get(1, 0))
	assert.True(t, b.Get(2, 0))
	assert.False(t, b.Get(3, 0))
	assert.False(t, b.Get(0, 1))
	assert.False(t, b.Get(1, 1))
	assert.False(t, b.Get(2, 1))
	assert.True(t, b.Get(3, 1))
}

func TestSkimIsIdempotent(t *testing.T) {
	var b Board
	for x := 0; x < Width; x++ {
		b.Set(x, 0, true)
	}
	b.Set(1, 1, true)
	b.Skim()
	once := b
	b.Skim()
	assert.Equal(t, once, b)
}

func TestSkimMonotoneHeight(t *testing.T) {
	var b Board
	for x := 0; x < Width; x++ {
		b.Set(x, 5, true)
	}
	b.Set(0, 10, true)
	before := b.Height()
	b.Skim()
	assert.LessOrEqual(t, b.Height(), before)
}

func TestStringRoundTrip(t *testing.T) {
	var b Board
	b.Set(0, 0, true)
	b.Set(1, 0, true)
	b.Set(3, 2, true)

	s := b.String()
	parsed, err := Parse(s)
	assert.NoError(t, err)
	assert.Equal(t, b, parsed)
}

func TestStringEmptyBoard(t *testing.T) {
	var b Board
	assert.Equal(t, "", b.String())
	parsed, err := Parse("")
	assert.NoError(t, err)
	assert.Equal(t, b, parsed)
}

func TestParseRejectsBadRowWidth(t *testing.T) {
	_, err := Parse("XX_")
	assert.Error(t, err)
}

func TestParseRejectsBadCharacter(t *testing.T) {
	_, err := Parse("XYZ_")
	assert.Error(t, err)
}

func TestEqualityIsBitwise(t *testing.T) {
	var a, b Board
	a.Set(2, 33, true)
	b.Set(2, 33, true)
	assert.Equal(t, a, b)
	assert.True(t, a == b)
}

func TestSingleFullRowSkimsToEmpty(t *testing.T) {
	var b Board
	for x := 0; x < Width; x++ {
		b.Set(x, 0, true)
	}
	b.Skim()
	assert.True(t, b.IsEmpty())
}
