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

package finesse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushAndGetInOrder(t *testing.T) {
	var f Finesse
	assert.True(t, f.Push(MoveLeft))
	assert.True(t, f.Push(RotateCW))
	assert.True(t, f.Push(SonicDrop))
	assert.Equal(t, 3, f.Len())

	k, ok := f.Get(0)
	assert.True(t, ok)
	assert.Equal(t, MoveLeft, k)
	k, ok = f.Get(2)
	assert.True(t, ok)
	assert.Equal(t, SonicDrop, k)

	_, ok = f.Get(3)
	assert.False(t, ok)
}

func TestPushRespectsCapacity(t *testing.T) {
	var f Finesse
	for i := 0; i < Capacity; i++ {
		assert.True(t, f.Push(MoveLeft))
	}
	assert.False(t, f.Push(MoveLeft))
	assert.Equal(t, Capacity, f.Len())
}

func TestEqualityComparesPackedLenAndSpin(t *testing.T) {
	a := With([]Key{MoveLeft, SonicDrop})
	b := With([]Key{MoveLeft, SonicDrop})
	assert.Equal(t, a, b)

	b.SetSpin(true)
	assert.NotEqual(t, a, b)
}

func TestShortRoundTrip(t *testing.T) {
	f := With([]Key{MoveLeft, DasRight, RotateCW, SonicDrop})
	parsed, err := Parse(f.Short())
	assert.NoError(t, err)
	assert.Equal(t, f, parsed)
}

func TestShortRoundTripWithSpin(t *testing.T) {
	f := With([]Key{RotateCW})
	f.SetSpin(true)
	parsed, err := Parse(f.Short())
	assert.NoError(t, err)
	assert.Equal(t, f, parsed)
	assert.True(t, parsed.Spin())
}

func TestShortEmptyFinesse(t *testing.T) {
	f := New()
	assert.Equal(t, "", f.Short())
	parsed, err := Parse("")
	assert.NoError(t, err)
	assert.Equal(t, f, parsed)
}

func TestParseRejectsUnknownCode(t *testing.T) {
	_, err := Parse("l,xx")
	assert.Error(t, err)
}

func TestKeysMaterializesSlice(t *testing.T) {
	f := With([]Key{MoveLeft, MoveRight, Hold})
	assert.Equal(t, []Key{MoveLeft, MoveRight, Hold}, f.Keys())
}
