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

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, -5, Min(-5, -3))
	assert.Equal(t, -3, Max(-5, -3))
	assert.Equal(t, 2, Min(2, 2))
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, IsAlpha('a'))
	assert.True(t, IsAlpha('Z'))
	assert.False(t, IsAlpha('5'))
	assert.False(t, IsAlpha('@'))
}

func TestIsDigit(t *testing.T) {
	assert.True(t, IsDigit('0'))
	assert.True(t, IsDigit('9'))
	assert.False(t, IsDigit('a'))
}

func TestBool(t *testing.T) {
	b := NewBool(false)
	assert.False(t, b.Load())
	b.Store(true)
	assert.True(t, b.Load())
	assert.True(t, b.Swap(false))
	assert.False(t, b.Load())
	assert.True(t, b.CAS(false, true))
	assert.True(t, b.Load())
	prev := b.Toggle()
	assert.True(t, prev)
	assert.False(t, b.Load())
}
