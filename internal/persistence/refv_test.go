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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRefvLiteralValue(t *testing.T) {
	r, err := ParseRefv("kick=srs\ncorners=standard\n")
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	v, ok := r.GetRaw("kick")
	assert.True(t, ok)
	assert.Equal(t, "srs", v)
}

func TestParseRefvResolvesAliasChain(t *testing.T) {
	r, err := ParseRefv("a=&b\nb=&c\nc=leaf\n")
	assert.NoError(t, err)

	v, ok := r.GetRaw("a")
	assert.True(t, ok)
	assert.Equal(t, "leaf", v)
}

func TestParseRefvDetectsAliasCycle(t *testing.T) {
	r, err := ParseRefv("a=&b\nb=&a\n")
	assert.NoError(t, err)

	_, ok := r.GetRaw("a")
	assert.False(t, ok)
}

func TestParseRefvSkipsBlankAndCommentLines(t *testing.T) {
	r, err := ParseRefv("# comment\n\nonly=value\n")
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestParseRefvRejectsLineWithoutEquals(t *testing.T) {
	_, err := ParseRefv("no-equals-here")
	assert.Error(t, err)
}

func TestGetRawUndeclaredKeyIsNotFound(t *testing.T) {
	r, err := ParseRefv("a=1\n")
	assert.NoError(t, err)
	_, ok := r.GetRaw("missing")
	assert.False(t, ok)
}
