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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourwide/stax/internal/piece"
)

func TestLoadShapesParsesShapeLines(t *testing.T) {
	t0 := piece.NewTables()
	src := "# comment\n\nI.N=(0,0)(1,0)(2,0)(3,0)@I\nO.N=(0,0)(1,0)(0,1)(1,1)@O\n"
	assert.NoError(t, LoadShapes(t0, strings.NewReader(src)))

	offsets, color, ok := t0.Shape('I', piece.North)
	assert.True(t, ok)
	assert.Equal(t, piece.Color('I'), color)
	assert.Equal(t, []piece.Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, offsets)
	assert.Equal(t, []piece.Kind{'I', 'O'}, t0.Kinds())
}

func TestLoadShapesRejectsMalformedLine(t *testing.T) {
	t0 := piece.NewTables()
	err := LoadShapes(t0, strings.NewReader("garbage"))
	assert.Error(t, err)
}

func TestLoadShapesRejectsUnknownRotation(t *testing.T) {
	t0 := piece.NewTables()
	err := LoadShapes(t0, strings.NewReader("I.Q=(0,0)@I"))
	assert.Error(t, err)
}

func TestLoadKicksParsesKickLines(t *testing.T) {
	t0 := piece.NewTables()
	err := LoadKicks(t0, strings.NewReader("T.NE=(0,0)(-1,0)(-1,1)(0,-2)(-1,-2)\n"))
	assert.NoError(t, err)

	kicks, ok := t0.Kicks('T', piece.North, piece.East)
	assert.True(t, ok)
	assert.Equal(t, []piece.Offset{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, kicks)
}

func TestLoadKicksRejectsBadSourceTargetCode(t *testing.T) {
	t0 := piece.NewTables()
	err := LoadKicks(t0, strings.NewReader("T.N=(0,0)"))
	assert.Error(t, err)
}

func TestLoadCornersParsesCornerLines(t *testing.T) {
	t0 := piece.NewTables()
	err := LoadCorners(t0, strings.NewReader("T.N=(0,0)(2,0)(0,2)(2,2)\n"))
	assert.NoError(t, err)

	corners, ok := t0.Corners('T', piece.North)
	assert.True(t, ok)
	assert.Len(t, corners, 4)
}

func TestEachLineSkipsBlankAndCommentLines(t *testing.T) {
	var seen []string
	err := eachLine(strings.NewReader("\n# skip\n  a  \nb\n"), func(line string) error {
		seen = append(seen, line)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)
}
