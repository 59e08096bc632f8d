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

package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationGroupLaw(t *testing.T) {
	for _, r := range []Rotation{North, East, South, West} {
		assert.Equal(t, r, r.CW().CCW())
		assert.Equal(t, r.Opposite(), r.CW().CW())
		assert.Equal(t, r, r.Opposite().Opposite())
	}
}

func TestRotationStringRoundTrip(t *testing.T) {
	for _, r := range []Rotation{North, East, South, West} {
		parsed, ok := ParseRotation(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, parsed)
	}
}

func TestParseRotationSynonyms(t *testing.T) {
	cases := map[string]Rotation{
		"spawn": North, "0": North,
		"right": East, "1": East,
		"reverse": South, "2": South,
		"left": West, "3": West,
	}
	for s, want := range cases {
		got, ok := ParseRotation(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	_, ok := ParseRotation("bogus")
	assert.False(t, ok)
}

func TestCellsMaterializeAnchorPlusOffset(t *testing.T) {
	tables := NewTables()
	tables.AddShape('O', North, []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Color('O'))

	p := New('O', North, 1, 2)
	cells, err := p.Cells(tables)
	assert.NoError(t, err)
	assert.Len(t, cells, 4)
	assert.Equal(t, Cell{1, 2}, cells[0].Cell)
	assert.Equal(t, Cell{2, 3}, cells[3].Cell)
	for _, c := range cells {
		assert.True(t, c.Valid)
	}
}

func TestCellsNegativeResultIsInvalidNotError(t *testing.T) {
	tables := NewTables()
	tables.AddShape('O', North, []Offset{{-2, 0}, {-1, 0}, {-2, 1}, {-1, 1}}, Color('O'))

	p := New('O', North, 0, 0)
	cells, err := p.Cells(tables)
	assert.NoError(t, err)
	for _, c := range cells {
		assert.False(t, c.Valid)
	}
}

func TestCellsMissingShapeIsConfigError(t *testing.T) {
	tables := NewTables()
	p := New('Q', North, 0, 0)
	_, err := p.Cells(tables)
	assert.Error(t, err)
	var cfgErr *ErrConfigMissing
	assert.ErrorAs(t, err, &cfgErr)
}

func TestTablesKindsInFirstDeclaredOrder(t *testing.T) {
	tables := NewTables()
	tables.AddShape('T', North, nil, Color('T'))
	tables.AddShape('I', North, nil, Color('I'))
	tables.AddShape('T', East, nil, Color('T'))

	assert.Equal(t, []Kind{'T', 'I'}, tables.Kinds())
	assert.Equal(t, []Kind{'I', 'T'}, tables.SortedKinds())
}

func TestKicksAndCornersLookup(t *testing.T) {
	tables := NewTables()
	tables.AddKick('T', North, East, []Offset{{0, 0}, {-1, 0}})
	tables.AddCorners('T', North, []Offset{{0, 0}, {2, 0}, {0, 2}, {2, 2}})

	kicks, ok := tables.Kicks('T', North, East)
	assert.True(t, ok)
	assert.Equal(t, []Offset{{0, 0}, {-1, 0}}, kicks)

	corners, ok := tables.Corners('T', North)
	assert.True(t, ok)
	assert.Len(t, corners, 4)

	_, ok = tables.Kicks('T', East, South)
	assert.False(t, ok)
	_, ok = tables.Corners('T', East)
	assert.False(t, ok)
}

func TestPieceWithTranslatesAnchor(t *testing.T) {
	p := New('I', North, 1, 1)
	moved := p.With(2, -1)
	assert.Equal(t, 3, moved.X)
	assert.Equal(t, 0, moved.Y)
	assert.Equal(t, 1, p.X)
}
