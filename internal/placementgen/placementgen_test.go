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

package placementgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourwide/stax/internal/board"
	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/finesse"
	"github.com/fourwide/stax/internal/input"
	"github.com/fourwide/stax/internal/piece"
)

// iTables builds a 4-wide horizontal "I" piece declared in all four
// rotations (the rotation itself is irrelevant to these tests; only the
// kick table needs to be total so rotating never surfaces a config error).
func iTables() *piece.Tables {
	t := piece.NewTables()
	shape := []piece.Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	for _, r := range []piece.Rotation{piece.North, piece.East, piece.South, piece.West} {
		t.AddShape('I', r, shape, piece.Color('I'))
	}
	pairs := [][2]piece.Rotation{
		{piece.North, piece.East}, {piece.East, piece.South},
		{piece.South, piece.West}, {piece.West, piece.North},
		{piece.North, piece.West}, {piece.West, piece.South},
		{piece.South, piece.East}, {piece.East, piece.North},
	}
	for _, p := range pairs {
		t.AddKick('I', p[0], p[1], []piece.Offset{{0, 0}})
	}
	return t
}

func iEnv() *environment.Environment {
	return environment.New(iTables(), true, true, false, true, false, environment.Sonic, 1, 0)
}

func TestGetNextBoardsClearsFullRowOnEmptyBoard(t *testing.T) {
	env := iEnv()
	placements, err := GetNextBoards(board.Board{}, 'I', env)
	assert.NoError(t, err)

	cleared, ok := placements[board.Board{}]
	assert.True(t, ok, "an I piece on an empty 4-wide board must be able to clear the floor row")
	assert.Equal(t, []finesse.Key{finesse.MoveLeft}, cleared.Keys())
}

func TestGetNextBoardsEveryWitnessReplaysToItsClaimedBoard(t *testing.T) {
	env := iEnv()
	placements, err := GetNextBoards(board.Board{}, 'I', env)
	assert.NoError(t, err)
	assert.NotEmpty(t, placements)

	for claimed, f := range placements {
		in := input.New(board.Board{}, 'I', env)
		assert.NoError(t, in.ApplyFinesse(f))
		got, err := in.Place(true)
		assert.NoError(t, err)
		assert.Equal(t, claimed, got, "witness finesse %v must reproduce its claimed board", f.Keys())
	}
}

func TestGetNextBoardsClearedBoardWitnessIsShortestPossible(t *testing.T) {
	env := iEnv()
	placements, err := GetNextBoards(board.Board{}, 'I', env)
	assert.NoError(t, err)

	cleared, ok := placements[board.Board{}]
	assert.True(t, ok)
	// A single horizontal shift is necessary (spawn anchor x=1 leaves one
	// cell off a 4-wide board) and sufficient (hard drop does the rest), so
	// no zero-key finesse can reach it.
	assert.Equal(t, 1, cleared.Len())
}

func TestSortedIsDeterministic(t *testing.T) {
	env := iEnv()
	placements, err := GetNextBoards(board.Board{}, 'I', env)
	assert.NoError(t, err)

	a := Sorted(placements)
	b := Sorted(placements)
	assert.Equal(t, a, b)
	for i := 1; i < len(a); i++ {
		assert.LessOrEqual(t, a[i-1].Board.String(), a[i].Board.String())
	}
}
