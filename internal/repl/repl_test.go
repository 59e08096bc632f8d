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

package repl

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/persistence"
	"github.com/fourwide/stax/internal/piece"
)

// iOnlyState builds a State around a single-kind ("I") table set, wide
// enough to fill the board in one row, and a scratch data directory so
// "pcp" is free to write its persisted table without touching a real
// data/ folder.
func iOnlyState(t *testing.T) *State {
	tables := piece.NewTables()
	shape := []piece.Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	for _, r := range []piece.Rotation{piece.North, piece.East, piece.South, piece.West} {
		tables.AddShape('I', r, shape, piece.Color('I'))
	}
	pairs := [][2]piece.Rotation{
		{piece.North, piece.East}, {piece.East, piece.South},
		{piece.South, piece.West}, {piece.West, piece.North},
		{piece.North, piece.West}, {piece.West, piece.South},
		{piece.South, piece.East}, {piece.East, piece.North},
	}
	for _, p := range pairs {
		tables.AddKick('I', p[0], p[1], []piece.Offset{{0, 0}})
	}
	return NewState(tables, t.TempDir(), "test", environment.Sonic, 0, 1)
}

func TestCommandUnknownVerb(t *testing.T) {
	s := iOnlyState(t)
	assert.Equal(t, "?", s.Command("bogus"))
}

func TestCommandEmptyLine(t *testing.T) {
	s := iOnlyState(t)
	assert.Equal(t, "?", s.Command(""))
}

func TestPcpGeneratesAndPersists(t *testing.T) {
	s := iOnlyState(t)
	result := s.Command("pcp -tdh- 1 1")
	assert.Equal(t, "", result)

	path := persistence.TablePath(s.DataDir, s.KickTable, "-tdh-", 1)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestPcpRejectsBadFlags(t *testing.T) {
	s := iOnlyState(t)
	assert.Equal(t, "?", s.Command("pcp bogus 1 1"))
}

func TestPcpForceFlagRegenerates(t *testing.T) {
	s := iOnlyState(t)
	assert.Equal(t, "", s.Command("pcp -tdh- 1 1"))
	assert.Equal(t, "", s.Command("pcp -tdh- 1 1 F"))
}

func TestPcpRejectsBadForceToken(t *testing.T) {
	s := iOnlyState(t)
	assert.Equal(t, "?", s.Command("pcp -tdh- 1 1 X"))
}

func TestPcrAnswersWithWitnessingHistory(t *testing.T) {
	s := iOnlyState(t)
	result := s.Command("pcr -tdh- I 1")
	assert.NotEqual(t, "?", result)
	assert.Contains(t, result, "I:")
}

func TestPcrUnknownQueueIsDiagnostic(t *testing.T) {
	s := iOnlyState(t)
	result := s.Command("pcr -tdh- ZZZ 1")
	assert.Equal(t, "?", result)
}

func TestLoopRespondsOnePerLine(t *testing.T) {
	s := iOnlyState(t)
	in := strings.NewReader("pcr -tdh- I 1\nbogus\n")
	var out bytes.Buffer
	s.Loop(in, &out)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.NotEqual(t, "?", lines[0])
	assert.Equal(t, "?", lines[1])
}

func TestSpawnStopsOnRequest(t *testing.T) {
	s := iOnlyState(t)
	r, w := io.Pipe()
	var out bytes.Buffer
	h := s.Spawn(r, bufio.NewWriter(&out))
	h.Stop()
	w.Close()
	h.Wait()
}
