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

// Package piece holds the closed set of types that describe a falling-block
// piece and its immutable per-ruleset lookup tables: the shape of each
// (kind, rotation), the wall-kick offsets tried on rotation, and the corner
// offsets used for spin detection. Nothing in this package hardcodes the set
// of piece kinds; it is entirely defined by whatever a Tables instance is
// loaded with.
package piece

import (
	"fmt"
	"strings"
)

// Kind is an opaque single-byte identifier for a shape family, e.g. 'I',
// 'J', 'L', 'O', 'S', 'T', 'Z'. The engine never assumes a particular set of
// kinds exists; it only ever asks a Tables instance what it knows about.
type Kind byte

// String renders the kind as its ASCII letter.
func (k Kind) String() string {
	return string(rune(k))
}

// Rotation is one of the four rotation states forming Z/4Z under CW/CCW/180.
type Rotation int

const (
	North Rotation = iota
	East
	South
	West
)

// CW returns the rotation state reached by a single clockwise turn.
func (r Rotation) CW() Rotation { return (r + 1) % 4 }

// CCW returns the rotation state reached by a single counter-clockwise turn.
func (r Rotation) CCW() Rotation { return (r + 3) % 4 }

// Opposite returns the rotation state reached by a 180 degree turn.
func (r Rotation) Opposite() Rotation { return (r + 2) % 4 }

// String renders the rotation as its canonical single-letter code.
func (r Rotation) String() string {
	switch r {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// ParseRotation accepts any of the documented rotation synonyms:
// N/E/S/W, spawn/right/reverse/left, 0/1/2/3, case-insensitive.
func ParseRotation(s string) (Rotation, bool) {
	switch strings.ToLower(s) {
	case "n", "spawn", "0":
		return North, true
	case "e", "right", "1":
		return East, true
	case "s", "reverse", "2":
		return South, true
	case "w", "left", "3":
		return West, true
	default:
		return 0, false
	}
}

// Offset is a signed cell offset relative to a piece's anchor.
type Offset struct {
	DX, DY int
}

// Color is the display color of a shape, one of I/J/O/L/Z/S/T/G/E.
type Color byte

// Cell is a resolved board coordinate.
type Cell struct {
	X, Y int
}

// OptCell is a materialized cell that may be out of bounds. A cell is
// out-of-bounds (Valid == false) whenever anchor+offset would produce a
// negative X or Y; this is not an error, it simply makes the containing
// piece invalid wherever it is checked.
type OptCell struct {
	Cell  Cell
	Valid bool
}

// Piece is a placed piece: a shape family, rotation state and anchor.
// Anchor need not be the bounding-box corner; shape offsets may be negative.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	X, Y     int
}

// New constructs a Piece at the given anchor.
func New(kind Kind, rot Rotation, x, y int) Piece {
	return Piece{Kind: kind, Rotation: rot, X: x, Y: y}
}

// With returns a copy of the piece translated by (dx, dy).
func (p Piece) With(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// WithRotation returns a copy of the piece with a different rotation state,
// anchor unchanged.
func (p Piece) WithRotation(rot Rotation) Piece {
	p.Rotation = rot
	return p
}

// ErrConfigMissing reports a shape/kick/corner lookup for a (kind, rotation)
// pair the loaded tables do not cover. Rulesets are expected to be total
// over the kinds they exercise, so this only ever surfaces a broken table.
type ErrConfigMissing struct {
	Kind Kind
	Rot  Rotation
	To   Rotation
	What string
}

func (e *ErrConfigMissing) Error() string {
	if e.What == "kick" {
		return fmt.Sprintf("piece: no kick table for %c %s->%s", e.Kind, e.Rot, e.To)
	}
	return fmt.Sprintf("piece: no %s table for %c %s", e.What, e.Kind, e.Rot)
}

// Cells materializes the piece's occupied cells by adding each shape offset
// to the anchor via checked arithmetic: any cell whose resulting X or Y
// would be negative is reported with Valid == false rather than wrapping.
func (p Piece) Cells(t *Tables) ([]OptCell, error) {
	offsets, _, ok := t.Shape(p.Kind, p.Rotation)
	if !ok {
		return nil, &ErrConfigMissing{Kind: p.Kind, Rot: p.Rotation, What: "shape"}
	}
	cells := make([]OptCell, len(offsets))
	for i, off := range offsets {
		x := p.X + off.DX
		y := p.Y + off.DY
		if x < 0 || y < 0 {
			cells[i] = OptCell{Valid: false}
			continue
		}
		cells[i] = OptCell{Cell: Cell{X: x, Y: y}, Valid: true}
	}
	return cells, nil
}
