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

// Package input is the deterministic piece-on-board state machine: it
// applies keys to a falling piece, detects spins, and locks the piece onto
// the board. It mirrors the mutate-then-revert-on-failure shape the
// teacher's position package uses for DoMove/UndoMove, specialized to a
// piece that either moves or stays exactly where it was.
package input

import (
	"github.com/fourwide/stax/internal/board"
	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/finesse"
	"github.com/fourwide/stax/internal/piece"
)

// spawnHeadroom is the vertical gap above the current stack height a new
// piece spawns into.
const spawnHeadroom = 4

// Input is the mutable state of one piece falling onto one board under one
// Environment. It is cheap to copy and is meant to be short-lived, owned by
// a generation loop for the duration of one input sequence.
type Input struct {
	b    board.Board
	p    piece.Piece
	env  *environment.Environment
	last finesse.Key
	hasLast bool
}

// New places a piece of kind `kind` in rotation North at the spawn anchor
// (1, board.Height()+4).
func New(b board.Board, kind piece.Kind, env *environment.Environment) Input {
	return Input{
		b:   b,
		p:   piece.New(kind, piece.North, 1, b.Height()+spawnHeadroom),
		env: env,
	}
}

// Board returns the current board.
func (in *Input) Board() board.Board { return in.b }

// Piece returns the current active piece fingerprint.
func (in *Input) Piece() piece.Piece { return in.p }

// LastAction returns the last primitive action that actually changed the
// piece, if any.
func (in *Input) LastAction() (finesse.Key, bool) { return in.last, in.hasLast }

// valid reports whether p is a legal position: every materialized cell
// must have x < board.Width and must be empty on the board; any
// out-of-bounds (negative) cell makes the piece invalid.
func (in *Input) valid(p piece.Piece) (bool, error) {
	cells, err := p.Cells(in.env.Tables)
	if err != nil {
		return false, err
	}
	for _, c := range cells {
		if !c.Valid {
			return false, nil
		}
		if c.Cell.X >= board.Width {
			return false, nil
		}
		if in.b.Get(c.Cell.X, c.Cell.Y) {
			return false, nil
		}
	}
	return true, nil
}

func (in *Input) tryMove(candidate piece.Piece, key finesse.Key) (bool, error) {
	ok, err := in.valid(candidate)
	if err != nil || !ok {
		return false, err
	}
	in.p = candidate
	in.last = key
	in.hasLast = true
	return true, nil
}

// MoveLeft shifts the anchor one column left, if legal.
func (in *Input) MoveLeft() (bool, error) {
	return in.tryMove(in.p.With(-1, 0), finesse.MoveLeft)
}

// MoveRight shifts the anchor one column right, if legal.
func (in *Input) MoveRight() (bool, error) {
	return in.tryMove(in.p.With(1, 0), finesse.MoveRight)
}

// SoftDrop moves the anchor down one row, if legal.
func (in *Input) SoftDrop() (bool, error) {
	return in.tryMove(in.p.With(0, -1), finesse.SoftDrop)
}

// DasLeft repeats MoveLeft until the next step would be invalid.
func (in *Input) DasLeft() (bool, error) {
	moved := false
	for {
		ok, err := in.valid(in.p.With(-1, 0))
		if err != nil {
			return moved, err
		}
		if !ok {
			break
		}
		in.p = in.p.With(-1, 0)
		moved = true
	}
	if moved {
		in.last = finesse.DasLeft
		in.hasLast = true
	}
	return moved, nil
}

// DasRight repeats MoveRight until the next step would be invalid.
func (in *Input) DasRight() (bool, error) {
	moved := false
	for {
		ok, err := in.valid(in.p.With(1, 0))
		if err != nil {
			return moved, err
		}
		if !ok {
			break
		}
		in.p = in.p.With(1, 0)
		moved = true
	}
	if moved {
		in.last = finesse.DasRight
		in.hasLast = true
	}
	return moved, nil
}

// SonicDrop repeats SoftDrop until the next step would be invalid.
func (in *Input) SonicDrop() (bool, error) {
	moved := false
	for {
		ok, err := in.valid(in.p.With(0, -1))
		if err != nil {
			return moved, err
		}
		if !ok {
			break
		}
		in.p = in.p.With(0, -1)
		moved = true
	}
	if moved {
		in.last = finesse.SonicDrop
		in.hasLast = true
	}
	return moved, nil
}

func (in *Input) rotate(to piece.Rotation, key finesse.Key) (bool, error) {
	kicks, ok := in.env.Tables.Kicks(in.p.Kind, in.p.Rotation, to)
	if !ok {
		return false, &piece.ErrConfigMissing{Kind: in.p.Kind, Rot: in.p.Rotation, To: to, What: "kick"}
	}
	for _, off := range kicks {
		candidate := in.p.WithRotation(to).With(off.DX, off.DY)
		ok, err := in.valid(candidate)
		if err != nil {
			return false, err
		}
		if ok {
			in.p = candidate
			in.last = key
			in.hasLast = true
			return true, nil
		}
	}
	// no kick in the list worked: rotation fails silently, piece unchanged.
	return false, nil
}

// RotateCW rotates clockwise, trying each kick offset in order.
func (in *Input) RotateCW() (bool, error) {
	return in.rotate(in.p.Rotation.CW(), finesse.RotateCW)
}

// RotateCCW rotates counter-clockwise, trying each kick offset in order.
func (in *Input) RotateCCW() (bool, error) {
	return in.rotate(in.p.Rotation.CCW(), finesse.RotateCCW)
}

// Rotate180 rotates 180 degrees, trying each kick offset in order.
func (in *Input) Rotate180() (bool, error) {
	return in.rotate(in.p.Rotation.Opposite(), finesse.Rotate180)
}

// Hold is a no-op at the Input level; hold-slot bookkeeping is handled one
// layer up (see internal/pcgen's queue-order planner).
func (in *Input) Hold() (bool, error) {
	return false, nil
}

// Apply dispatches a single key to its primitive action.
func (in *Input) Apply(k finesse.Key) (bool, error) {
	switch k {
	case finesse.MoveLeft:
		return in.MoveLeft()
	case finesse.MoveRight:
		return in.MoveRight()
	case finesse.DasLeft:
		return in.DasLeft()
	case finesse.DasRight:
		return in.DasRight()
	case finesse.SoftDrop:
		return in.SoftDrop()
	case finesse.SonicDrop:
		return in.SonicDrop()
	case finesse.RotateCW:
		return in.RotateCW()
	case finesse.RotateCCW:
		return in.RotateCCW()
	case finesse.Rotate180:
		return in.Rotate180()
	case finesse.Hold:
		return in.Hold()
	default:
		return false, nil
	}
}

// ApplyFinesse replays every key of f, in order.
func (in *Input) ApplyFinesse(f finesse.Finesse) error {
	for i := 0; i < f.Len(); i++ {
		k, _ := f.Get(i)
		if _, err := in.Apply(k); err != nil {
			return err
		}
	}
	return nil
}

// IsSpin reports whether the last successful action was a rotation and at
// least 3 of the current rotation's spin-detection corners are occupied. A
// corner at (x,y) counts as occupied if it is out of bounds (x<0, y<0,
// x>=board.Width, y>=board height) or the board cell is set. A missing
// corner table entry makes IsSpin false rather than an error.
func (in *Input) IsSpin() bool {
	if !in.hasLast {
		return false
	}
	switch in.last {
	case finesse.RotateCW, finesse.RotateCCW, finesse.Rotate180:
	default:
		return false
	}
	corners, ok := in.env.Tables.Corners(in.p.Kind, in.p.Rotation)
	if !ok {
		return false
	}
	h := in.b.Height()
	occupied := 0
	for _, off := range corners {
		x := in.p.X + off.DX
		y := in.p.Y + off.DY
		if x < 0 || y < 0 || x >= board.Width || y >= h || in.b.Get(x, y) {
			occupied++
		}
	}
	return occupied >= 3
}

// Place locks the current piece onto the board. If hd is true, a sonic drop
// is performed first. Every materialized cell is set and the board is
// skimmed. The Input is conceptually consumed: callers should not reuse it
// after Place.
func (in *Input) Place(hd bool) (board.Board, error) {
	if hd {
		if _, err := in.SonicDrop(); err != nil {
			return board.Board{}, err
		}
	}
	cells, err := in.p.Cells(in.env.Tables)
	if err != nil {
		return board.Board{}, err
	}
	out := in.b
	for _, c := range cells {
		if c.Valid {
			out.Set(c.Cell.X, c.Cell.Y, true)
		}
	}
	out.Skim()
	return out, nil
}
