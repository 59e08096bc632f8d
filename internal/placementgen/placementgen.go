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

// Package placementgen enumerates every distinct board reachable by locking
// one piece after some legal input sequence from spawn, each tagged with
// one shortest (BFS) finesse that achieves it. This is the generation loop
// the teacher's movegen package models as a queue-driven expansion with a
// visited set guarding against re-exploring the same state.
package placementgen

import (
	"sort"

	"github.com/fourwide/stax/internal/board"
	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/finesse"
	"github.com/fourwide/stax/internal/input"
	"github.com/fourwide/stax/internal/piece"
)

// Placement pairs a resulting board with the shortest finesse that reaches
// it.
type Placement struct {
	Board   board.Board
	Finesse finesse.Finesse
}

func simulate(b board.Board, kind piece.Kind, env *environment.Environment, f finesse.Finesse) (input.Input, error) {
	in := input.New(b, kind, env)
	if err := in.ApplyFinesse(f); err != nil {
		return input.Input{}, err
	}
	return in, nil
}

type bfsItem struct {
	f finesse.Finesse
}

// GetNextBoards performs a breadth-first search over input sequences,
// starting from the spawn position of `kind` on `b`, and returns every
// distinct resulting board paired with one shortest finesse that reaches
// it. BFS ordering over finesse length guarantees each board is recorded
// with a shortest finesse, ties broken by env.Keyboard()'s enumeration
// order. Hold is never among the generated keys: it is not part of
// env.Keyboard().
func GetNextBoards(b board.Board, kind piece.Kind, env *environment.Environment) (map[board.Board]finesse.Finesse, error) {
	start := input.New(b, kind, env)
	visitedActive := map[piece.Piece]bool{start.Piece(): true}

	queue := []bfsItem{{f: finesse.New()}}
	finals := map[board.Board]finesse.Finesse{}
	keys := env.Keyboard()

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		placeIn, err := simulate(b, kind, env, cur.f)
		if err != nil {
			return nil, err
		}
		// spin-ness is a property of the state the finesse leaves the piece
		// in, evaluated before the implicit sonic drop Place(true) performs:
		// that drop's own last-successful-action would otherwise overwrite
		// the rotation that actually produced the spin.
		spinF := cur.f
		spinF.SetSpin(placeIn.IsSpin())
		finalBoard, err := placeIn.Place(true)
		if err != nil {
			return nil, err
		}
		if _, seen := finals[finalBoard]; !seen {
			finals[finalBoard] = spinF
		}

		for _, k := range keys {
			next := cur.f
			if !next.Push(k) {
				continue
			}
			activeIn, err := simulate(b, kind, env, next)
			if err != nil {
				return nil, err
			}
			p := activeIn.Piece()
			if !visitedActive[p] {
				visitedActive[p] = true
				queue = append(queue, bfsItem{f: next})
			}
		}
	}

	return finals, nil
}

// Sorted flattens a placement map into a slice, sorted for deterministic
// iteration (by board string, then finesse length, matching the BFS
// shortest-witness order whenever more than one placement shares a board
// string representation, which cannot actually happen since board string is
// injective over the packed bits).
func Sorted(m map[board.Board]finesse.Finesse) []Placement {
	out := make([]Placement, 0, len(m))
	for b, f := range m {
		out = append(out, Placement{Board: b, Finesse: f})
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].Board.String(), out[j].Board.String()
		if si != sj {
			return si < sj
		}
		return out[i].Finesse.Len() < out[j].Finesse.Len()
	})
	return out
}
