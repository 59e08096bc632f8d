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

// Package environment is the pure, immutable ruleset configuration that
// Input, PlacementGen and PCGen are parameterized over: which keys are
// admissible, which drop regime is in effect, and a reference to the piece
// tables. It never mutates during a generation run.
package environment

import (
	"fmt"

	"github.com/fourwide/stax/internal/finesse"
	"github.com/fourwide/stax/internal/piece"
)

// DropRegime selects which drop-to-the-floor keys are admissible.
type DropRegime int

const (
	Sonic DropRegime = iota
	Soft
	Hard
	Both
)

// Environment is the immutable ruleset an Input, PlacementGen or PCGen run
// is configured with.
type Environment struct {
	CanTap   bool
	CanDas   bool
	Can180   bool
	CanHold  bool
	Upstack  bool
	Drop     DropRegime
	Vision   int
	Foresight int
	Tables   *piece.Tables
}

// New builds an Environment from its ruleset flags, drop regime and vision
// depth, against an already-loaded Tables. internal/repl builds a fresh
// Environment for each "pcp"/"pcr" command from that command's flags (its
// flags and the session's kick-table name select which persisted
// perfect-clear table to load or create).
func New(tables *piece.Tables, canTap, canDas, can180, canHold, upstack bool, drop DropRegime, vision, foresight int) *Environment {
	return &Environment{
		CanTap:    canTap,
		CanDas:    canDas,
		Can180:    can180,
		CanHold:   canHold,
		Upstack:   upstack,
		Drop:      drop,
		Vision:    vision,
		Foresight: foresight,
		Tables:    tables,
	}
}

// ParseDropRegime accepts the persisted drop-regime names: "sonic", "soft",
// "hard", "both".
func ParseDropRegime(s string) (DropRegime, bool) {
	switch s {
	case "sonic":
		return Sonic, true
	case "soft":
		return Soft, true
	case "hard":
		return Hard, true
	case "both":
		return Both, true
	default:
		return 0, false
	}
}

// Keyboard returns the admissible keys in the fixed canonical order:
// tap moves, then das moves, then CW/CCW rotation, then 180 (if enabled),
// then the drop keys for the configured regime. Hold is never included: it
// is handled one layer up, at the PC/combo level, not at placement level.
func (e *Environment) Keyboard() []finesse.Key {
	var keys []finesse.Key
	if e.CanTap {
		keys = append(keys, finesse.MoveLeft, finesse.MoveRight)
	}
	if e.CanDas {
		keys = append(keys, finesse.DasLeft, finesse.DasRight)
	}
	keys = append(keys, finesse.RotateCW, finesse.RotateCCW)
	if e.Can180 {
		keys = append(keys, finesse.Rotate180)
	}
	switch e.Drop {
	case Soft:
		keys = append(keys, finesse.SoftDrop)
	case Sonic:
		keys = append(keys, finesse.SonicDrop)
	case Both:
		keys = append(keys, finesse.SoftDrop, finesse.SonicDrop)
	case Hard:
		// no drop key is enumerated during BFS; hard drop is applied once,
		// at placement time.
	}
	return keys
}

// FlagsString renders the 5-character ruleset flag string used by the
// persistence layer: one character each for {180, tap, das, hold, upstack}
// in that order, using the "on" letter or '-' when the flag is off.
func (e *Environment) FlagsString() string {
	bit := func(on bool, letter byte) byte {
		if on {
			return letter
		}
		return '-'
	}
	return string([]byte{
		bit(e.Can180, 'f'),
		bit(e.CanTap, 't'),
		bit(e.CanDas, 'd'),
		bit(e.CanHold, 'h'),
		bit(e.Upstack, 'u'),
	})
}

// ParseFlags parses the 5-character flag string back into its booleans.
func ParseFlags(s string) (tap, das, can180, hold, upstack bool, err error) {
	if len(s) != 5 {
		return false, false, false, false, false, fmt.Errorf("environment: flags %q must be 5 characters", s)
	}
	check := func(c byte, on, off byte) (bool, error) {
		switch c {
		case on:
			return true, nil
		case off:
			return false, nil
		default:
			return false, fmt.Errorf("environment: invalid flag character %q", c)
		}
	}
	var e error
	if can180, e = check(s[0], 'f', '-'); e != nil {
		return false, false, false, false, false, e
	}
	if tap, e = check(s[1], 't', '-'); e != nil {
		return false, false, false, false, false, e
	}
	if das, e = check(s[2], 'd', '-'); e != nil {
		return false, false, false, false, false, e
	}
	if hold, e = check(s[3], 'h', '-'); e != nil {
		return false, false, false, false, false, e
	}
	if upstack, e = check(s[4], 'u', '-'); e != nil {
		return false, false, false, false, false, e
	}
	return tap, das, can180, hold, upstack, nil
}
