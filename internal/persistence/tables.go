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

// Package persistence loads the three ruleset table files (.piece, .kick,
// .corners) into a piece.Tables, and loads/saves the per-(kicktable,flags,N)
// perfect-clear result tables the REPL caches to disk. Every format here is
// line-oriented text grounded on the original engine's file/*.rs loaders.
package persistence

import (
	"bufio"
	"io"
	"strings"

	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/staxerr"
)

// eachLine scans r line by line, skipping blanks and '#' comments, and
// calls fn with the trimmed, non-empty, non-comment lines in order.
func eachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// LoadShapes reads a .piece file and registers every declared shape into t.
// Each line has the form "K.R=CELLS@COLOR", e.g. "I.N=(0,0)(1,0)(2,0)(3,0)@I".
func LoadShapes(t *piece.Tables, r io.Reader) error {
	return eachLine(r, func(line string) error {
		dot := strings.IndexByte(line, '.')
		eq := strings.IndexByte(line, '=')
		at := strings.LastIndexByte(line, '@')
		if dot < 0 || eq < 0 || at < 0 || dot > eq || eq > at {
			return staxerr.Malformed("persistence: malformed shape line %q", line)
		}
		if dot != 1 {
			return staxerr.Malformed("persistence: shape line %q has a multi-character kind", line)
		}
		kind := piece.Kind(line[0])
		rot, ok := piece.ParseRotation(line[dot+1 : eq])
		if !ok {
			return staxerr.Malformed("persistence: shape line %q has an unknown rotation", line)
		}
		offsets, err := parseCoords(line[eq+1 : at])
		if err != nil {
			return err
		}
		color := piece.Color(0)
		if rest := line[at+1:]; len(rest) == 1 {
			color = piece.Color(rest[0])
		} else {
			return staxerr.Malformed("persistence: shape line %q has a malformed color", line)
		}
		t.AddShape(kind, rot, offsets, color)
		return nil
	})
}

// LoadKicks reads a .kick file and registers every declared kick into t.
// Each line has the form "K.SRCDST=TESTS", e.g. "T.NE=(0,0)(-1,0)(-1,1)(0,-2)(-1,-2)".
// SRC and DST are each a single rotation code character.
func LoadKicks(t *piece.Tables, r io.Reader) error {
	return eachLine(r, func(line string) error {
		dot := strings.IndexByte(line, '.')
		eq := strings.IndexByte(line, '=')
		if dot < 0 || eq < 0 || dot > eq {
			return staxerr.Malformed("persistence: malformed kick line %q", line)
		}
		if dot != 1 {
			return staxerr.Malformed("persistence: kick line %q has a multi-character kind", line)
		}
		if eq-dot != 3 {
			return staxerr.Malformed("persistence: kick line %q needs a 2-character source/target code", line)
		}
		kind := piece.Kind(line[0])
		from, ok := piece.ParseRotation(line[dot+1 : dot+2])
		if !ok {
			return staxerr.Malformed("persistence: kick line %q has an unknown source rotation", line)
		}
		to, ok := piece.ParseRotation(line[dot+2 : eq])
		if !ok {
			return staxerr.Malformed("persistence: kick line %q has an unknown target rotation", line)
		}
		offsets, err := parseCoords(line[eq+1:])
		if err != nil {
			return err
		}
		t.AddKick(kind, from, to, offsets)
		return nil
	})
}

// LoadCorners reads a .corners file and registers every declared corner set
// into t. Each line has the form "K.R=CORNERS", e.g. "T.N=(0,0)(2,0)(0,2)(2,2)".
func LoadCorners(t *piece.Tables, r io.Reader) error {
	return eachLine(r, func(line string) error {
		dot := strings.IndexByte(line, '.')
		eq := strings.IndexByte(line, '=')
		if dot < 0 || eq < 0 || dot > eq {
			return staxerr.Malformed("persistence: malformed corners line %q", line)
		}
		if dot != 1 {
			return staxerr.Malformed("persistence: corners line %q has a multi-character kind", line)
		}
		kind := piece.Kind(line[0])
		rot, ok := piece.ParseRotation(line[dot+1 : eq])
		if !ok {
			return staxerr.Malformed("persistence: corners line %q has an unknown rotation", line)
		}
		offsets, err := parseCoords(line[eq+1:])
		if err != nil {
			return err
		}
		t.AddCorners(kind, rot, offsets)
		return nil
	})
}
