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

// Package finesse holds the closed set of input keys and the packed
// fixed-capacity key sequence ("finesse") that records a minimal input
// path realizing one placement.
package finesse

// Key is one of the closed set of inputs the engine understands. Key codes
// fit in 4 bits, dispatched through a tagged enum rather than any
// virtual-dispatch mechanism, since the set never grows.
type Key uint8

const (
	MoveLeft Key = iota
	MoveRight
	DasLeft
	DasRight
	SoftDrop
	SonicDrop
	RotateCW
	RotateCCW
	Rotate180
	Hold
)

var shortCodes = map[Key]string{
	MoveLeft:   "l",
	MoveRight:  "r",
	DasLeft:    "dl",
	DasRight:   "dr",
	RotateCW:   "cw",
	RotateCCW:  "ccw",
	Rotate180:  "f",
	SoftDrop:   "fd",
	SonicDrop:  "sd",
	Hold:       "h",
}

var shortCodesRev = func() map[string]Key {
	m := make(map[string]Key, len(shortCodes))
	for k, v := range shortCodes {
		m[v] = k
	}
	return m
}()

// Short renders the key as its documented short code.
func (k Key) Short() string {
	if s, ok := shortCodes[k]; ok {
		return s
	}
	return "?"
}

// ParseKeyShort parses a key from its documented short code.
func ParseKeyShort(s string) (Key, bool) {
	k, ok := shortCodesRev[s]
	return k, ok
}
