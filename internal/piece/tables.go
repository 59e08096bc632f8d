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

import "sort"

type shapeKey struct {
	Kind Kind
	Rot  Rotation
}

type kickKey struct {
	Kind     Kind
	From, To Rotation
}

type cornerKey struct {
	Kind Kind
	Rot  Rotation
}

type shapeEntry struct {
	offsets []Offset
	color   Color
}

// Tables is the immutable, once-built set of per-ruleset lookups the core
// consumes: shapes per (kind, rotation), kicks per (kind, from, to) and
// spin-detection corners per (kind, rotation). A Tables value is built once
// at startup (typically by internal/persistence from the on-disk table
// files) and never mutated again during a generation run.
type Tables struct {
	shapes  map[shapeKey]shapeEntry
	kicks   map[kickKey][]Offset
	corners map[cornerKey][]Offset
	kinds   []Kind
	known   map[Kind]bool
}

// NewTables returns an empty, writable Tables. Use the Add* methods while
// loading and then treat the result as read-only.
func NewTables() *Tables {
	return &Tables{
		shapes:  map[shapeKey]shapeEntry{},
		kicks:   map[kickKey][]Offset{},
		corners: map[cornerKey][]Offset{},
		known:   map[Kind]bool{},
	}
}

// AddShape registers the shape of (kind, rot). Declaring a shape is what
// makes a Kind known to the table; Kinds() returns kinds in first-declared
// order.
func (t *Tables) AddShape(kind Kind, rot Rotation, offsets []Offset, color Color) {
	t.shapes[shapeKey{kind, rot}] = shapeEntry{offsets: offsets, color: color}
	if !t.known[kind] {
		t.known[kind] = true
		t.kinds = append(t.kinds, kind)
	}
}

// Shape returns the offsets and color declared for (kind, rot).
func (t *Tables) Shape(kind Kind, rot Rotation) ([]Offset, Color, bool) {
	e, ok := t.shapes[shapeKey{kind, rot}]
	if !ok {
		return nil, 0, false
	}
	return e.offsets, e.color, true
}

// AddKick registers the ordered list of kick offsets tried when rotating
// kind from `from` to `to`.
func (t *Tables) AddKick(kind Kind, from, to Rotation, offsets []Offset) {
	t.kicks[kickKey{kind, from, to}] = offsets
}

// Kicks returns the kick offsets for (kind, from, to), in preference order.
func (t *Tables) Kicks(kind Kind, from, to Rotation) ([]Offset, bool) {
	offsets, ok := t.kicks[kickKey{kind, from, to}]
	return offsets, ok
}

// AddCorners registers the spin-detection corner offsets for (kind, rot).
func (t *Tables) AddCorners(kind Kind, rot Rotation, offsets []Offset) {
	t.corners[cornerKey{kind, rot}] = offsets
}

// Corners returns the spin-detection corner offsets for (kind, rot). A
// missing entry is not a configuration error: is_spin() is simply false.
func (t *Tables) Corners(kind Kind, rot Rotation) ([]Offset, bool) {
	offsets, ok := t.corners[cornerKey{kind, rot}]
	return offsets, ok
}

// Kinds returns every piece kind with at least one declared shape, in
// first-declared order.
func (t *Tables) Kinds() []Kind {
	out := make([]Kind, len(t.kinds))
	copy(out, t.kinds)
	return out
}

// SortedKinds returns every known kind sorted by ASCII value, for callers
// that need a stable iteration order independent of load order (e.g.
// persistence, tests).
func (t *Tables) SortedKinds() []Kind {
	out := t.Kinds()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
