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

package finesse

import (
	"fmt"
	"strings"

	"github.com/fourwide/stax/assert"
)

// Capacity is the maximum number of keys a Finesse can hold: 32 keys at 4
// bits each pack into a 128-bit value, here two uint64 words.
const Capacity = 32

// Finesse is an ordered, fixed-capacity sequence of Keys plus a spin flag.
// It is a plain comparable value type: push is O(1), random access by
// index is O(1), and two Finesses compare equal iff their packed bits,
// length and spin flag all match.
type Finesse struct {
	lo, hi uint64
	len    uint8
	spin   bool
}

// New returns an empty Finesse.
func New() Finesse {
	return Finesse{}
}

// With builds a Finesse from a slice of keys, in order.
func With(keys []Key) Finesse {
	var f Finesse
	for _, k := range keys {
		f.Push(k)
	}
	return f
}

// Push appends a key. It returns false and leaves the Finesse unchanged if
// the capacity is already exhausted.
func (f *Finesse) Push(k Key) bool {
	if assert.DEBUG {
		assert.Assert(f.len < Capacity, "finesse: push exceeds capacity %d", Capacity)
	}
	if f.len >= Capacity {
		return false
	}
	bitIdx := 4 * uint(f.len)
	if bitIdx < 64 {
		f.lo |= uint64(k&0xF) << bitIdx
	} else {
		f.hi |= uint64(k&0xF) << (bitIdx - 64)
	}
	f.len++
	return true
}

// Get returns the key at index i.
func (f Finesse) Get(i int) (Key, bool) {
	if i < 0 || i >= int(f.len) {
		return 0, false
	}
	bitIdx := 4 * uint(i)
	if bitIdx < 64 {
		return Key(f.lo>>bitIdx) & 0xF, true
	}
	return Key(f.hi>>(bitIdx-64)) & 0xF, true
}

// Len returns the number of keys pushed.
func (f Finesse) Len() int { return int(f.len) }

// Spin reports whether this finesse's placement was flagged as a spin.
func (f Finesse) Spin() bool { return f.spin }

// SetSpin sets the spin flag.
func (f *Finesse) SetSpin(v bool) { f.spin = v }

// Keys materializes the finesse as a plain slice, in insertion order.
func (f Finesse) Keys() []Key {
	out := make([]Key, f.Len())
	for i := range out {
		out[i], _ = f.Get(i)
	}
	return out
}

// Short renders the finesse as its comma-separated short-code form, with a
// trailing "!" if the placement was a spin.
func (f Finesse) Short() string {
	parts := make([]string, f.Len())
	for i := range parts {
		k, _ := f.Get(i)
		parts[i] = k.Short()
	}
	s := strings.Join(parts, ",")
	if f.spin {
		s += "!"
	}
	return s
}

// Parse parses a Finesse from its Short() representation.
func Parse(s string) (Finesse, error) {
	var f Finesse
	spin := strings.HasSuffix(s, "!")
	s = strings.TrimSuffix(s, "!")
	if s == "" {
		f.spin = spin
		return f, nil
	}
	for _, tok := range strings.Split(s, ",") {
		k, ok := ParseKeyShort(tok)
		if !ok {
			return Finesse{}, fmt.Errorf("finesse: unknown key code %q", tok)
		}
		if !f.Push(k) {
			return Finesse{}, fmt.Errorf("finesse: exceeds capacity %d", Capacity)
		}
	}
	f.spin = spin
	return f, nil
}
