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

package queue

import (
	"strings"

	"github.com/fourwide/stax/assert"
	"github.com/fourwide/stax/internal/finesse"
	"github.com/fourwide/stax/internal/piece"
)

// HistoryCapacity is the maximum number of (kind, finesse) pairs a History
// can hold.
const HistoryCapacity = 16

// Pair records that a piece of Kind was placed using Finesse.
type Pair struct {
	Kind    piece.Kind
	Finesse finesse.Finesse
}

// Short renders the pair in the persisted "(k:f)" form.
func (p Pair) Short() string {
	return "(" + p.Kind.String() + ":" + p.Finesse.Short() + ")"
}

// History is the ordered sequence of Pairs witnessing how a queue was
// placed. Equality, ordering and hashing depend only on the sequence of
// kinds: two histories that place the same queue with different finesses
// compare equal, collapsing distinct input paths onto one emitted queue.
type History struct {
	pairs [HistoryCapacity]Pair
	len   uint8
}

// Push appends a pair, returning false if capacity is exhausted.
func (h *History) Push(p Pair) bool {
	if assert.DEBUG {
		assert.Assert(h.len < HistoryCapacity, "history: push exceeds capacity %d", HistoryCapacity)
	}
	if h.len >= HistoryCapacity {
		return false
	}
	h.pairs[h.len] = p
	h.len++
	return true
}

// Get returns the pair at index i.
func (h History) Get(i int) (Pair, bool) {
	if i < 0 || i >= int(h.len) {
		return Pair{}, false
	}
	return h.pairs[i], true
}

// Len returns the number of pairs recorded.
func (h History) Len() int { return int(h.len) }

// Queue projects the history onto the sequence of kinds it placed.
func (h History) Queue() Queue {
	var q Queue
	for i := 0; i < int(h.len); i++ {
		q.Push(h.pairs[i].Kind)
	}
	return q
}

// Equal reports whether two histories placed the same queue, ignoring
// finesse.
func (h History) Equal(o History) bool {
	return h.Queue().Equal(o.Queue())
}

// Short renders the history in the persisted line form: a space-separated
// list of "(k:f)" pairs.
func (h History) Short() string {
	parts := make([]string, h.len)
	for i := 0; i < int(h.len); i++ {
		parts[i] = h.pairs[i].Short()
	}
	return strings.Join(parts, " ")
}
