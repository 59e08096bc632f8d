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

// Package queue holds the fixed-capacity ordered sequence of upcoming piece
// kinds ("queue"), the per-piece finesse pairing ("pair") and the queue of
// pairs that witnesses how a queue was placed ("history").
package queue

import (
	"fmt"
	"strings"

	"github.com/fourwide/stax/assert"
	"github.com/fourwide/stax/internal/piece"
)

// Capacity is the maximum number of piece kinds a Queue can hold.
const Capacity = 64

// Queue is a fixed-capacity ordered sequence of piece kinds with O(1)
// push/pop/get, value-type equality, length-then-lexicographic ordering
// and a string rendering (the kinds concatenated as ASCII letters).
type Queue struct {
	kinds [Capacity]piece.Kind
	len   uint8
}

// Push appends a kind, returning false if the queue is already full. The
// assert.DEBUG check below is false in package assert's only (release)
// build, so an overflowing push is reported solely by that return: callers are
// expected to have sized their queues within Capacity up front, so hitting
// this in practice means a generator bug, not a recoverable condition.
func (q *Queue) Push(k piece.Kind) bool {
	if assert.DEBUG {
		assert.Assert(q.len < Capacity, "queue: push exceeds capacity %d", Capacity)
	}
	if q.len >= Capacity {
		return false
	}
	q.kinds[q.len] = k
	q.len++
	return true
}

// Pop removes and returns the last kind pushed.
func (q *Queue) Pop() (piece.Kind, bool) {
	if q.len == 0 {
		return 0, false
	}
	q.len--
	return q.kinds[q.len], true
}

// Get returns the kind at index i.
func (q Queue) Get(i int) (piece.Kind, bool) {
	if i < 0 || i >= int(q.len) {
		return 0, false
	}
	return q.kinds[i], true
}

// Len returns the number of kinds in the queue.
func (q Queue) Len() int { return int(q.len) }

// Slice returns the sub-queue [lo, hi).
func (q Queue) Slice(lo, hi int) Queue {
	var out Queue
	for i := lo; i < hi && i < int(q.len); i++ {
		out.Push(q.kinds[i])
	}
	return out
}

// String renders the queue as its kinds concatenated in order.
func (q Queue) String() string {
	var sb strings.Builder
	for i := 0; i < int(q.len); i++ {
		sb.WriteByte(byte(q.kinds[i]))
	}
	return sb.String()
}

// Of builds a Queue from a slice of kinds.
func Of(kinds ...piece.Kind) Queue {
	var q Queue
	for _, k := range kinds {
		q.Push(k)
	}
	return q
}

// Parse builds a Queue from a string of kind letters.
func Parse(s string) (Queue, error) {
	var q Queue
	for i := 0; i < len(s); i++ {
		if !q.Push(piece.Kind(s[i])) {
			return Queue{}, fmt.Errorf("queue: %q exceeds capacity %d", s, Capacity)
		}
	}
	return q, nil
}

// Compare orders queues by length, then lexicographically by kind.
func (q Queue) Compare(o Queue) int {
	if q.len != o.len {
		if q.len < o.len {
			return -1
		}
		return 1
	}
	for i := 0; i < int(q.len); i++ {
		if q.kinds[i] != o.kinds[i] {
			if q.kinds[i] < o.kinds[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether two queues hold the same kinds in the same order.
func (q Queue) Equal(o Queue) bool { return q.Compare(o) == 0 }

// Less reports whether q sorts before o under Compare.
func (q Queue) Less(o Queue) bool { return q.Compare(o) < 0 }
