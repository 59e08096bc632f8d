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

package pcgen

import (
	"fmt"

	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/queue"
)

// NoSave is the sentinel recorded by GetPCSaves when a queue ordering is
// itself a complete PC queue, with no piece left over to save into the
// hold slot.
const NoSave piece.Kind = 255

// GetPCSaves scans every hold-reachable ordering of q (see GetQueueOrders)
// against pcTable, a set of known PC queues keyed by their String(). For
// each ordering q' whose length-1 prefix is itself a known PC queue, the
// last piece of q' is recorded as a post-PC "save" (the piece left in hand
// after the PC completes). For an ordering that is itself a full PC queue,
// NoSave is recorded instead, mapped to the full queue.
func GetPCSaves(q queue.Queue, pcTable map[string]queue.History) map[piece.Kind]queue.Queue {
	saves := map[piece.Kind]queue.Queue{}
	for _, ordering := range GetQueueOrders(q) {
		n := ordering.Len()
		if n == 0 {
			continue
		}
		if _, ok := pcTable[ordering.String()]; ok {
			saves[NoSave] = ordering
			continue
		}
		prefix := ordering.Slice(0, n-1)
		if _, ok := pcTable[prefix.String()]; ok {
			last, _ := ordering.Get(n - 1)
			saves[last] = ordering
		}
	}
	return saves
}

// planState is a DP node: pos is how many pieces of the original queue have
// been consumed, held is the piece (if any) carried over from the previous
// PC's window via a single hold-swap, per GetQueueOrders' recursive
// definition — see DESIGN.md for why this is the interpretation chosen for
// the source's open question about hold-slot bookkeeping.
type planState struct {
	pos  int
	held piece.Kind
	have bool
}

func (s planState) key() string {
	if !s.have {
		return fmt.Sprintf("%d|-", s.pos)
	}
	return fmt.Sprintf("%d|%c", s.pos, s.held)
}

type planResult struct {
	score      int
	histories  []queue.History
}

// MaxPCsInQueue runs a DP over (position, hold) choosing the chain of PCs
// through q that maximizes the number of perfect clears achieved, using
// pcTable (a set of known PC queues, keyed by String(), each mapped to one
// witnessing History) as the set of available moves. It returns the score
// (number of PCs chained) and the histories chosen, in order.
func MaxPCsInQueue(q queue.Queue, pcTable map[string]queue.History, maxPCLen int) (int, []queue.History) {
	memo := map[string]planResult{}
	best := solve(q, planState{pos: 0}, pcTable, maxPCLen, memo)
	return best.score, best.histories
}

func solve(q queue.Queue, s planState, pcTable map[string]queue.History, maxPCLen int, memo map[string]planResult) planResult {
	k := s.key()
	if r, ok := memo[k]; ok {
		return r
	}
	best := planResult{}

	remaining := q.Len() - s.pos
	upper := maxPCLen
	if upper > remaining {
		upper = remaining
	}

	for l := 1; l <= upper; l++ {
		window := q.Slice(s.pos, s.pos+l)

		bases := []queue.Queue{window}
		if s.have {
			bases = append(bases, prepend(s.held, window))
		}

		for _, base := range bases {
			for savedKind, ordering := range GetPCSaves(base, pcTable) {
				var hist queue.History
				var ok bool
				next := planState{pos: s.pos + l}
				if savedKind == NoSave {
					hist, ok = pcTable[ordering.String()]
				} else {
					n := ordering.Len()
					hist, ok = pcTable[ordering.Slice(0, n-1).String()]
					next.held = savedKind
					next.have = true
				}
				if !ok {
					continue
				}
				sub := solve(q, next, pcTable, maxPCLen, memo)
				candidate := planResult{
					score:     1 + sub.score,
					histories: append([]queue.History{hist}, sub.histories...),
				}
				if candidate.score > best.score {
					best = candidate
				}
			}
		}
	}

	memo[k] = best
	return best
}
