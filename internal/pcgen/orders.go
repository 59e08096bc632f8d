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
	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/queue"
)

// GetQueueOrders enumerates every ordering of q reachable by playing it with
// exactly one hold slot available. The recursion does not track which piece
// currently occupies the hold slot at call time; see DESIGN.md for why this
// is left as the source's open question rather than guessed at.
//
//   |q| = 1  => yield q
//   else     => for each tail ordering of q[1:], yield q[0] ++ tail
//               for each tail ordering of [q[0]] ++ q[2:], yield q[1] ++ tail
func GetQueueOrders(q queue.Queue) []queue.Queue {
	if q.Len() <= 1 {
		return []queue.Queue{q}
	}
	first, _ := q.Get(0)
	second, _ := q.Get(1)
	rest := q.Slice(2, q.Len())

	var out []queue.Queue

	tailA := q.Slice(1, q.Len())
	for _, t := range GetQueueOrders(tailA) {
		out = append(out, prepend(first, t))
	}

	tailB := prepend(first, rest)
	for _, t := range GetQueueOrders(tailB) {
		out = append(out, prepend(second, t))
	}

	return out
}

// prepend returns a new Queue with k as its first kind, followed by q.
func prepend(k piece.Kind, q queue.Queue) queue.Queue {
	kinds := make([]piece.Kind, 0, q.Len()+1)
	kinds = append(kinds, k)
	for i := 0; i < q.Len(); i++ {
		v, _ := q.Get(i)
		kinds = append(kinds, v)
	}
	return queue.Of(kinds...)
}
