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

// Package pcgen enumerates every finite piece queue of bounded length that
// perfect-clears an empty board, recording one witnessing input history per
// queue. It composes placementgen over a frontier of (board, history)
// pairs, the way the teacher's search package composes move generation over
// a frontier of search nodes, with a transition cache standing in for its
// transposition table.
package pcgen

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fourwide/stax/internal/board"
	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/placementgen"
	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/queue"
)

// Reporter receives progress updates during a long generation run. It lets
// a REPL driver surface progress without pcgen importing it back, mirroring
// how the teacher's search package reports through a uciInterface rather
// than importing uci directly.
type Reporter interface {
	Report(format string, args ...interface{})
}

type nullReporter struct{}

func (nullReporter) Report(string, ...interface{}) {}

// NullReporter is a Reporter that discards every report.
var NullReporter Reporter = nullReporter{}

type transKey struct {
	Board board.Board
	Kind  piece.Kind
}

type frontierItem struct {
	Board   board.Board
	History queue.History
}

// transitionCache memoizes (board, kind) -> sorted placements so repeated
// frontier states reuse one placementgen.GetNextBoards call. It may be
// cleared at any point under memory pressure without affecting correctness,
// only performance.
type transitionCache struct {
	mu sync.Mutex
	m  map[transKey][]placementgen.Placement
}

func newTransitionCache() *transitionCache {
	return &transitionCache{m: map[transKey][]placementgen.Placement{}}
}

func (c *transitionCache) get(b board.Board, kind piece.Kind, env *environment.Environment) ([]placementgen.Placement, error) {
	key := transKey{Board: b, Kind: kind}
	c.mu.Lock()
	trans, ok := c.m[key]
	c.mu.Unlock()
	if ok {
		return trans, nil
	}
	m, err := placementgen.GetNextBoards(b, kind, env)
	if err != nil {
		return nil, err
	}
	trans = placementgen.Sorted(m)
	c.mu.Lock()
	c.m[key] = trans
	c.mu.Unlock()
	return trans, nil
}

// Clear discards all memoized transitions.
func (c *transitionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = map[transKey][]placementgen.Placement{}
}

// Generate enumerates every queue of length <= n that perfect-clears an
// empty board, emitting one History per distinct queue (duplicate queues
// realized by different finesse paths are collapsed). Traversal is
// breadth-first over (board, history) frontier elements so shorter queues
// are discovered first; output is nonetheless fully deduplicated and sorted
// by queue (shorter queues first, then kind by kind, as Queue.Compare
// orders them) before being returned, so iteration order never leaks
// into the result.
func Generate(n int, env *environment.Environment, reporter Reporter) ([]queue.History, error) {
	if n < 1 {
		return nil, fmt.Errorf("pcgen: N must be >= 1, got %d", n)
	}
	if reporter == nil {
		reporter = NullReporter
	}

	cache := newTransitionCache()
	visited := map[string]bool{}
	emitted := map[string]queue.History{}

	frontier := []frontierItem{{}}
	kinds := env.Tables.Kinds()

	for depth := 0; len(frontier) > 0; depth++ {
		reporter.Report("pcgen: depth %d, frontier %d, emitted %d", depth, len(frontier), len(emitted))
		nextFrontier, err := expand(frontier, kinds, env, cache, n, visited, emitted)
		if err != nil {
			return nil, err
		}
		frontier = nextFrontier
	}

	results := make([]queue.History, 0, len(emitted))
	for _, h := range emitted {
		results = append(results, h)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Queue().Compare(results[j].Queue()) < 0 })
	return results, nil
}

func expand(
	frontier []frontierItem,
	kinds []piece.Kind,
	env *environment.Environment,
	cache *transitionCache,
	n int,
	visited map[string]bool,
	emitted map[string]queue.History,
) ([]frontierItem, error) {
	var next []frontierItem
	for _, item := range frontier {
		perKind, err := generatePiecePlacements(item.Board, kinds, env, cache)
		if err != nil {
			return nil, err
		}
		for kindIdx, kind := range kinds {
			trans := perKind[kindIdx]
			for _, pr := range trans {
				if pr.Board.Height() > n {
					continue
				}
				newHist := item.History
				if !newHist.Push(queue.Pair{Kind: kind, Finesse: pr.Finesse}) {
					continue
				}
				if pr.Board.IsEmpty() && newHist.Len() <= n {
					qstr := newHist.Queue().String()
					if _, dup := emitted[qstr]; !dup {
						emitted[qstr] = newHist
					}
					continue
				}
				if newHist.Len() < n && !pr.Board.IsEmpty() {
					vk := pr.Board.String() + "|" + newHist.Queue().String()
					if visited[vk] {
						continue
					}
					visited[vk] = true
					next = append(next, frontierItem{Board: pr.Board, History: newHist})
				}
			}
		}
	}
	return next, nil
}

// generatePiecePlacements is the bounded-fan-out helper used by expand: it
// runs placementgen across every piece kind of one
// frontier element in parallel, bounded by GOMAXPROCS, and returns results
// indexed by kind position so the caller can flatten them back into the
// single fixed kinds-order expand() would have produced serially. Observable
// BFS ordering therefore never depends on goroutine completion order, only
// on internal speedup.
func generatePiecePlacements(b board.Board, kinds []piece.Kind, env *environment.Environment, cache *transitionCache) ([][]placementgen.Placement, error) {
	results := make([][]placementgen.Placement, len(kinds))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			trans, err := cache.get(b, kind, env)
			if err != nil {
				return err
			}
			results[i] = trans
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
