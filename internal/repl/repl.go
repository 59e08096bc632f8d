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

// Package repl is the line-oriented command loop a driving process talks to
// on stdin/stdout: one verb per line, one response line back. It owns the
// loaded piece tables and the disk-backed cache of perfect-clear result
// tables, and builds a fresh Environment per command the way the original
// engine's Repl::respond does, grounded on the teacher's uci package split
// between a blocking Loop() and a buffer-capturing Command() used by tests.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/logging"
	"github.com/fourwide/stax/internal/pcgen"
	"github.com/fourwide/stax/internal/persistence"
	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/queue"
	"github.com/fourwide/stax/internal/staxerr"
	"github.com/fourwide/stax/internal/util"
)

var log = logging.GetLog("repl")

// State is the loop's fixed session context: the loaded ruleset tables, the
// data directory persisted PC tables are read from and written to, and the
// drop regime/foresight every Environment built for a command shares. The
// 180/tap/das/hold/upstack flags are not session-fixed: spec.md §6 gives
// them as a `<flags>` argument on each "pcp"/"pcr" line, so they are parsed
// per command instead, matching the original's per-command
// Environment::new(state, kick_name, drop, vision).
type State struct {
	Tables        *piece.Tables
	DataDir       string
	KickTable     string
	Drop          environment.DropRegime
	Foresight     int
	DefaultVision int

	mu    sync.Mutex
	cache map[string][]queue.History
}

// NewState builds a repl State around an already-loaded Tables.
func NewState(tables *piece.Tables, dataDir, kickTable string, drop environment.DropRegime, foresight, defaultVision int) *State {
	return &State{
		Tables:        tables,
		DataDir:       dataDir,
		KickTable:     kickTable,
		Drop:          drop,
		Foresight:     foresight,
		DefaultVision: defaultVision,
		cache:         map[string][]queue.History{},
	}
}

func (s *State) buildEnv(vision int, tap, das, can180, hold, upstack bool) *environment.Environment {
	return environment.New(s.Tables, tap, das, can180, hold, upstack, s.Drop, vision, s.Foresight)
}

// pcs returns every queue of length <= n that perfect-clears an empty
// board, loading it from disk if a table already exists there and
// generating (then persisting) it otherwise, unless force is set, in which
// case any cached or persisted table is bypassed and a fresh one is
// generated and re-persisted. Grounded on environment.rs's
// pcs()/parse_pcs() cache-then-generate flow; kept here rather than in
// internal/environment because the disk path is a repl-session concern
// (data dir, kick table name), not a ruleset property.
func (s *State) pcs(env *environment.Environment, n int, force bool) (map[string]queue.History, error) {
	flags := env.FlagsString()
	key := fmt.Sprintf("%s|%s|%d", s.KickTable, flags, n)

	if !force {
		s.mu.Lock()
		if hs, ok := s.cache[key]; ok {
			s.mu.Unlock()
			return toPCTable(hs), nil
		}
		s.mu.Unlock()

		path := persistence.TablePath(s.DataDir, s.KickTable, flags, n)
		if hs, err := persistence.LoadTable(path); err == nil {
			s.mu.Lock()
			s.cache[key] = hs
			s.mu.Unlock()
			return toPCTable(hs), nil
		}
	}

	log.Infof("generating pc table kicktable=%s flags=%s n=%d force=%v", s.KickTable, flags, n, force)
	hs, err := pcgen.Generate(n, env, reportLogger{})
	if err != nil {
		return nil, err
	}
	if err := persistence.SaveTable(s.DataDir, s.KickTable, flags, n, hs); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = hs
	s.mu.Unlock()
	return toPCTable(hs), nil
}

func toPCTable(hs []queue.History) map[string]queue.History {
	m := make(map[string]queue.History, len(hs))
	for _, h := range hs {
		m[h.Queue().String()] = h
	}
	return m
}

type reportLogger struct{}

func (reportLogger) Report(format string, args ...interface{}) { log.Debugf(format, args...) }

// Command handles a single line of input and returns the single-line
// response, without touching any I/O: "pcp <flags> <vision> <n> [F]"
// generates (or loads) and persists a perfect-clear table; "pcr <flags>
// <queue> <n>" answers with the best chain of perfect clears through
// queue. An unrecognized verb, wrong argument count, or any downstream
// error collapses to the single-character diagnostic token from
// internal/staxerr.
func (s *State) Command(line string) string {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return "?"
	}
	switch argv[0] {
	case "pcp":
		return s.pcp(argv[1:])
	case "pcr":
		return s.pcr(argv[1:])
	default:
		return "?"
	}
}

// pcp handles "pcp <flags> <vision> <N> [F]": generate (or load) and
// persist the perfect-clear table for N under the session's kick table,
// using the ruleset flags given rather than the session defaults. A
// trailing literal "F" forces regeneration even if a table is already
// cached or persisted.
func (s *State) pcp(args []string) string {
	if len(args) != 3 && len(args) != 4 {
		return "?"
	}
	tap, das, can180, hold, upstack, err := environment.ParseFlags(args[0])
	if err != nil {
		return "?"
	}
	vision, err := strconv.Atoi(args[1])
	if err != nil {
		return "?"
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return "?"
	}
	force := false
	if len(args) == 4 {
		if args[3] != "F" {
			return "?"
		}
		force = true
	}
	env := s.buildEnv(vision, tap, das, can180, hold, upstack)
	if _, err := s.pcs(env, n, force); err != nil {
		log.Warningf("pcp failed: %v", err)
		return staxerr.Token(err)
	}
	return ""
}

// pcr handles "pcr <flags> <QUEUE> <N>": run MaxPCsInQueue over the cached
// (or freshly generated) PC table for N under the given flags, and emit the
// witnessing history chain. Vision is not part of this verb's wire form
// (spec.md §6); the session's configured default vision is used to build
// (or load) the underlying table.
func (s *State) pcr(args []string) string {
	if len(args) != 3 {
		return "?"
	}
	tap, das, can180, hold, upstack, err := environment.ParseFlags(args[0])
	if err != nil {
		return "?"
	}
	q, err := queue.Parse(args[1])
	if err != nil {
		return "?"
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return "?"
	}
	env := s.buildEnv(s.DefaultVision, tap, das, can180, hold, upstack)
	pcTable, err := s.pcs(env, n, false)
	if err != nil {
		log.Warningf("pcr failed: %v", err)
		return staxerr.Token(err)
	}
	_, histories := pcgen.MaxPCsInQueue(q, pcTable, n)
	if len(histories) == 0 {
		return "?"
	}
	parts := make([]string, 0, len(histories))
	for _, h := range histories {
		parts = append(parts, h.Short())
	}
	return strings.Join(parts, " | ")
}

// Handle controls a loop spawned with Spawn.
type Handle struct {
	running *util.Bool
	done    chan struct{}
}

// Stop signals the loop to exit after its current read.
func (h *Handle) Stop() { h.running.Store(false) }

// Wait blocks until the loop has exited.
func (h *Handle) Wait() { <-h.done }

// Spawn starts the read-eval-respond loop in its own goroutine, reading
// lines from r and writing responses to w, one per line, until r is
// exhausted or Stop is called.
func (s *State) Spawn(r io.Reader, w io.Writer) *Handle {
	running := util.NewBool(true)
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(r)
		bw := bufio.NewWriter(w)
		for running.Load() && scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			resp := s.Command(line)
			fmt.Fprintln(bw, resp)
			bw.Flush()
		}
	}()
	return &Handle{running: running, done: done}
}

// Loop runs the read-eval-respond loop on r/w until r is exhausted,
// blocking the calling goroutine.
func (s *State) Loop(r io.Reader, w io.Writer) {
	s.Spawn(r, w).Wait()
}
