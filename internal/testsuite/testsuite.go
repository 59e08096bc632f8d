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

// Package testsuite runs scenario files of placement and perfect-clear
// assertions against a loaded Environment, one line per scenario, and
// prints a pass/fail report. It plays the same role the teacher's EPD
// test-suite runner plays for chess positions (one opcode per line, one
// result row per test), with "place" and "pc" opcodes standing in for the
// teacher's "bm"/"am"/"dm".
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fourwide/stax/internal/board"
	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/logging"
	"github.com/fourwide/stax/internal/pcgen"
	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/placementgen"
	"github.com/fourwide/stax/internal/queue"
)

var out = logging.Out
var log = logging.GetLog("testsuite")

// testType distinguishes the two scenario opcodes this runner understands.
type testType uint8

const (
	place testType = iota
	pc
)

// resultType is the outcome of running one Test.
type resultType uint8

const (
	notTested resultType = iota
	skipped
	failed
	success
)

func (rt resultType) String() string {
	switch rt {
	case notTested:
		return "Not tested"
	case skipped:
		return "Skipped"
	case failed:
		return "Failed"
	case success:
		return "Success"
	default:
		return "N/A"
	}
}

// Test is one parsed scenario line, plus the outcome once run.
type Test struct {
	id   string
	line string
	tt   testType

	// place fields
	startBoard  board.Board
	kind        piece.Kind
	resultBoard board.Board
	maxLen      int // 0 means unconstrained

	// pc fields
	n int
	q queue.Queue

	rType resultType
	detail string
}

// SuiteResult sums the outcomes of a completed run.
type SuiteResult struct {
	Counter        int
	SuccessCounter int
	FailedCounter  int
	SkippedCounter int
}

// Suite is a parsed scenario file ready to run.
type Suite struct {
	Tests      []*Test
	FilePath   string
	LastResult *SuiteResult
}

var placeRe = regexp.MustCompile(`^place\s+(\S+)\s+(\S)\s*->\s*(\S+)(?:\s+maxlen\s+(\d+))?\s*;\s*id\s+"([^"]*)"\s*$`)
var pcRe = regexp.MustCompile(`^pc\s+(\d+)\s+(\S+)\s*;\s*id\s+"([^"]*)"\s*$`)

// NewSuite reads path and parses every non-blank, non-comment line into a
// Test. A line that matches neither opcode is logged and skipped, the way
// the teacher's getTest silently drops lines it cannot parse as EPD.
func NewSuite(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := &Suite{FilePath: path}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, ok := parseLine(line)
		if !ok {
			log.Warningf("testsuite: could not parse line %q", line)
			continue
		}
		s.Tests = append(s.Tests, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseLine(line string) (*Test, bool) {
	if m := placeRe.FindStringSubmatch(line); m != nil {
		startBoard, err := board.Parse(normalizeBoard(m[1]))
		if err != nil {
			return nil, false
		}
		resultBoard, err := board.Parse(normalizeBoard(m[3]))
		if err != nil {
			return nil, false
		}
		maxLen := 0
		if m[4] != "" {
			maxLen, _ = strconv.Atoi(m[4])
		}
		return &Test{
			id:          m[5],
			line:        line,
			tt:          place,
			startBoard:  startBoard,
			kind:        piece.Kind(m[2][0]),
			resultBoard: resultBoard,
			maxLen:      maxLen,
		}, true
	}
	if m := pcRe.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, false
		}
		q, err := queue.Parse(m[2])
		if err != nil {
			return nil, false
		}
		return &Test{id: m[3], line: line, tt: pc, n: n, q: q}, true
	}
	return nil, false
}

// normalizeBoard lets a scenario write "-" for an empty board without
// needing an explicit row.
func normalizeBoard(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

// Run runs every Test in the suite against env, printing a per-test line
// and a summary report, mirroring the teacher's RunTests output shape.
func (s *Suite) Run(env *environment.Environment) {
	if len(s.Tests) == 0 {
		out.Printf("No tests to run\n")
		return
	}

	out.Printf("Running Test Suite\n")
	out.Printf("==================================================================\n")
	out.Printf("Scenario file: %s\n", s.FilePath)
	out.Printf("Date:          %s\n", time.Now().Local())
	out.Printf("No of tests:   %d\n", len(s.Tests))
	out.Println()

	pcCache := map[int][]queue.History{}

	start := time.Now()
	for i, t := range s.Tests {
		runOne(t, env, pcCache)
		out.Printf("Test %d of %d: %s -- %s (%s)\n", i+1, len(s.Tests), t.id, t.rType, t.detail)
	}
	elapsed := time.Since(start)

	tr := &SuiteResult{}
	for _, t := range s.Tests {
		tr.Counter++
		switch t.rType {
		case skipped:
			tr.SkippedCounter++
		case failed:
			tr.FailedCounter++
		case success:
			tr.SuccessCounter++
		}
	}
	s.LastResult = tr

	out.Printf("\n")
	out.Printf("Results for Test Suite\n")
	out.Printf("------------------------------------------------------------------\n")
	for i, t := range s.Tests {
		out.Printf(" %-4d | %-10s | %-40s | %s\n", i+1, t.rType, t.id, t.detail)
	}
	out.Printf("------------------------------------------------------------------\n")
	out.Printf("Successful: %d\n", tr.SuccessCounter)
	out.Printf("Failed:     %d\n", tr.FailedCounter)
	out.Printf("Skipped:    %d\n", tr.SkippedCounter)
	out.Printf("Test time:  %s\n", elapsed)
}

func runOne(t *Test, env *environment.Environment, pcCache map[int][]queue.History) {
	switch t.tt {
	case place:
		runPlaceTest(t, env)
	case pc:
		runPCTest(t, env, pcCache)
	default:
		t.rType = notTested
		t.detail = "unknown test type"
	}
}

func runPlaceTest(t *Test, env *environment.Environment) {
	placements, err := placementgen.GetNextBoards(t.startBoard, t.kind, env)
	if err != nil {
		t.rType = failed
		t.detail = fmt.Sprintf("error: %v", err)
		return
	}
	fin, ok := placements[t.resultBoard]
	if !ok {
		t.rType = failed
		t.detail = "expected resulting board not found"
		return
	}
	if t.maxLen > 0 && fin.Len() > t.maxLen {
		t.rType = failed
		t.detail = fmt.Sprintf("finesse length %d exceeds maxlen %d", fin.Len(), t.maxLen)
		return
	}
	t.rType = success
	t.detail = fmt.Sprintf("finesse=%s", fin.Short())
}

func runPCTest(t *Test, env *environment.Environment, cache map[int][]queue.History) {
	if t.n < 1 {
		t.rType = skipped
		t.detail = "n must be >= 1"
		return
	}
	histories, ok := cache[t.n]
	if !ok {
		var err error
		histories, err = pcgen.Generate(t.n, env, pcgen.NullReporter)
		if err != nil {
			t.rType = failed
			t.detail = fmt.Sprintf("error: %v", err)
			return
		}
		cache[t.n] = histories
	}
	for _, h := range histories {
		if h.Queue().Equal(t.q) {
			t.rType = success
			t.detail = fmt.Sprintf("witness=%s", h.Short())
			return
		}
	}
	t.rType = failed
	t.detail = "queue not found among perfect clears"
}

// Run is the convenience entry point cmd/stax's -testsuite flag calls: it
// parses path and immediately runs it against env.
func Run(path string, env *environment.Environment) {
	s, err := NewSuite(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	s.Run(env)
}
