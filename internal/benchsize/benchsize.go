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

// Package benchsize measures how the perfect-clear search frontier grows
// with queue length: for each depth 1..N it runs pcgen.Generate and reports
// elapsed time, emitted queue count and a throughput figure, the way the
// teacher's movegen.Perft walks increasing depths and reports nodes/nps.
// There is no branching factor to divide and conquer here (pcgen already
// explores the whole frontier per depth), so this is a size/timing probe
// rather than a move-count verifier.
package benchsize

import (
	"time"

	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/logging"
	"github.com/fourwide/stax/internal/pcgen"
)

var out = logging.Out

type reporter struct{}

func (reporter) Report(format string, args ...interface{}) { out.Printf(format+"\n", args...) }

// Run runs pcgen.Generate for every depth from 1 to n against env, printing
// one report block per depth: elapsed time, queue count found and a
// queues-per-second figure. It does not stop early: a depth producing zero
// perfect-clear queues still reports and the loop continues to n, since a
// ruleset could plausibly skip a depth and recover at the next.
func Run(n int, env *environment.Environment) {
	if n <= 0 {
		n = 1
	}
	out.Printf("Running PC frontier-size benchmark up to depth %d\n", n)
	out.Printf("-----------------------------------------\n")

	for depth := 1; depth <= n; depth++ {
		start := time.Now()
		histories, err := pcgen.Generate(depth, env, reporter{})
		elapsed := time.Since(start)
		if err != nil {
			out.Printf("depth %d: error: %v\n", depth, err)
			continue
		}
		qps := float64(len(histories)) / elapsed.Seconds()
		out.Printf("Depth %d\n", depth)
		out.Printf("   Time      : %s\n", elapsed)
		out.Printf("   Queues    : %d\n", len(histories))
		out.Printf("   Queues/sec: %.1f\n", qps)
		out.Printf("-----------------------------------------\n")
	}

	out.Printf("Finished PC frontier-size benchmark up to depth %d\n\n", n)
}
