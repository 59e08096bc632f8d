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

package persistence

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fourwide/stax/internal/finesse"
	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/queue"
	"github.com/fourwide/stax/internal/staxerr"
)

// TablePath builds the on-disk path for a perfect-clear result table,
// one file per (kick table name, ruleset flags, queue length) combination.
// Grounded on the original's "data/{fingerprint}_{n}.pc" naming, split here
// into separate name/flags components since this engine's fingerprint is
// the pair of them rather than one opaque string.
func TablePath(dataDir, kickTable, flags string, n int) string {
	return filepath.Join(dataDir, fmt.Sprintf("%s_%s_%d.pc", kickTable, flags, n))
}

// LoadTable reads a persisted perfect-clear table from path. The header
// line is informational only; every history is reconstructed from its body
// line regardless of what the header's "total" claims.
func LoadTable(path string) ([]queue.History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, staxerr.IO(err)
	}
	defer f.Close()

	var out []queue.History
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		h, err := parseHistoryLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, staxerr.IO(err)
	}
	sortHistories(out)
	return dedupHistories(out), nil
}

// parseHistoryLine parses one "QUEUE = (K:F) (K:F) …" body line into a
// History. The queue half of the line is not itself trusted: the kinds and
// their order are taken from the pair list, the same way environment.rs's
// parse_pcs discards its queue column and rebuilds from the pairs.
func parseHistoryLine(line string) (queue.History, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return queue.History{}, staxerr.Malformed("persistence: pc table line %q has no '='", line)
	}
	var h queue.History
	for _, tok := range strings.Fields(line[eq+1:]) {
		tok = strings.TrimPrefix(tok, "(")
		tok = strings.TrimSuffix(tok, ")")
		colon := strings.IndexByte(tok, ':')
		if colon < 0 {
			return queue.History{}, staxerr.Malformed("persistence: pc table pair %q has no ':'", tok)
		}
		kindPart := tok[:colon]
		if len(kindPart) != 1 {
			return queue.History{}, staxerr.Malformed("persistence: pc table pair %q has a multi-character kind", tok)
		}
		f, err := finesse.Parse(tok[colon+1:])
		if err != nil {
			return queue.History{}, staxerr.Malformed("persistence: pc table pair %q: %v", tok, err)
		}
		if !h.Push(queue.Pair{Kind: piece.Kind(kindPart[0]), Finesse: f}) {
			return queue.History{}, staxerr.Malformed("persistence: pc table line %q exceeds history capacity", line)
		}
	}
	return h, nil
}

// SaveTable writes histories to path as a perfect-clear result table for
// the given (kickTable, flags, n) combination, creating dataDir if needed.
// The body is sorted lexicographically by queue string and deduplicated by
// queue before writing, so histories with distinct queues are written in the
// same order regardless of generation order.
func SaveTable(dataDir, kickTable, flags string, n int, histories []queue.History) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return staxerr.IO(err)
	}
	sorted := append([]queue.History(nil), histories...)
	sortHistories(sorted)
	sorted = dedupHistories(sorted)

	path := TablePath(dataDir, kickTable, flags, n)
	f, err := os.Create(path)
	if err != nil {
		return staxerr.IO(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "#n=%d;kicktable=%s;total=%d;%s\n", n, kickTable, len(sorted), flags); err != nil {
		return staxerr.IO(err)
	}
	for _, h := range sorted {
		if _, err := fmt.Fprintf(w, "%s = %s\n", h.Queue().String(), h.Short()); err != nil {
			return staxerr.IO(err)
		}
	}
	if err := w.Flush(); err != nil {
		return staxerr.IO(err)
	}
	return nil
}

func sortHistories(hs []queue.History) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].Queue().String() < hs[j].Queue().String() })
}

// dedupHistories drops histories whose queue repeats an earlier one,
// keeping the first occurrence. Finesse length is not compared, and since
// sortHistories is not stable, which of several same-queue histories comes
// first is not defined. hs must already be sorted by queue.
func dedupHistories(hs []queue.History) []queue.History {
	if len(hs) == 0 {
		return hs
	}
	out := hs[:1]
	for _, h := range hs[1:] {
		if !h.Queue().Equal(out[len(out)-1].Queue()) {
			out = append(out, h)
		}
	}
	return out
}
