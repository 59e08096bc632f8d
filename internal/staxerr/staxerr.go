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

// Package staxerr carries the three typed error kinds the core and its
// file-loading layer can raise, plus the single-character diagnostic token
// the REPL boundary reduces any of them to.
package staxerr

import (
	"errors"
	"fmt"

	"github.com/fourwide/stax/internal/piece"
)

// Kind distinguishes the engine's error families, per spec.md §7.
type Kind int

const (
	// ConfigMissing is a shape/kick/corner lookup for a (kind, rotation)
	// pair the loaded tables do not cover.
	ConfigMissing Kind = iota
	// ParseMalformed is a table or coordinate syntax violation at load time.
	ParseMalformed
	// PersistenceIO is a file read/write failure.
	PersistenceIO
)

func (k Kind) String() string {
	switch k {
	case ConfigMissing:
		return "ConfigMissing"
	case ParseMalformed:
		return "ParseMalformed"
	case PersistenceIO:
		return "PersistenceIO"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying error with the Kind the REPL boundary needs to
// pick a response token.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err under the given Kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Malformed wraps a formatted message as a ParseMalformed error.
func Malformed(format string, args ...interface{}) *Error {
	return &Error{Kind: ParseMalformed, Err: fmt.Errorf(format, args...)}
}

// IO wraps err as a PersistenceIO error.
func IO(err error) *Error {
	return &Error{Kind: PersistenceIO, Err: err}
}

// Token reduces any error to the single-character diagnostic the REPL
// responds with: "?" for a malformed command or table (the caller's fault,
// fixable by resubmitting something well-formed), "!" for everything else
// (a processing failure: missing config, I/O). An unrecognized verb or
// missing-table lookup are surfaced the same way regardless of how deep in
// the call stack they originated, matching spec.md §7's "single-character
// diagnostic" propagation rule.
func Token(err error) string {
	if err == nil {
		return ""
	}
	var se *Error
	if errors.As(err, &se) {
		if se.Kind == ParseMalformed {
			return "?"
		}
		return "!"
	}
	var cm *piece.ErrConfigMissing
	if errors.As(err, &cm) {
		return "!"
	}
	return "!"
}
