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

package config

// rulesetConfiguration carries the defaults an Environment is built with
// when a REPL command (or cmd/stax flag) does not override them, and the
// on-disk locations the table/persistence files are resolved against.
type rulesetConfiguration struct {
	// DataDir is the folder cmd/stax joins directly with
	// <kicktable>.piece/.kick/.corners and that persisted .pc tables are
	// read from and written to; it is not searched for elsewhere.
	DataDir string

	// KickTable names the default table set to load, e.g. "srs" or "srsx".
	KickTable string

	CanTap  bool
	CanDas  bool
	Can180  bool
	CanHold bool
	Upstack bool

	// Drop is one of "sonic", "soft", "hard", "both".
	Drop string

	Vision    int
	Foresight int

	// DefaultN is a queue-length bound read from the config file and shown
	// by String(); the "pcp"/"pcr" REPL verbs always take N explicitly and
	// do not read it.
	DefaultN int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Ruleset.DataDir = "data"
	Settings.Ruleset.KickTable = "srs"
	Settings.Ruleset.CanTap = true
	Settings.Ruleset.CanDas = true
	Settings.Ruleset.Can180 = false
	Settings.Ruleset.CanHold = true
	Settings.Ruleset.Upstack = false
	Settings.Ruleset.Drop = "sonic"
	Settings.Ruleset.Vision = 1
	Settings.Ruleset.Foresight = 0
	Settings.Ruleset.DefaultN = 4
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupRuleset() {
	if Settings.Ruleset.DataDir == "" {
		Settings.Ruleset.DataDir = "data"
	}
	if Settings.Ruleset.KickTable == "" {
		Settings.Ruleset.KickTable = "srs"
	}
	if Settings.Ruleset.Drop == "" {
		Settings.Ruleset.Drop = "sonic"
	}
	if Settings.Ruleset.DefaultN == 0 {
		Settings.Ruleset.DefaultN = 4
	}
}
