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

// Package config holds the global, once-read configuration of the stax
// binary: log levels and the default ruleset a fresh Environment is built
// with when a REPL command does not override it.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the command line arguments
	LogLevel = 4

	// GenLogLevel defines the log level used while a placement/PC generation run is in progress
	GenLogLevel = 4

	// ConfFile is the path config.Setup reads from. Command line handling
	// (cmd/stax) may overwrite this before calling Setup.
	ConfFile = "./config.toml"

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log     logConfiguration
	Ruleset rulesetConfiguration
}

// Setup reads ConfFile once; subsequent calls are a no-op. Missing or
// malformed config files are reported but not fatal: every field already
// carries a usable default from this package's init functions.
func Setup() {
	if initialized {
		return
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Println(err)
	}

	setupLogLvl()
	setupRuleset()

	initialized = true
}

// String renders the effective settings, for diagnostic output.
func (c conf) String() string {
	return fmt.Sprintf(
		"log=%s genlog=%s | kicktable=%s datadir=%s drop=%s vision=%d foresight=%d tap=%t das=%t hold=%t 180=%t upstack=%t defaultN=%d",
		c.Log.LogLvl, c.Log.GenLogLvl,
		c.Ruleset.KickTable, c.Ruleset.DataDir, c.Ruleset.Drop,
		c.Ruleset.Vision, c.Ruleset.Foresight,
		c.Ruleset.CanTap, c.Ruleset.CanDas, c.Ruleset.CanHold, c.Ruleset.Can180, c.Ruleset.Upstack,
		c.Ruleset.DefaultN,
	)
}
