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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fourwide/stax/config"
	"github.com/fourwide/stax/internal/benchsize"
	"github.com/fourwide/stax/internal/environment"
	"github.com/fourwide/stax/internal/logging"
	"github.com/fourwide/stax/internal/persistence"
	"github.com/fourwide/stax/internal/piece"
	"github.com/fourwide/stax/internal/repl"
	"github.com/fourwide/stax/internal/testsuite"
)

const version = "0.1.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	genLogLvl := flag.String("genloglvl", "", "placement/PC generation log level\n(critical|error|warning|notice|info|debug)")
	dataDir := flag.String("datadir", "", "folder holding the .piece/.kick/.corners table files and cached .pc tables")
	kickTable := flag.String("kicktable", "", "name of the ruleset table set to load (expects <name>.piece/.kick/.corners in -datadir)")
	drop := flag.String("drop", "", "drop regime\n(sonic|soft|hard|both)")
	vision := flag.Int("vision", -1, "lookahead depth for placement generation")
	tap := flag.Bool("tap", false, "override: enable tap moves")
	das := flag.Bool("das", false, "override: enable DAS moves")
	c180 := flag.Bool("180", false, "override: enable 180 rotation")
	hold := flag.Bool("hold", false, "override: enable hold")
	upstack := flag.Bool("upstack", false, "override: enable upstacking")
	profileMode := flag.String("profile", "", "write a pprof profile while running\n(cpu|mem|block)")
	testSuite := flag.String("testsuite", "", "path to a scenario file or folder to run instead of starting the REPL")
	benchN := flag.Int("benchsize", 0, "run the PC frontier-size benchmark up to the given queue length instead of starting the REPL")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*genLogLvl]; found {
		config.GenLogLevel = lvl
	}
	if *dataDir != "" {
		config.Settings.Ruleset.DataDir = *dataDir
	}
	if *kickTable != "" {
		config.Settings.Ruleset.KickTable = *kickTable
	}
	if *drop != "" {
		config.Settings.Ruleset.Drop = *drop
	}
	if *vision >= 0 {
		config.Settings.Ruleset.Vision = *vision
	}
	if *tap {
		config.Settings.Ruleset.CanTap = true
	}
	if *das {
		config.Settings.Ruleset.CanDas = true
	}
	if *c180 {
		config.Settings.Ruleset.Can180 = true
	}
	if *hold {
		config.Settings.Ruleset.CanHold = true
	}
	if *upstack {
		config.Settings.Ruleset.Upstack = true
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "block":
		defer profile.Start(profile.BlockProfile, profile.ProfilePath(".")).Stop()
	}

	log := logging.GetLog("main")

	tables := piece.NewTables()
	if err := loadTables(tables, config.Settings.Ruleset.DataDir, config.Settings.Ruleset.KickTable); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	dropRegime, ok := environment.ParseDropRegime(config.Settings.Ruleset.Drop)
	if !ok {
		fmt.Printf("unknown drop regime %q\n", config.Settings.Ruleset.Drop)
		os.Exit(1)
	}

	if *testSuite != "" {
		env := environment.New(tables,
			config.Settings.Ruleset.CanTap, config.Settings.Ruleset.CanDas, config.Settings.Ruleset.Can180,
			config.Settings.Ruleset.CanHold, config.Settings.Ruleset.Upstack, dropRegime,
			config.Settings.Ruleset.Vision, config.Settings.Ruleset.Foresight)
		testsuite.Run(*testSuite, env)
		return
	}

	if *benchN > 0 {
		env := environment.New(tables,
			config.Settings.Ruleset.CanTap, config.Settings.Ruleset.CanDas, config.Settings.Ruleset.Can180,
			config.Settings.Ruleset.CanHold, config.Settings.Ruleset.Upstack, dropRegime,
			config.Settings.Ruleset.Vision, config.Settings.Ruleset.Foresight)
		benchsize.Run(*benchN, env)
		return
	}

	state := repl.NewState(tables, config.Settings.Ruleset.DataDir, config.Settings.Ruleset.KickTable,
		dropRegime, config.Settings.Ruleset.Foresight, config.Settings.Ruleset.Vision)

	log.Infof("stax %s ready, kicktable=%s datadir=%s", version, config.Settings.Ruleset.KickTable, config.Settings.Ruleset.DataDir)
	state.Loop(os.Stdin, os.Stdout)
}

func loadTables(t *piece.Tables, dataDir, kickTable string) error {
	if err := loadOne(t, filepath.Join(dataDir, kickTable+".piece"), persistence.LoadShapes); err != nil {
		return err
	}
	if err := loadOne(t, filepath.Join(dataDir, kickTable+".kick"), persistence.LoadKicks); err != nil {
		return err
	}
	if err := loadOne(t, filepath.Join(dataDir, kickTable+".corners"), persistence.LoadCorners); err != nil {
		return err
	}
	return nil
}

func loadOne(t *piece.Tables, path string, load func(*piece.Tables, io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("stax: cannot load %s: %w", path, err)
	}
	defer f.Close()
	return load(t, f)
}

func printVersionInfo() {
	out.Printf("stax %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
