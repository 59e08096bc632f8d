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

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile resolves path to an existing file, trying in turn: the path
// as given (if absolute), relative to the working directory, relative to
// the running executable, and relative to the user's home directory.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, fmt.Errorf("util: file not found: %s", file)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if dir, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(dir), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if dir, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	return file, fmt.Errorf("util: file not found: %s", file)
}

// ResolveFolder resolves path to an existing folder the same way
// ResolveFile resolves a file. The folder is not created.
func ResolveFolder(folder string) (string, error) {
	folder = filepath.Clean(folder)

	if filepath.IsAbs(folder) {
		if folderExists(folder) {
			return folder, nil
		}
		return folder, fmt.Errorf("util: folder not found: %s", folder)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if dir, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(dir), folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if dir, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(dir, folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	return folder, fmt.Errorf("util: folder not found: %s", folder)
}

// ResolveCreateFolder returns an absolute folderPath as is, creating it if
// missing. For a relative folderPath only its last element is used: it is
// looked up, or created, in the working directory, then (if creating there
// fails) in the OS temp directory. The executable and home directories that
// ResolveFolder searches are not searched here.
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if folderExists(folderPath) {
			return folderPath, nil
		}
		return folderPath, os.MkdirAll(folderPath, 0o755)
	}

	dir, _ := os.Getwd()
	candidate := filepath.Join(dir, filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	if err := os.Mkdir(candidate, 0o755); err == nil {
		return candidate, nil
	}

	candidate = filepath.Join(os.TempDir(), filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	return candidate, os.Mkdir(candidate, 0o755)
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

func folderExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.IsDir()
}
