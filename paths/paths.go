// This file is part of vgaverify.
//
// vgaverify is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgaverify is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgaverify.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to the harness resources.
//
// Resources live in the .vgaverify directory. If that directory exists in the
// current working directory then that is used. Otherwise the directory is
// placed in the user's configuration directory, as reported by
// os.UserConfigDir(), without the leading dot.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const baseResourcePath = ".vgaverify"

// ResourcePath returns the resource string, prefixed with the resource base
// path. The directory is created if it does not already exist.
func ResourcePath(resource ...string) (string, error) {
	b := getBasePath()

	p := make([]string, 0, len(resource)+1)
	p = append(p, b)
	p = append(p, resource...)
	fp := filepath.Join(p...)

	if err := os.MkdirAll(filepath.Dir(fp), 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return fp, nil
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, baseResourcePath[1:])
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Useful for snapshot files.
func UniqueFilename(prepend string, extension string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	extension = strings.TrimPrefix(extension, ".")
	if extension == "" {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s.%s", prepend, timestamp, extension)
}
