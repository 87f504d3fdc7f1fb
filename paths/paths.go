// This file is part of rvboard.
//
// rvboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rvboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rvboard.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".rvboard"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base resource directory. Neither sub nor file
// are required; the empty string is treated as no path element.
//
// The function does not create the directory or check that the resource
// exists.
func ResourcePath(sub string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, sub, file), nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath, nil
	}

	return filepath.Join(cfg, baseResourcePath[1:]), nil
}
