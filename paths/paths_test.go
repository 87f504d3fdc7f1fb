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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rvboard/rvboard/paths"
	"github.com/rvboard/rvboard/test"
)

func TestPaths(t *testing.T) {
	// a .rvboard directory in the current directory takes precedence
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Mkdir(".rvboard", 0o755))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".rvboard", "foo", "bar", "baz"))

	pth, err = paths.ResourcePath("", "board.yaml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".rvboard", "board.yaml"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rvboard")
}
