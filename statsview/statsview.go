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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the default listening address of the stats server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// URL returns the address of the statistics page for the listening address.
func URL(addr string) string {
	return fmt.Sprintf("http://%s%s", addr, path)
}

// Launch a new goroutine running the stats server at addr. If addr is empty
// then Address is used. A message with the URL is written to output.
func Launch(output io.Writer, addr string) {
	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()

	if output != nil {
		fmt.Fprintf(output, "stats server available at %s\n", URL(addr))
	}
}
