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

package harts

import "sort"

// TypeAny is the default hart type.
const TypeAny = "any"

// CPUType describes a supported hart type.
type CPUType struct {
	Name string
	XLEN int
}

var cpuTypes = map[string]CPUType{
	TypeAny:        {Name: TypeAny, XLEN: 64},
	"rv32":         {Name: "rv32", XLEN: 32},
	"rv64":         {Name: "rv64", XLEN: 64},
	"sifive-e31":   {Name: "sifive-e31", XLEN: 32},
	"sifive-e51":   {Name: "sifive-e51", XLEN: 64},
	"sifive-u34":   {Name: "sifive-u34", XLEN: 32},
	"sifive-u54":   {Name: "sifive-u54", XLEN: 64},
	"lowrisc-ibex": {Name: "lowrisc-ibex", XLEN: 32},
}

// LookupCPUType returns the CPUType for the name.
func LookupCPUType(name string) (CPUType, bool) {
	t, ok := cpuTypes[name]
	return t, ok
}

// CPUTypes returns the names of every supported hart type in alphabetical
// order.
func CPUTypes() []string {
	n := make([]string, 0, len(cpuTypes))
	for k := range cpuTypes {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
