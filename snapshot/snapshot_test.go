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

package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvboard/rvboard/snapshot"
)

func TestRoundTrip(t *testing.T) {
	s := snapshot.State{
		Label:   "board",
		CPUType: "any",
		Harts: []snapshot.Hart{
			{ID: 0, XLEN: 64, PC: 0x1004, ResetVec: 0x1004},
			{ID: 1, XLEN: 64, PC: 0x1004, ResetVec: 0x1004},
		},
		Regions: []snapshot.Region{
			{Label: "mrom", Base: 0x1000, Size: 0x2000, ReadOnly: true},
		},
		ResetVector: []byte{0, 0, 0, 0, 0x93, 0x02, 0x80, 0x00},
		RAMDigest:   "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	}

	b, err := snapshot.Encode(s)
	require.NoError(t, err)

	d, err := snapshot.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, s, d)

	// encoding is deterministic
	c, err := snapshot.Encode(d)
	require.NoError(t, err)
	assert.Equal(t, b, c)
}

func TestDecodeError(t *testing.T) {
	_, err := snapshot.Decode([]byte{0xff, 0x00})
	assert.Error(t, err)
}
