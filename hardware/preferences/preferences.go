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

package preferences

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rvboard/rvboard/curated"
	"github.com/rvboard/rvboard/hardware/harts"
	"github.com/rvboard/rvboard/paths"
)

// Error patterns used by the preferences package.
const (
	InvalidPreference = "preferences: %v"
	NoPrefsFile       = "preferences: no preferences file (%s)"
	PrefsFileError    = "preferences: %s: %v"
)

// Platform limits and defaults.
const (
	MaxHarts       = 2
	DefaultCPUType = harts.TypeAny
	DefaultSerial  = "stdio"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "board.yaml"

// Preferences of the board.
type Preferences struct {
	// number of harts in the hart array
	NumHarts int `yaml:"harts"`

	// hart type. see harts.CPUTypes()
	CPUType string `yaml:"cpu"`

	// path or URL of an image to load into RAM. may be empty
	Kernel string `yaml:"kernel,omitempty"`

	// serial backend specification. see serial.Open()
	Serial string `yaml:"serial"`
}

// NewPreferences returns preferences with default values.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.NumHarts = 1
	p.CPUType = DefaultCPUType
	p.Kernel = ""
	p.Serial = DefaultSerial
}

// Validate checks the values of the preferences.
func (p *Preferences) Validate() error {
	if p.NumHarts < 1 || p.NumHarts > MaxHarts {
		return curated.Errorf(InvalidPreference, fmt.Sprintf("harts must be between 1 and %d", MaxHarts))
	}
	if _, ok := harts.LookupCPUType(p.CPUType); !ok {
		return curated.Errorf(InvalidPreference, curated.Errorf(harts.UnknownCPUType, p.CPUType))
	}
	return nil
}

func (p *Preferences) String() string {
	b, err := yaml.Marshal(p)
	if err != nil {
		return err.Error()
	}
	return string(b)
}

// Read decodes YAML from the reader over the existing values. Unknown fields
// are an error. The result is validated.
func (p *Preferences) Read(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	n := *p
	if err := dec.Decode(&n); err != nil && !errors.Is(err, io.EOF) {
		return curated.Errorf(InvalidPreference, err)
	}
	if err := n.Validate(); err != nil {
		return err
	}
	*p = n

	return nil
}

// Load reads preferences from the file. Values missing from the file keep
// their default value.
func Load(path string) (*Preferences, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, path)
		}
		return nil, curated.Errorf(PrefsFileError, path, err)
	}

	p := NewPreferences()
	if err := p.Read(bytes.NewReader(d)); err != nil {
		return nil, curated.Errorf(PrefsFileError, path, err)
	}

	return p, nil
}

// LoadDefault reads preferences from the default preferences file. A missing
// file is not an error and results in default preferences.
func LoadDefault() (*Preferences, error) {
	pth, err := paths.ResourcePath("", DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p, err := Load(pth)
	if curated.Is(err, NoPrefsFile) {
		return NewPreferences(), nil
	}
	return p, err
}

// Save writes the preferences to the file.
func (p *Preferences) Save(path string) error {
	b, err := yaml.Marshal(p)
	if err != nil {
		return curated.Errorf(PrefsFileError, path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return curated.Errorf(PrefsFileError, path, err)
	}
	return nil
}
