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

package bootloader

import (
	"bytes"
	"crypto/sha1"
	"debug/elf"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rvboard/rvboard/curated"
)

// Error patterns used by the bootloader package.
const (
	LoadError        = "bootloader: %v"
	UnsupportedURL   = "bootloader: unsupported URL scheme (%s)"
	UnexpectedHash   = "bootloader: unexpected hash value (%s)"
	NotLoaded        = "bootloader: image not loaded"
	UnsuitableImage  = "bootloader: unsuitable image: %v"
	OutsideOfMemory  = "bootloader: %d bytes at %#x are outside of %#x -> %#x"
	PlacementFailure = "bootloader: cannot place image: %v"
)

// Memory is the destination area for an image. The offset argument to Poke()
// is relative to Origin().
type Memory interface {
	Origin() uint64
	Size() uint64
	Poke(offset uint64, value uint8) error
}

// Loader is used to specify the boot image to load.
type Loader struct {
	// filename or URL of the image
	Filename string

	// expected sha1 hash of the image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without path or extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// IsELF returns true if the loaded data begins with the ELF magic number.
func (ld Loader) IsELF() bool {
	return bytes.HasPrefix(ld.Data, []byte(elf.ELFMAG))
}

// Load the image data. Subsequent calls to Load() do nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = strings.ToLower(u.Scheme)
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = fetch(ld.Filename)
	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
	default:
		// a windows style drive letter looks like a URL scheme
		if len(scheme) == 1 {
			data, err = os.ReadFile(ld.Filename)
		} else {
			return curated.Errorf(UnsupportedURL, scheme)
		}
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if len(data) == 0 {
		return curated.Errorf(UnsuitableImage, "empty image")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func fetch(u string) ([]byte, error) {
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", u, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// write data at address, checking that it fits in mem.
func write(mem Memory, address uint64, data []byte) error {
	o := mem.Origin()
	if address < o || address-o > mem.Size() || uint64(len(data)) > mem.Size()-(address-o) {
		return curated.Errorf(OutsideOfMemory, len(data), address, o, o+mem.Size()-1)
	}
	for i, v := range data {
		if err := mem.Poke(address-o+uint64(i), v); err != nil {
			return curated.Errorf(PlacementFailure, err)
		}
	}
	return nil
}

// Place writes the loaded image into mem. Flat images are written at dest.
// The returned value is the entry point of the image: the ELF entry address
// or dest for flat images.
func (ld *Loader) Place(mem Memory, dest uint64) (uint64, error) {
	if !ld.HasLoaded() {
		return 0, curated.Errorf(NotLoaded)
	}

	if ld.IsELF() {
		return ld.placeELF(mem)
	}

	if err := write(mem, dest, ld.Data); err != nil {
		return 0, err
	}

	return dest, nil
}

func (ld *Loader) placeELF(mem Memory) (uint64, error) {
	f, err := elf.NewFile(bytes.NewReader(ld.Data))
	if err != nil {
		return 0, curated.Errorf(UnsuitableImage, err)
	}
	defer f.Close()

	if f.Machine != elf.EM_RISCV {
		return 0, curated.Errorf(UnsuitableImage, fmt.Sprintf("machine type is %s", f.Machine))
	}

	loaded := 0
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD || p.Memsz == 0 {
			continue
		}
		if p.Filesz > p.Memsz {
			return 0, curated.Errorf(UnsuitableImage, "segment file size larger than memory size")
		}
		if p.Memsz > mem.Size() {
			return 0, curated.Errorf(OutsideOfMemory, p.Memsz, p.Paddr, mem.Origin(), mem.Origin()+mem.Size()-1)
		}

		data, err := io.ReadAll(p.Open())
		if err != nil {
			return 0, curated.Errorf(UnsuitableImage, err)
		}

		// zero fill the remainder of the segment (bss)
		seg := make([]byte, p.Memsz)
		copy(seg, data)

		if err := write(mem, p.Paddr, seg); err != nil {
			return 0, err
		}
		loaded++
	}

	if loaded == 0 {
		return 0, curated.Errorf(UnsuitableImage, "no loadable segments")
	}

	return f.Entry, nil
}

// Kernel implements the image loader used by the machine. Each call creates a
// new Loader for the path.
type Kernel struct {
	// expected hash of the image. may be empty
	Hash string

	// the loader used by the most recent call to LoadImage()
	Last Loader
}

// LoadImage loads the image at path and places it in mem at dest.
func (k *Kernel) LoadImage(path string, dest uint64, mem Memory) (uint64, error) {
	k.Last = NewLoader(path)
	k.Last.Hash = k.Hash
	if err := k.Last.Load(); err != nil {
		return 0, err
	}
	return k.Last.Place(mem, dest)
}
