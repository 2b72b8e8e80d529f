// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinel error patterns.
const (
	RomUnreadable = "romloader: rom unreadable (%v)"
	HashMismatch  = "romloader: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions commonly used for CHIP-8
// program images. Files with other extensions are loaded just the same.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader is used to specify the program image to use when attaching to the
// CHIP-8.
type Loader struct {
	// filename or URL of the program image
	Filename string

	// expected hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do nothing
	Data []byte

	loaded bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	base := filepath.Base(ld.Filename)
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" && u.Path != "" {
		base = path.Base(u.Path)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.loaded
}

// Load the program data. Filenames with a URL scheme will use that method to
// load the data. Currently supported schemes are HTTP(S) and local files.
//
// Data that is larger than the memory available for programs results in a
// curated error with the memory.RomTooLarge pattern.
func (ld *Loader) Load() error {
	if ld.loaded {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(RomUnreadable, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(RomUnreadable, resp.Status)
		}

		data, err = readLimited(resp.Body)
		if err != nil {
			return err
		}

	case "file", "":
		f, err := os.Open(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf(RomUnreadable, err)
		}
		defer f.Close()

		data, err = readLimited(f)
		if err != nil {
			return err
		}

	default:
		return curated.Errorf(RomUnreadable, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashMismatch, hash)
	}

	ld.Hash = hash
	ld.Data = data
	ld.loaded = true

	return nil
}

// read no more than one byte past the maximum program size. that's enough to
// know that the program is too large
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, memory.MaxROMSize+1))
	if err != nil {
		return nil, curated.Errorf(RomUnreadable, err)
	}
	if len(data) > memory.MaxROMSize {
		return nil, curated.Errorf(memory.RomTooLarge, len(data), memory.MaxROMSize)
	}
	return data, nil
}
