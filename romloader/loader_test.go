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

package romloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

var program = []byte{0x00, 0xe0, 0xa2, 0x2a, 0x12, 0x04}

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLoadFile(t *testing.T) {
	fn := writeROM(t, "test.ch8", program)

	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.HasLoaded())
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(program)))
	test.ExpectEquality(t, ld.ShortName(), "test")

	// the file URL scheme is also accepted
	ld = romloader.NewLoader("file://" + fn)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), len(program))
}

func TestUnreadable(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.RomUnreadable))
	test.ExpectFailure(t, ld.HasLoaded())

	ld = romloader.NewLoader("ftp://example.com/test.ch8")
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.RomUnreadable))
}

func TestHash(t *testing.T) {
	fn := writeROM(t, "test.ch8", program)

	ld := romloader.NewLoader(fn)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(program))
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.HashMismatch))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestSize(t *testing.T) {
	fn := writeROM(t, "max.ch8", make([]byte, memory.MaxROMSize))
	ld := romloader.NewLoader(fn)
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), memory.MaxROMSize)

	fn = writeROM(t, "large.ch8", make([]byte, memory.MaxROMSize+1))
	ld = romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, memory.RomTooLarge))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/roms/test.ch8" {
			http.NotFound(w, r)
			return
		}
		w.Write(program)
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/roms/test.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.ShortName(), "test")

	ld = romloader.NewLoader(srv.URL + "/roms/missing.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.RomUnreadable))
}
