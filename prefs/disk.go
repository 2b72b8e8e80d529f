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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the name of the preferences file in the resources
// directory.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while the emulator is running ***"

// the separator between the key and the value in the preferences file.
const keySep = " :: "

// Sentinel error patterns.
const (
	InvalidKey = "prefs: invalid key (%s)"
	DiskError  = "prefs: %v"
)

// Disk represents preference values as stored on disk. More than one Disk
// instance can share a file. Entries in the file that are not known to an
// instance are preserved when that instance saves.
type Disk struct {
	path    string
	entries map[string]pref

	// values taken from the command line preference stack when the pref was
	// added. these take priority over values loaded from disk and are never
	// saved
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from disk. The key
// must not contain the separator sequence or white space.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

// String returns the current value of every entry, one per line, sorted by
// key.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the preferences file into a map of raw values. a missing file results
// in an empty map and no error.
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate warning
	if !scanner.Scan() {
		return values, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, fmt.Sprintf("not a preferences file (%s)", dsk.path))
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue // for loop
		}
		values[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return values, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if _, ok := dsk.overrides[k]; ok {
			continue // for loop
		}
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, values[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and
// saveOnFail is true then the current values are saved, creating the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	if _, err := os.Stat(dsk.path); os.IsNotExist(err) {
		if saveOnFail {
			return dsk.Save()
		}
		return nil
	}

	values, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	// command line values take priority
	for k, v := range dsk.overrides {
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	return nil
}

// Reset all entries to their zero value. The values are not saved.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}
