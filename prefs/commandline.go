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
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack holds groups of preference values specified with the
// -prefs flag. the top group is consulted when a pref is added to a Disk.
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]Value
}

// SizeCommandLineStack returns the number of groups on the command line
// stack.
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
// The string is a list of key/value pairs separated by semi-colons. For
// example:
//
//	hardware.ips::1000; sdlplay.scale::10
//
// Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	group := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			continue // for loop
		}
		group[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	commandLine.stack = append(commandLine.stack, group)
}

// PopCommandLineStack removes the top group from the stack. It returns the
// values in the group that were never used, in the same format accepted by
// PushCommandLineStack() and sorted by key.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, fmt.Sprintf("%s::%v", k, top[k]))
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for key in the top group. The value
// is removed from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, nil
}
