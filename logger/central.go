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

// Package logger is the central log repository for gopher8. Log entries are
// kept in memory and can be written to any io.Writer. An echo writer can be
// set so that new entries are also written as they arrive.
//
// Every log request is accompanied by a Permission. In practice, the
// permission is usually the emulation's environment.Environment instance.
package logger

import (
	"io"
)

// the central logger is used by all packages
var central *Logger

// the maximum number of entries held by the central logger
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger. The detail argument can be a
// string, an error, a fmt.Stringer or any other value that can be formatted
// with the %v verb.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) bool {
	return central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints entries to io.Writer as they are added. A nil writer turns
// echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
