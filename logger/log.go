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

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is the log repository. Most packages will use the central logger
// through the package level functions but a new Logger can be created with
// NewLogger() when that is more appropriate (eg. for testing).
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// if echo is not nil then new entries are written to it immediately
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the log if the permission allows it.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	var d string
	switch v := detail.(type) {
	case string:
		d = v
	case error:
		d = v.Error()
	case fmt.Stringer:
		d = v.String()
	default:
		d = fmt.Sprintf("%v", v)
	}

	l.log(tag, d)
}

// Logf adds a formatted entry to the log if the permission allows it.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *Logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Tag == tag && e.Detail == detail {
		e.repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of log to io.Writer. Returns false if there were no entries
// to write.
func (l *Logger) Write(output io.Writer) bool {
	l.crit.Lock()
	defer l.crit.Unlock()

	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints new entries to io.Writer as they are added. A nil writer
// turns echoing off.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}
