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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter is used to amend the default output from the flag package.
type helpWriter struct {
	buffer strings.Builder
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

// Help writes the buffered help message to output, supplemented with sub-mode
// information and any additional help.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	helpLines := strings.Split(hw.buffer.String(), "\n")
	hasFlags := len(helpLines) > 2

	if !hasFlags && len(subModes) == 0 && additionalHelp == "" {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", helpLines[0], banner)
	} else {
		fmt.Fprintln(output, helpLines[0])
	}

	if len(helpLines) > 1 {
		io.WriteString(output, strings.Join(helpLines[1:], "\n"))
	}

	if len(subModes) > 0 {
		if hasFlags {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintln(output)
		fmt.Fprintln(output, additionalHelp)
	}
}
