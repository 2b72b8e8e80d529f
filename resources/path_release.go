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

//go:build release

package resources

import (
	"os"
	"path/filepath"
)

const baseResourcePath = "gopher8"

// resourcePath for release builds is in the user's configuration directory.
func resourcePath() (string, error) {
	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cnf, baseResourcePath), nil
}
