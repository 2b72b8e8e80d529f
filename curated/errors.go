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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". The pattern is used to identify the error
// in the Is() and Has() functions.
func Errorf(pattern string, values ...interface{}) error {
	// formatting is deferred until Error() is called
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the removal
// of duplicate adjacent parts in the message chain. It doesn't affect
// letter-case or white space.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for i := range p {
		if len(n) > 0 && n[len(n)-1] == p[i] {
			continue
		}
		n = append(n, p[i])
	}

	return strings.Join(n, ": ")
}

// Unwrap returns the first error found in the placeholder values. This allows
// errors wrapped inside a curated error to be found with errors.Is() and
// errors.As() from the standard library.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
