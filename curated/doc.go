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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as fmt.Errorf(),
// but the pattern is remembered so that the error can be identified later.
//
// The Is() function checks whether an error was created with a specific
// pattern:
//
//	e := curated.Errorf(memory.AddressOutOfRange, 0x1000)
//
//	if curated.Is(e, memory.AddressOutOfRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain. Chains are built by using a curated error as a
// placeholder value for another curated error:
//
//	f := curated.Errorf("chip8: %v", e)
//
//	curated.Has(f, memory.AddressOutOfRange) // true
//	curated.Is(f, memory.AddressOutOfRange)  // false
//
// Packages that raise curated errors export their patterns as string
// constants. Those constants act as sentinel values.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of curated errors as 'expected' errors
// and uncurated errors as 'unexpected' errors.
//
// The Error() function normalises the error chain. Parts of the message are
// separated by the sub-string ": " and adjacent duplicate parts are removed.
// This means that code does not need to worry about whether a caller has
// already wrapped an error with the same context. For example, the following
// chain:
//
//	chip8: chip8: cpu: stack underflow
//
// is reported as:
//
//	chip8: cpu: stack underflow
package curated
