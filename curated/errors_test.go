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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	// duplicates further down the chain are also dropped
	g := curated.Errorf("chip8: %v", curated.Errorf("chip8: %v", curated.Errorf("cpu: %v", "stack underflow")))
	test.ExpectEquality(t, g.Error(), "chip8: cpu: stack underflow")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing errors of different types next to each other
	f := curated.Errorf(testErrorB, e)
	test.ExpectSuccess(t, curated.IsAny(f))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
}

func TestPlainErrors(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Has(e, testError))

	// plain errors wrapped by a curated error can be found with the errors
	// package
	f := curated.Errorf(testError, e)
	test.ExpectSuccess(t, errors.Is(f, e))

	// nil errors are never curated
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Has(nil, testError))
}
