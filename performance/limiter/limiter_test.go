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

package limiter

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestInvalidLimit(t *testing.T) {
	_, err := NewFPSLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, InvalidLimit))

	lim, err := NewFPSLimiter(60)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, lim.SetLimit(-1))
}

func TestWait(t *testing.T) {
	lim, c := newTestLimiter(50)

	// no work between waits. every wait sleeps for a whole frame
	for i := 0; i < 50; i++ {
		lim.Wait()
	}
	test.ExpectEquality(t, c.slept, time.Second)
	test.ExpectEquality(t, lim.Measured(), float32(50))

	// work that takes half a frame means half the sleep
	c.slept = 0
	for i := 0; i < 10; i++ {
		c.advance(10 * time.Millisecond)
		lim.Wait()
	}
	test.ExpectEquality(t, c.slept, 100*time.Millisecond)
}

func TestCatchUp(t *testing.T) {
	lim, c := newTestLimiter(50)

	// a single slow frame is made up for by the frames that follow
	c.advance(30 * time.Millisecond)
	lim.Wait()
	test.ExpectEquality(t, c.slept, time.Duration(0))
	lim.Wait()
	test.ExpectEquality(t, c.slept, 10*time.Millisecond)

	// falling too far behind resynchronises without catching up
	c.slept = 0
	c.advance(time.Second)
	lim.Wait()
	test.ExpectEquality(t, c.slept, time.Duration(0))
	lim.Wait()
	test.ExpectEquality(t, c.slept, 20*time.Millisecond)
}

func TestInactive(t *testing.T) {
	lim, c := newTestLimiter(50)
	lim.Active = false
	for i := 0; i < 10; i++ {
		lim.Wait()
	}
	test.ExpectEquality(t, c.slept, time.Duration(0))
}

func TestHasWaited(t *testing.T) {
	lim, c := newTestLimiter(50)
	test.ExpectFailure(t, lim.HasWaited())
	c.advance(20 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
	test.ExpectFailure(t, lim.HasWaited())
}
