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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// InvalidLimit is the pattern for the error returned when the rate is not a
// positive number.
const InvalidLimit = "limiter: invalid limit (%v)"

// if the limiter falls behind by more than this number of frames it gives up
// trying to catch up and resynchronises with the current time
const maxLag = 4

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	// the time of the next trigger
	next time.Time

	// if Active is false then Wait() returns immediately
	Active bool

	// used to measure the actual rate
	count     int
	measured  float32
	measureAt time.Time

	// allows tests to run without sleeping
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		Active: true,
		now:    time.Now,
		sleep:  time.Sleep,
	}

	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}

	return lim, nil
}

func (lim *FpsLimiter) String() string {
	return fmt.Sprintf("%d fps (measured %.2f)", lim.framesPerSecond, lim.measured)
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidLimit, framesPerSecond)
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	lim.next = lim.now().Add(lim.secondsPerFrame)
	lim.measureAt = lim.now()
	lim.count = 0
	return nil
}

// Wait will block until the next trigger. Triggers that have been missed
// are taken immediately unless the limiter has fallen too far behind.
func (lim *FpsLimiter) Wait() {
	defer lim.measure()

	if !lim.Active {
		return
	}

	now := lim.now()
	if d := lim.next.Sub(now); d > 0 {
		lim.sleep(d)
	} else if -d > lim.secondsPerFrame*maxLag {
		lim.next = now
	}
	lim.next = lim.next.Add(lim.secondsPerFrame)
}

// HasWaited will return true if the time of the next trigger has passed and
// false if it is still yet to happen. The trigger is consumed if the result
// is true.
func (lim *FpsLimiter) HasWaited() bool {
	if lim.now().Before(lim.next) {
		return false
	}
	lim.measure()
	lim.next = lim.next.Add(lim.secondsPerFrame)
	return true
}

// Measured returns the actual number of triggers per second, measured over
// roughly the last second.
func (lim *FpsLimiter) Measured() float32 {
	return lim.measured
}

func (lim *FpsLimiter) measure() {
	lim.count++
	if d := lim.now().Sub(lim.measureAt); d >= time.Second {
		lim.measured = float32(float64(lim.count) / d.Seconds())
		lim.count = 0
		lim.measureAt = lim.now()
	}
}
