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

import "time"

// fake clock for the tests. sleeping advances the clock.
type clock struct {
	t     time.Time
	slept time.Duration
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) sleep(d time.Duration) {
	c.slept += d
	c.t = c.t.Add(d)
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestLimiter(fps int) (*FpsLimiter, *clock) {
	c := &clock{t: time.Unix(1000, 0)}
	lim := &FpsLimiter{Active: true, now: c.now, sleep: c.sleep}
	_ = lim.SetLimit(fps)
	return lim, c
}
