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

package random

import (
	"math/rand"
	"time"
)

// the base seed for random numbers when no other seed has been specified
var baseSeed int64

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a random number generator for a single emulation.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// a non-zero seed is used in preference to the base seed
	Seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
// A seed of zero means the time based seed is used.
func NewRandom(seed int64) *Random {
	return &Random{
		Seed: seed,
	}
}

// Reset the sequence of random numbers. The ZeroSeed and Seed fields are
// consulted when choosing the seed.
func (rnd *Random) Reset() {
	seed := baseSeed
	if rnd.ZeroSeed {
		seed = 0
	} else if rnd.Seed != 0 {
		seed = rnd.Seed
	}
	rnd.rnd = rand.New(rand.NewSource(seed))
}

// Byte returns the next random value in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	if rnd.rnd == nil {
		rnd.Reset()
	}
	return uint8(rnd.rnd.Intn(256))
}

// Intn returns the next random value in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	if rnd.rnd == nil {
		rnd.Reset()
	}
	return rnd.rnd.Intn(n)
}
