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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// StackDepth is the maximum number of return addresses on the stack.
const StackDepth = 16

// Sentinel error patterns.
const (
	StackOverflow  = "cpu: stack overflow (%#03x)"
	StackUnderflow = "cpu: stack underflow"
)

// Stack holds the return addresses for subroutine calls. It is a fixed size
// array with a depth counter.
type Stack struct {
	entries [StackDepth]uint16
	depth   int
}

func (st *Stack) String() string {
	return fmt.Sprintf("depth=%d %03x", st.depth, st.entries[:st.depth])
}

// Reset empties the stack.
func (st *Stack) Reset() {
	*st = Stack{}
}

// Depth returns the number of entries on the stack.
func (st *Stack) Depth() int {
	return st.depth
}

// Push a return address. Pushing to a full stack returns a curated error
// with the StackOverflow pattern and the stack is unchanged.
func (st *Stack) Push(address uint16) error {
	if st.depth >= StackDepth {
		return curated.Errorf(StackOverflow, address)
	}
	st.entries[st.depth] = address
	st.depth++
	return nil
}

// Pop the most recently pushed return address. Popping from an empty stack
// returns a curated error with the StackUnderflow pattern.
func (st *Stack) Pop() (uint16, error) {
	if st.depth == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	st.depth--
	return st.entries[st.depth], nil
}

// Peek returns the most recently pushed return address without removing it.
func (st *Stack) Peek() (uint16, bool) {
	if st.depth == 0 {
		return 0, false
	}
	return st.entries[st.depth-1], true
}
