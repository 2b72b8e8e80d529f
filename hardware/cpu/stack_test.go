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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/test"
)

func TestStack(t *testing.T) {
	var st cpu.Stack

	_, ok := st.Peek()
	test.ExpectFailure(t, ok)

	for i := 0; i < cpu.StackDepth; i++ {
		test.ExpectSuccess(t, st.Push(uint16(0x200+i*2)))
	}

	err := st.Push(0x400)
	test.ExpectSuccess(t, curated.Is(err, cpu.StackOverflow))
	test.ExpectEquality(t, st.Depth(), cpu.StackDepth)

	v, ok := st.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0x21e))

	// entries are popped in reverse order
	for i := cpu.StackDepth - 1; i >= 0; i-- {
		v, err := st.Pop()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint16(0x200+i*2))
	}

	_, err = st.Pop()
	test.ExpectSuccess(t, curated.Is(err, cpu.StackUnderflow))
	test.ExpectEquality(t, st.Depth(), 0)

	test.ExpectSuccess(t, st.Push(0x300))
	st.Reset()
	test.ExpectEquality(t, st.Depth(), 0)
}

func TestRegistersString(t *testing.T) {
	var r cpu.Registers
	r[0] = 0xab
	r[cpu.VF] = 0x01
	test.ExpectEquality(t, r.String(), "V0=ab V1=00 V2=00 V3=00 V4=00 V5=00 V6=00 V7=00 V8=00 V9=00 VA=00 VB=00 VC=00 VD=00 VE=00 VF=01")
}
