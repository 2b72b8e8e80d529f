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

// Package playmode runs the emulation without any debugging features. The
// host timing loop lives here: one iteration per 60 Hz tick of the timer
// clock, with the instruction clock running as many steps in each iteration
// as the instruction rate requires.
//
// User input is received from the GUI as gui.Event values and translated by
// the userinput package.
package playmode
