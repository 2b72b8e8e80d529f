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

package gui

// FeatureReq is used to request the setting of a gui attribute
// eg. the window scale.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// EmulationState indicates to the GUI that the emulation is in a particular
// state.
//
// The GUI state will start in StateInitialising. The playmode should set
// StateRunning as soon as the emulation begins.
type EmulationState int

// List of valid emulation states.
const (
	StateInitialising EmulationState = iota
	StatePaused
	StateRunning
	StateHalted
	StateEnding
)

func (s EmulationState) String() string {
	switch s {
	case StateInitialising:
		return "initialising"
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateEnding:
		return "ending"
	}
	return "unknown"
}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the application will
// probably crash.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// the channel on which the GUI should send events. until this has been
	// set the GUI will not forward any events.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan Event

	// notify GUI of emulation state. the GUI should use this to alter how
	// the window is decorated.
	ReqState FeatureReq = "ReqState" // EmulationState

	// whether the gui is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the size of one CHIP-8 pixel in host pixels.
	ReqSetScale FeatureReq = "ReqSetScale" // int

	// the name of the program being run. shown in the window title.
	ReqSetTitle FeatureReq = "ReqSetTitle" // string
)
