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

package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData

	// nil for requests made with SetFeatureNoError()
	err chan error

	// non-nil for requests made with GetFeature()
	get chan gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	req := featureRequest{request: request, args: args, err: make(chan error, 1)}
	scr.featureReq <- req
	return <-req.err
}

// SetFeatureNoError implements the gui.GUI interface.
func (scr *SdlPlay) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	scr.featureReq <- featureRequest{request: request, args: args}
}

// GetFeature implements the gui.GUI interface.
func (scr *SdlPlay) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	req := featureRequest{
		request: request,
		err:     make(chan error, 1),
		get:     make(chan gui.FeatureReqData, 1),
	}
	scr.featureReq <- req
	if err := <-req.err; err != nil {
		return nil, err
	}
	return <-req.get, nil
}

// feature requests have been handed over to the featureReq channel. we
// service any requests on that channel here.
func (scr *SdlPlay) serviceFeatureRequest(req featureRequest) {
	var err error

	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf(SdlError, fmt.Sprintf("bad arguments for %s: %v", req.request, r))
		}
		if req.err != nil {
			req.err <- err
		}
	}()

	if req.get != nil {
		switch req.request {
		case gui.ReqState:
			req.get <- scr.state
		case gui.ReqSetScale:
			req.get <- int(scr.scale)
		case gui.ReqSetTitle:
			req.get <- scr.title
		case gui.ReqSetVisibility:
			req.get <- scr.window.GetFlags()&sdl.WINDOW_HIDDEN != sdl.WINDOW_HIDDEN
		default:
			err = curated.Errorf(gui.UnsupportedGuiFeature, req.request)
		}
		return
	}

	switch req.request {
	case gui.ReqSetEventChan:
		scr.events = req.args[0].(chan gui.Event)

	case gui.ReqState:
		scr.state = req.args[0].(gui.EmulationState)
		scr.setTitle()

	case gui.ReqSetVisibility:
		scr.showWindow(req.args[0].(bool))

	case gui.ReqSetScale:
		err = scr.setScale(req.args[0].(int))
		if err == nil {
			err = scr.Prefs.Scale.Set(int(scr.scale))
		}

	case gui.ReqSetTitle:
		scr.title = req.args[0].(string)
		scr.setTitle()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, req.request)
	}
}
