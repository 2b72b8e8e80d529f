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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Profile is used to specify the type of profiling to perform by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// ProfileError is the pattern for errors returned by the profiling functions.
const ProfileError = "profiling: %v"

// ParseProfileString converts a comma separated list of profile names to a
// Profile value. Valid names are NONE, CPU, MEM, TRACE and ALL. Case is
// ignored.
func ParseProfileString(profile string) (Profile, error) {
	p := ProfileNone
	for _, s := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile type (%s)", s))
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function with the profilers specified by the
// Profile argument. Profile files are named with the filenameHeader.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	return nil
}
