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
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
)

// PerformanceError is the pattern for errors returned by Check().
const PerformanceError = "performance: %v"

// Options for the Check() function.
type Options struct {
	// rate of the instruction clock. a value of zero or less means the rate
	// in the environment preferences
	InstructionsPerSecond int

	// run as fast as possible rather than at the rate of the timer clock
	Uncapped bool

	// how long to measure for. parsed with time.ParseDuration()
	Duration string

	// the time to run for before measurement begins
	Leadtime time.Duration

	// filename for a memviz graph of the machine at the end of the run. no
	// graph is made if the filename is empty
	Memviz string
}

// Result of a call to Check().
type Result struct {
	Frames       int
	Instructions uint64
	Seconds      float64
	Digest       string

	// non-nil if the machine halted before the duration expired
	Halted error
}

func (r Result) String() string {
	fps, accuracy := CalcFPS(r.Frames, r.Seconds)
	ips := CalcIPS(r.Instructions, r.Seconds)
	s := fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, r.Frames, r.Seconds, accuracy)
	s += fmt.Sprintf("%.0f instructions per second (%d instructions)\n", ips, r.Instructions)
	s += fmt.Sprintf("display digest: %s\n", r.Digest)
	if r.Halted != nil {
		s += fmt.Sprintf("halted: %v\n", r.Halted)
	}
	return s
}

// Check the performance of the emulator using the supplied program. The
// result is written to output.
func Check(output io.Writer, profile Profile, ld *romloader.Loader, opts Options) error {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	c8 := hardware.NewChip8(env)
	err = c8.AttachROM(ld)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if opts.InstructionsPerSecond <= 0 {
		opts.InstructionsPerSecond = env.Prefs.InstructionsPerSecond.Get().(int)
	}

	var res Result
	err = RunProfiler(profile, "performance", func() error {
		var err error
		res, err = run(c8, opts)
		return err
	})
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	_, err = io.WriteString(output, res.String())
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if res.Halted != nil {
		_, err = io.WriteString(output, fmt.Sprintf("memory:\n%s", c8.Mem.Dump()))
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	}

	if opts.Memviz != "" {
		err = writeMemviz(opts.Memviz, c8)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	}

	return nil
}

func writeMemviz(filename string, c8 *hardware.Chip8) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	memviz.Map(f, c8)
	return nil
}

// run the machine for the duration in the options. a halted machine ends the
// run early but is not an error.
func run(c8 *hardware.Chip8, opts Options) (Result, error) {
	var res Result

	dur, err := time.ParseDuration(opts.Duration)
	if err != nil {
		return res, err
	}
	if dur <= 0 {
		return res, fmt.Errorf("duration must be positive")
	}

	lmtr, err := limiter.NewFPSLimiter(clocks.TimerFrequency)
	if err != nil {
		return res, err
	}
	lmtr.Active = !opts.Uncapped

	dig := digest.NewScreen()

	// timerChan receives false when the leadtime has elapsed and true when
	// the measurement period has finished
	timerChan := make(chan bool, 2)
	time.AfterFunc(opts.Leadtime, func() {
		timerChan <- false
		time.AfterFunc(dur, func() {
			timerChan <- true
		})
	})

	var startTime time.Time
	var startFrame int
	var startInstructions uint64
	measuring := false

	carry := 0
	frames := 0

	for {
		select {
		case done := <-timerChan:
			if done {
				res.Frames = frames - startFrame
				res.Instructions = c8.InstructionCount() - startInstructions
				res.Seconds = time.Since(startTime).Seconds()
				res.Digest = dig.Hash()
				return res, nil
			}
			measuring = true
			startTime = time.Now()
			startFrame = frames
			startInstructions = c8.InstructionCount()
		default:
		}

		carry += opts.InstructionsPerSecond
		err = c8.Run(carry / clocks.TimerFrequency)
		carry %= clocks.TimerFrequency
		if err != nil {
			res.Halted = err
			if measuring {
				res.Frames = frames - startFrame
				res.Instructions = c8.InstructionCount() - startInstructions
				res.Seconds = time.Since(startTime).Seconds()
			}
			res.Digest = dig.Hash()
			return res, nil
		}
		c8.TickTimers()

		err = dig.NewFrame(c8.Display())
		if err != nil {
			return res, err
		}

		frames++
		lmtr.Wait()
	}
}
