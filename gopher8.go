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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/terminal/termplay"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. for example, the playmode package
	// provides its own handler so that recordings can be finished.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not itself nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
					gui = nil
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				// nothing to service. avoid spinning
				time.Sleep(time.Millisecond)
			}
		}
	}

	if gui != nil {
		gui.Destroy(os.Stderr)
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "PERFORMANCE", "VERSION")
	md.AddSubModeAlias("RUN", "PLAY")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = termMode(md, sync)

	case "PERFORMANCE":
		err = perform(md, sync)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// emulationFlags are the flags shared by the emulation modes.
type emulationFlags struct {
	log   *bool
	ips   *int
	hash  *string
	prefs *string
}

func addEmulationFlags(md *modalflag.Modes) emulationFlags {
	return emulationFlags{
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
		ips:   md.AddInt("ips", 0, "instructions per second (0 uses the hardware.ips preference)"),
		hash:  md.AddString("hash", "", "expected sha1 hash of the program"),
		prefs: md.AddString("prefs", "", "override preferences for this run. eg. \"hardware.ips::1000; sdlplay.scale::10\""),
	}
}

// emulation is the machine created for the PLAY and TERM modes.
type emulation struct {
	env *environment.Environment
	c8  *hardware.Chip8
	ld  *romloader.Loader
}

func (emu emulation) ips() int {
	return emu.env.Prefs.InstructionsPerSecond.Get().(int)
}

func checkProgramArg(md *modalflag.Modes) error {
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		return nil
	}
	return fmt.Errorf("too many arguments for %s mode", md)
}

// the single program argument is loaded and attached to a new machine.
func newEmulation(md *modalflag.Modes, flgs emulationFlags) (emulation, error) {
	var emu emulation

	if err := checkProgramArg(md); err != nil {
		return emu, err
	}

	if *flgs.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *flgs.prefs != "" {
		prefs.PushCommandLineStack(*flgs.prefs)
	}

	var err error
	emu.env, err = environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return emu, err
	}

	if *flgs.ips > 0 {
		err = emu.env.Prefs.InstructionsPerSecond.Set(*flgs.ips)
		if err != nil {
			return emu, err
		}
	}

	ld := romloader.NewLoader(md.GetArg(0))
	ld.Hash = *flgs.hash
	emu.ld = &ld

	emu.c8 = hardware.NewChip8(emu.env)
	err = emu.c8.AttachROM(emu.ld)
	if err != nil {
		return emu, err
	}

	return emu, nil
}

// preferences from the -prefs flag that have not been used are reported.
// must be called after all preferences have been created.
func unusedPrefs() {
	if prefs.SizeCommandLineStack() == 0 {
		return
	}
	if s := prefs.PopCommandLineStack(); s != "" {
		fmt.Printf("! unused preferences: %s\n", s)
	}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addEmulationFlags(md)
	scale := md.AddInt("scale", 0, "window scale (0 uses the sdlplay.scale preference)")
	wav := md.AddString("wav", "", "record tone to wav file")
	beep := md.AddString("beep", "", "wav or mp3 file to use for the tone instead of a square wave")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	emu, err := newEmulation(md, flgs)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout, "")
	}

	var mixers []gui.AudioMixer

	newBeeper := func() (*beeper.Beeper, error) {
		bp := beeper.NewBeeper()
		if *beep != "" {
			if err := bp.LoadSample(*beep); err != nil {
				return nil, err
			}
		}
		return bp, nil
	}

	// add wavwriter mixer if wav argument has been specified. the wavwriter
	// has its own beeper because the position in the waveform is part of the
	// beeper state
	if *wav != "" {
		bp, err := newBeeper()
		if err != nil {
			return err
		}
		aw, err := wavwriter.New(*wav, bp)
		if err != nil {
			return err
		}
		mixers = append(mixers, aw)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		scr, err := sdlplay.NewSdlPlay()
		if err != nil {
			return nil, err
		}
		return scr, nil
	}

	// wait for creator result
	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	unusedPrefs()

	// SDL has been initialised by the gui so the audio device can be opened
	bp, err := newBeeper()
	if err != nil {
		return err
	}
	aud, err := sdlaudio.NewAudio(bp)
	if err != nil {
		return err
	}
	mixers = append(mixers, aud)

	if *scale > 0 {
		err = scr.SetFeature(gui.ReqSetScale, *scale)
		if err != nil {
			return err
		}
	}

	err = scr.SetFeature(gui.ReqSetTitle, emu.ld.ShortName())
	if err != nil {
		return err
	}

	// turn off fallback ctrl-c handling. this so that the playmode can
	// finish the wav file gracefully
	sync.state <- stateRequest{req: reqNoIntSig}

	return playmode.Play(emu.c8, scr, playmode.Options{
		InstructionsPerSecond: emu.ips(),
		Mixers:                mixers,
	})
}

func termMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addEmulationFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// echoing the log would corrupt the display
	*flgs.log = false

	emu, err := newEmulation(md, flgs)
	if err != nil {
		return err
	}
	unusedPrefs()

	sync.creator <- func() (GuiCreator, error) {
		scr, err := termplay.NewTermPlay(os.Stdin, os.Stdout)
		if err != nil {
			return nil, err
		}
		return scr, nil
	}

	var scr *termplay.TermPlay
	select {
	case g := <-sync.creation:
		scr = g.(*termplay.TermPlay)
	case err := <-sync.creationError:
		return err
	}

	err = scr.SetFeature(gui.ReqSetTitle, emu.ld.ShortName())
	if err != nil {
		return err
	}

	sync.state <- stateRequest{req: reqNoIntSig}

	return playmode.Play(emu.c8, scr, playmode.Options{
		InstructionsPerSecond: emu.ips(),
	})
}

func perform(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	instructions := md.AddInt("ips", 0, "instructions per second (0 uses the hardware.ips preference)")
	uncapped := md.AddBool("uncapped", true, "run the emulation as fast as possible")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	mviz := md.AddString("memviz", "", "write a graphviz file of the machine at the end of the run")
	prefsOverride := md.AddString("prefs", "", "override preferences for this run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := checkProgramArg(md); err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	ld := romloader.NewLoader(md.GetArg(0))

	err = performance.Check(md.Output, prf, &ld, performance.Options{
		InstructionsPerSecond: *instructions,
		Uncapped:              *uncapped,
		Duration:              *duration,
		Leadtime:              2 * time.Second,
		Memviz:                *mviz,
	})
	if err != nil {
		return err
	}

	unusedPrefs()

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information (if available")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	if *revision {
		fmt.Printf("%s (%s)\n", ver, rev)
	} else {
		fmt.Println(ver)
	}

	return nil
}
