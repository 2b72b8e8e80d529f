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

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print output (help messages etc)
	Output io.Writer

	// whether Parse() has been called since the most recent NewMode()
	parsed bool

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// the list of sub-modes specified since the most recent NewMode(). the
	// first entry is the default sub-mode
	subModes []string

	// alternative names for sub-modes. maps alias to sub-mode
	aliases map[string]string

	// the series of sub-modes found during calls to Parse()
	path []string

	// additional text to print with the help message
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a string all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.aliases = make(map[string]string)
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp allows you to add extensive help text to be displayed in
// addition to the regular help on available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since either a call
// to NewArgs() or NewMode().
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were specified
	// then the Mode() function should be checked.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Parse the top level layer of arguments. Help messages are printed
// automatically. A ParseHelp result should be treated in the same way as an
// error but without the need to display anything further.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// flags that are not recognised at this level may belong to the
		// default sub-mode. in which case the arguments are left for the next
		// call to Parse()
		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0])
			return ParseContinue, nil
		}

		return ParseError, err
	}

	// skip past the flags that have been consumed
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]

	arg := strings.ToUpper(md.flags.Arg(0))
	if a, ok := md.aliases[arg]; ok {
		arg = a
	}
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.argsIdx++
			break // for loop
		}
	}

	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddSubModes to list of submodes for next parse. The first sub-mode in the
// list is considered to be the default sub-mode.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddSubModeAlias allows a sub-mode to be selected by another name.
func (md *Modes) AddSubModeAlias(alias string, submode string) {
	md.aliases[strings.ToUpper(alias)] = strings.ToUpper(submode)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
