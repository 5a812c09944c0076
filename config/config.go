// Package config turns the command line into benchmark settings.
//
// Arguments are structured tokens of the form -x=<value>; the equals sign is
// required. A malformed value keeps the default and records an ArgError, an
// unknown or truncated token records an UnknownArgError, and parsing never
// aborts. -h or --help anywhere short-circuits to ActionHelp; an empty
// argument list yields ActionNoArgs.
package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cpuscore/bench"
)

// defaultSeconds is the build-time knob for the default window, e.g.
//
//	go build -ldflags "-X github.com/katalvlaran/cpuscore/config.defaultSeconds=5"
//
// An unusable value falls back to bench.DefaultSeconds.
var defaultSeconds = "180"

// Action is what the shell should do after parsing.
type Action int

const (
	ActionRun Action = iota
	ActionHelp
	ActionNoArgs
)

func (a Action) String() string {
	switch a {
	case ActionRun:
		return "run"
	case ActionHelp:
		return "help"
	case ActionNoArgs:
		return "no-args"
	default:
		return "action(" + strconv.Itoa(int(a)) + ")"
	}
}

// Settings are the benchmark parameters.
type Settings struct {
	Threads int          // concurrency level T, > 0
	Seconds float64      // window S, finite and > 0
	Policy  bench.Policy // dispatch discipline
}

// Options converts s into bench options.
func (s Settings) Options() []bench.Option {
	return []bench.Option{
		bench.WithThreads(s.Threads),
		bench.WithSeconds(s.Seconds),
		bench.WithPolicy(s.Policy),
	}
}

// Default returns the settings used for every field the command line does
// not set.
func Default() Settings {
	s := Settings{
		Threads: bench.DefaultThreads,
		Seconds: bench.DefaultSeconds,
		Policy:  bench.DefaultPolicy,
	}
	if v, ok := parseSeconds(defaultSeconds); ok {
		s.Seconds = v
	}

	return s
}

// Parsed is the outcome of Parse.
type Parsed struct {
	Action   Action
	Settings Settings
	Warnings []error // one per rejected token, in argument order
}

// Parse reads args (without the program name) over Default().
func Parse(args []string) Parsed {
	return ParseWith(Default(), args)
}

// ParseWith reads args over the given defaults.
func ParseWith(defaults Settings, args []string) Parsed {
	p := Parsed{Action: ActionRun, Settings: defaults}
	if len(args) == 0 {
		p.Action = ActionNoArgs
		return p
	}

	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			p.Action = ActionHelp
			return p
		}
		flag, value, ok := splitToken(arg)
		if !ok {
			p.Warnings = append(p.Warnings, &UnknownArgError{Arg: arg})
			continue
		}
		switch flag {
		case "t":
			if v, ok := parseSeconds(value); ok {
				p.Settings.Seconds = v
			} else {
				p.Warnings = append(p.Warnings, &ArgError{Flag: flag, Value: value})
			}
		case "c":
			if v, ok := parseThreads(value); ok {
				p.Settings.Threads = v
			} else {
				p.Warnings = append(p.Warnings, &ArgError{Flag: flag, Value: value})
			}
		case "p":
			if v, err := bench.ParsePolicy(value); err == nil {
				p.Settings.Policy = v
			} else {
				p.Warnings = append(p.Warnings, &ArgError{Flag: flag, Value: value, Err: err})
			}
		default:
			p.Warnings = append(p.Warnings, &UnknownArgError{Arg: arg})
		}
	}

	return p
}

// splitToken splits "-x=value" into ("x", "value"). The flag must be a
// single ASCII letter.
func splitToken(arg string) (flag, value string, ok bool) {
	if len(arg) < 3 || arg[0] != '-' || arg[2] != '=' {
		return "", "", false
	}
	c := arg[1]
	if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return "", "", false
	}

	return arg[1:2], arg[3:], true
}

func parseSeconds(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}

	return v, true
}

func parseThreads(s string) (int, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}

	return int(v), true
}
