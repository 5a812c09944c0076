// Package cli is the process shell: it parses arguments, prints help or
// diagnostics, runs the benchmark and prints the score.
package cli

import (
	"io"
	"strconv"

	"github.com/katalvlaran/cpuscore/bench"
	"github.com/katalvlaran/cpuscore/config"
	"github.com/katalvlaran/cpuscore/logger"
)

// ProgramName is used in the usage text.
const ProgramName = "cpuscore"

// Exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Main runs the program with args (without the program name), writing every
// line to w, and returns the process exit status. extra options are applied
// after those derived from the command line.
func Main(args []string, w io.Writer, extra ...bench.Option) int {
	return MainWith(config.Default(), args, w, extra...)
}

// MainWith is Main with explicit defaults for fields the arguments omit.
func MainWith(defaults config.Settings, args []string, w io.Writer, extra ...bench.Option) int {
	log := logger.New(w)
	parsed := config.ParseWith(defaults, args)

	switch parsed.Action {
	case config.ActionNoArgs:
		log.Infof("no arguments passed, see --help\n")
		return ExitOK
	case config.ActionHelp:
		log.Infof("%s", config.Usage(ProgramName))
		return ExitOK
	}

	for _, warn := range parsed.Warnings {
		log.Infof("%v\n", warn)
	}

	opts := append(parsed.Settings.Options(), bench.WithLogger(log))
	res, err := bench.Run(append(opts, extra...)...)
	if err != nil {
		log.Errorf("%v\n", err)
		return ExitFailure
	}
	log.Infof("%s\n", FormatScore(res.Score))

	return ExitOK
}

// FormatScore renders a score as a plain decimal.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
