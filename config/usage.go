package config

import (
	"fmt"

	"github.com/katalvlaran/cpuscore/bench"
)

// Usage returns the help text for the program called name.
func Usage(name string) string {
	d := Default()
	return fmt.Sprintf(`CPU throughput benchmark.
Usage:
  %[1]s [-t=<seconds>] [-c=<threads>] [-p=<policy>]
  %[1]s -h | --help

Options:
  -t=(float)   measurement window in seconds (default %[2]s)
  -c=(int)     number of worker threads kept in flight (default %[3]d)
  -p=(b|s)     dispatch policy: b = barrier batches, s = steady state (default %[4]s)
  -h, --help   print this message
`, name, bench.FormatSeconds(d.Seconds), d.Threads, d.Policy)
}
