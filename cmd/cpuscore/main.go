// Command cpuscore measures how many matrix workloads the host completes per
// second with a fixed number of worker threads in flight.
//
//	cpuscore -t=60 -c=16
package main

import (
	"os"

	"github.com/katalvlaran/cpuscore/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout))
}
