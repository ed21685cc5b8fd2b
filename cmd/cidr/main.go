// Command cidr is an IPv4 subnet calculator. It resolves terse address
// specifiers into networks and prints their derived quantities.
package main

import (
	"github.com/nwaddell/cidr/cmd/cli"
)

// Build information - set by ldflags during build.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

func main() {
	cli.SetVersion(version, commit, buildTime)
	cli.Execute()
}
