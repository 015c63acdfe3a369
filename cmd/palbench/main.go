// cmd/palbench/main.go
package main

import (
	cmd "github.com/mwiater/palbench/internal/cli"
)

// Build-time values, set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the palbench CLI by delegating to the cobra root command
// defined in the cli package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
