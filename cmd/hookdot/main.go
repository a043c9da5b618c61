// Package main provides the hookdot CLI for validating and scaffolding
// HOOK modeling manifests.
package main

import (
	"os"

	"github.com/hookstack-labs/hookdot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
