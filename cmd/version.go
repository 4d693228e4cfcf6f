package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

type VersionCommand struct{}

func (v *VersionCommand) Name() string {
	return "version"
}

func (v *VersionCommand) Synopsis() string {
	return "print version"
}

func (v *VersionCommand) Usage() string {
	return `arpspoof version
`
}

func (v *VersionCommand) SetFlags(f *flag.FlagSet) {
	// nop
}

func (v *VersionCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Printf("arpspoof %s\n", Version)
	return subcommands.ExitSuccess
}
