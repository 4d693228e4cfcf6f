package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/terassyi/arpspoof/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&cmd.SpoofCommand{}, "")
	subcommands.Register(&cmd.ResolveCommand{}, "")
	subcommands.Register(&cmd.VersionCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
