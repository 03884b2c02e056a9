package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/google/subcommands"

	"github.com/magpie-othello/magpie/cmd/internal/canonicalize"
	"github.com/magpie-othello/magpie/cmd/internal/games"
	"github.com/magpie-othello/magpie/cmd/internal/perft"
	"github.com/magpie-othello/magpie/cmd/internal/play"
	"github.com/magpie-othello/magpie/cmd/internal/selfplay"
	"github.com/magpie-othello/magpie/cmd/internal/serve"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&perft.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&canonicalize.Command{}, "")
	subcommands.Register(&games.Command{}, "logs")
	subcommands.Register(&serve.Command{}, "")

	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := subcommands.Execute(ctx)
	stop()
	os.Exit(int(status))
}
