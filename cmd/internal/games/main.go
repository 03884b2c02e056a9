package games

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/magpie-othello/magpie/logs"
)

type Command struct {
	limit   int
	records bool
}

func (*Command) Name() string     { return "games" }
func (*Command) Synopsis() string { return "List games logged to a database" }
func (*Command) Usage() string {
	return `games [flags] GAMES.db
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.limit, "limit", 20, "number of games to list")
	flags.BoolVar(&c.records, "records", false, "print per-player records instead")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		log.Println("Must supply a game database")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(flag.Arg(0))
	if err != nil {
		log.Printf("open: %v", err)
		return subcommands.ExitFailure
	}
	defer repo.Close()

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer tw.Flush()
	if c.records {
		recs, err := repo.Records()
		if err != nil {
			log.Printf("records: %v", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(tw, "player\twins\tlosses\tties\n")
		for _, r := range recs {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", r.Player, r.Wins, r.Losses, r.Ties)
		}
		return subcommands.ExitSuccess
	}

	games, err := repo.Games(c.limit)
	if err != nil {
		log.Printf("games: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(tw, "id\ttime\tblack\twhite\tresult\tdiscs\tplies\n")
	for _, g := range games {
		result := g.Result
		if g.Winner != "" {
			result = g.Winner + " wins"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d-%d\t%d\n",
			g.ID, g.Timestamp.Format("2006-01-02 15:04"), g.Black, g.White,
			result, g.BlackDiscs, g.WhiteDiscs, g.Plies)
	}
	return subcommands.ExitSuccess
}
