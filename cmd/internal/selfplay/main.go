package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/magpie-othello/magpie/cmd/internal/opt"
	"github.com/magpie-othello/magpie/logs"
	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/selfplay"
)

type Command struct {
	seed    int64
	games   int
	swap    bool
	threads int

	out     string
	summary string
	db      string
	verbose bool

	profile opt.Profile
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.out, "out", "", "directory to write transcripts to")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "db", "", "log games to a sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.profile.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	defer c.profile.Start()()

	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	cfg := &selfplay.Config{
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Swap:    c.swap,
		Verbose: c.verbose,
		P1:      selfplay.RandomFactory{},
		P2:      selfplay.RandomFactory{},
	}
	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Printf("open %s: %v", c.db, err)
			return subcommands.ExitFailure
		}
		defer repo.Close()
		cfg.Repo = repo
	}

	st, err := selfplay.Simulate(ctx, cfg)
	if err != nil {
		log.Printf("simulate: %v", err)
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if c.summary == "" {
			c.summary = path.Join(c.out, "summary.json")
		}
		for i := range st.Games {
			if err := writeGame(c.out, &st.Games[i]); err != nil {
				log.Printf("write game: %v", err)
			}
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Println("writing summary: ", err.Error())
		}
	}

	log.Printf("done games=%d seed=%d ties=%d white=%d black=%d",
		st.Count(), c.seed, st.Ties, st.White, st.Black)
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tblack\twhite\tsum\tdiscs\n")
	for i, p := range st.Players {
		fmt.Fprintf(tw, "p%d\t%d\t%d\t%d\t%d\n", i+1, p.BlackWins, p.WhiteWins, p.Wins, p.Discs)
	}
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\t\n",
		st.Players[0].BlackWins+st.Players[1].BlackWins,
		st.Players[0].WhiteWins+st.Players[1].WhiteWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()
	return subcommands.ExitSuccess
}

func writeGame(d string, r *selfplay.Result) error {
	if err := os.MkdirAll(d, 0755); err != nil {
		return err
	}
	t := &notation.Transcript{
		Tags: []notation.Tag{
			{Name: "Player1", Value: r.P1.String()},
			{Name: "Result", Value: r.Status.String()},
		},
		Moves: r.Moves,
	}
	return os.WriteFile(path.Join(d, fmt.Sprintf("%d.txt", r.Index())), []byte(t.Render()), 0644)
}

type Summary struct {
	Cmdline []string
	Seed    int64
	Stats   *selfplay.Stats
}

func (c *Command) writeSummary(path string, stats *selfplay.Stats) error {
	bs, err := json.MarshalIndent(&Summary{
		Cmdline: os.Args,
		Seed:    c.seed,
		Stats:   stats,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}
