package perft

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/cmd/internal/opt"
	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/othello"
	"github.com/magpie-othello/magpie/perft"
)

type Command struct {
	depth   int
	threads int
	divide  bool
	board   string
	verify  bool

	profile opt.Profile
}

func (*Command) Name() string     { return "perft" }
func (*Command) Synopsis() string { return "Count game-tree leaves to a fixed depth" }
func (*Command) Usage() string {
	return `perft [flags]

Count the lines of play to -depth plies from the opening, or from
-board. With -verify, compare against the published totals.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.depth, "depth", 8, "search depth in plies")
	flags.IntVar(&c.threads, "threads", 0, "worker threads (0 for one per CPU)")
	flags.BoolVar(&c.divide, "divide", false, "print the count below each root move")
	flags.StringVar(&c.board, "board", "", "start from this board (64 squares and side to move)")
	flags.BoolVar(&c.verify, "verify", false, "check every depth up to -depth against known totals")
	c.profile.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	defer c.profile.Start()()

	b, next := othello.Standard(), othello.Black
	if c.board != "" {
		var err error
		b, next, err = notation.ParseBoard(c.board)
		if err != nil {
			log.Printf("-board: %v", err)
			return subcommands.ExitUsageError
		}
	}

	if c.verify {
		if c.board != "" {
			log.Println("-verify needs the standard opening")
			return subcommands.ExitUsageError
		}
		for d := 1; d <= c.depth; d++ {
			want, ok := perft.Known(d)
			if !ok {
				log.Printf("no known total for depth=%d", d)
				break
			}
			n, err := c.run(ctx, b, next, d)
			if err != nil {
				log.Printf("perft: %v", err)
				return subcommands.ExitFailure
			}
			if n != want {
				log.Printf("mismatch depth=%d got=%d want=%d", d, n, want)
				return subcommands.ExitFailure
			}
		}
		return subcommands.ExitSuccess
	}

	if _, err := c.run(ctx, b, next, c.depth); err != nil {
		log.Printf("perft: %v", err)
		return subcommands.ExitFailure
	}
	if c.divide {
		div := perft.Divide(b, next, c.depth)
		var keys []bitboard.Position
		for p := range div {
			keys = append(keys, p)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].Index() < keys[j].Index() })
		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, p := range keys {
			fmt.Fprintf(tw, "%s\t%d\n", p, div[p])
		}
		tw.Flush()
	}
	return subcommands.ExitSuccess
}

func (c *Command) run(ctx context.Context, b othello.Board, next othello.Stone, depth int) (uint64, error) {
	start := time.Now()
	n, err := perft.Parallel(ctx, b, next, depth, c.threads)
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(start)
	log.Printf("perft depth=%d nodes=%d time=%s nps=%.0f",
		depth, n, elapsed, float64(n)/elapsed.Seconds())
	return n, nil
}
