package play

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/magpie-othello/magpie/cli"
	"github.com/magpie-othello/magpie/cmd/internal/opt"
	"github.com/magpie-othello/magpie/logs"
	"github.com/magpie-othello/magpie/notation"
)

type Command struct {
	white string
	black string
	out   string
	db    string

	hints   bool
	unicode bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Othello from the command line" }
func (*Command) Usage() string {
	return `play

Play Othello on the command-line, against a human or AI.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.white, "white", "human", "white player (human, rand, rand:SEED)")
	flags.StringVar(&c.black, "black", "human", "black player (human, rand, rand:SEED)")
	flags.StringVar(&c.out, "out", "", "write the transcript to file")
	flags.StringVar(&c.db, "db", "", "log the game to a sqlite database")
	flags.BoolVar(&c.hints, "hints", true, "mark legal moves on the board")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	black, err := opt.ParsePlayer(c.black, in, os.Stdout)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	white, err := opt.ParsePlayer(c.white, in, os.Stdout)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	st := &cli.CLI{
		Out:    os.Stdout,
		Black:  black,
		White:  white,
		Glyphs: glyphs(c.unicode),
		Hints:  c.hints,
	}
	g, err := st.Play(ctx)
	if err != nil {
		log.Printf("game aborted: %v", err)
		return subcommands.ExitFailure
	}
	if c.out != "" {
		t := &notation.Transcript{
			Tags: []notation.Tag{
				{Name: "Black", Value: c.black},
				{Name: "White", Value: c.white},
				{Name: "Result", Value: g.Status().String()},
			},
			Moves: st.Moves(),
		}
		if err := os.WriteFile(c.out, []byte(t.Render()), 0644); err != nil {
			log.Printf("write %s: %v", c.out, err)
			return subcommands.ExitFailure
		}
	}
	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Printf("open %s: %v", c.db, err)
			return subcommands.ExitFailure
		}
		defer repo.Close()
		if err := repo.InsertGame(logs.FromGame(c.black, c.white, g, st.Moves())); err != nil {
			log.Printf("log game: %v", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}
