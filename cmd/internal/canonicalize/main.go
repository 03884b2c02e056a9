package canonicalize

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"

	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/symmetry"
)

type Command struct{}

func (*Command) Name() string     { return "canonicalize" }
func (*Command) Synopsis() string { return "Canonicalize the symmetry of a transcript" }
func (*Command) Usage() string {
	return `canonicalize FILE

Rewrite a game transcript into its canonical orientation.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) == 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}

	t, e := notation.ParseFile(flag.Arg(0))
	if e != nil {
		log.Fatalf("read %s: %v", flag.Arg(0), e)
	}
	t.Moves, e = symmetry.CanonicalMoves(t.Moves)
	if e != nil {
		log.Fatalf("canonicalize: %v", e)
	}
	fmt.Print(t.Render())
	return subcommands.ExitSuccess
}
