package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/context"

	"github.com/magpie-othello/magpie/ai"
	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/othello"
)

// NewCLIPlayer returns a player that reads moves from in, one per
// line, prompting on out.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) ai.Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(ctx context.Context, g *othello.Game) (ai.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return ai.Move{}, err
		}
		fmt.Fprintf(c.out, "%s> ", g.CurrentTurn())
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return ai.Move{}, err
		}
		m, err := notation.ParseMove(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		return ai.Move{Pos: m.Pos, Pass: m.Pass}, nil
	}
}
