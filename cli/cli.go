package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/net/context"

	"github.com/magpie-othello/magpie/ai"
	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/othello"
)

type Glyphs struct {
	Black, White, Empty, Hint string
}

type CLI struct {
	moves []notation.Move
	g     *othello.Game

	Glyphs *Glyphs
	Out    io.Writer
	Black  ai.Player
	White  ai.Player

	// Hints marks the legal moves of the side to play.
	Hints bool
}

var DefaultGlyphs = Glyphs{
	Black: "X",
	White: "O",
	Empty: ".",
	Hint:  "*",
}

var UnicodeGlyphs = Glyphs{
	Black: "●",
	White: "○",
	Empty: "·",
	Hint:  "+",
}

// Play runs a game from the opening until both sides are out of
// moves. A side with no legal move passes without being asked.
func (c *CLI) Play(ctx context.Context) (*othello.Game, error) {
	c.moves = nil
	c.g = othello.NewGame()
	for {
		c.render()
		if st := c.g.Status(); st.Over() {
			fmt.Fprintf(c.Out, "Game Over! ")
			if st.Result == othello.Draw {
				fmt.Fprintf(c.Out, "Draw.")
			} else {
				fmt.Fprintf(c.Out, "%s wins.", st.Winner)
			}
			fmt.Fprintf(c.Out, "\ndiscs: black=%d white=%d\n",
				c.g.BitsFor(othello.Black).CountSet(),
				c.g.BitsFor(othello.White).CountSet())
			return c.g, nil
		}
		side := c.g.CurrentTurn()
		if c.g.Moves().IsEmpty() {
			fmt.Fprintf(c.Out, "%s has no move and passes\n", side)
			c.g.PassTurn()
			c.moves = append(c.moves, notation.Move{Pass: true})
			continue
		}
		player := c.Black
		if side == othello.White {
			player = c.White
		}
		m, err := player.GetMove(ctx, c.g)
		if err != nil {
			return c.g, fmt.Errorf("%s: %w", side, err)
		}
		if m.Pass {
			fmt.Fprintln(c.Out, "illegal move: pass with legal moves available")
			continue
		}
		if err := c.g.Play(m.Pos); err != nil {
			fmt.Fprintln(c.Out, "illegal move:", m.Pos)
			continue
		}
		fmt.Fprintf(c.Out, "%d. %s %s\n", len(c.moves)+1, side, m.Pos)
		c.moves = append(c.moves, notation.Move{Pos: m.Pos})
	}
}

// Moves returns the transcript of the last game, passes included.
func (c *CLI) Moves() []notation.Move {
	return c.moves
}

func (c *CLI) render() {
	var hints bitboard.Bitboard
	if c.Hints {
		hints = c.g.Moves()
	}
	RenderBoard(c.Glyphs, c.Out, c.g, hints)
}

// RenderBoard draws g with rank 8 at the top. Squares in hints are
// drawn with the hint glyph.
func RenderBoard(g *Glyphs, out io.Writer, game *othello.Game, hints bitboard.Bitboard) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", game.CurrentTurn())
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for y := 7; y >= 0; y-- {
		fmt.Fprintf(w, "%c\t", '1'+y)
		for x := 0; x < 8; x++ {
			p, _ := bitboard.FromRankFile(uint8(y), uint8(x))
			glyph := g.Empty
			if s, ok := game.StoneAt(p); ok {
				glyph = g.Black
				if s == othello.White {
					glyph = g.White
				}
			} else if hints.Intersects(p) {
				glyph = g.Hint
			}
			fmt.Fprintf(w, "%s\t", glyph)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for x := 0; x < 8; x++ {
		fmt.Fprintf(w, "%c\t", 'a'+x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	fmt.Fprintf(out, "discs: %s:%d %s:%d\n",
		g.Black, game.BitsFor(othello.Black).CountSet(),
		g.White, game.BitsFor(othello.White).CountSet())
}
