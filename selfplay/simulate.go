// Package selfplay plays batches of games between two players and
// tallies the results.
package selfplay

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/net/context"

	"github.com/magpie-othello/magpie/ai"
	"github.com/magpie-othello/magpie/logs"
	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/othello"
)

// Factory builds a fresh player for each game.
type Factory interface {
	NewPlayer(seed int64) ai.Player
	String() string
}

type RandomFactory struct{}

func (RandomFactory) NewPlayer(seed int64) ai.Player {
	return ai.NewRandom(seed)
}

func (RandomFactory) String() string {
	return "random"
}

type Config struct {
	Games   int
	Threads int
	Seed    int64

	// Swap plays every game twice, once with each side as black.
	Swap    bool
	Verbose bool

	P1, P2 Factory

	// Repo, when set, receives every finished game.
	Repo *logs.Repository
}

type PlayerStats struct {
	Wins      int
	WhiteWins int
	BlackWins int
	Discs     int
}

type Stats struct {
	Players      [2]PlayerStats
	White, Black int
	Ties         int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.White + s.Black + s.Ties
}

func (s *Stats) Merge(other *Stats) Stats {
	out := *s
	for i := range out.Players {
		out.Players[i].Wins += other.Players[i].Wins
		out.Players[i].WhiteWins += other.Players[i].WhiteWins
		out.Players[i].BlackWins += other.Players[i].BlackWins
		out.Players[i].Discs += other.Players[i].Discs
	}
	out.White += other.White
	out.Black += other.Black
	out.Ties += other.Ties
	out.Games = append(append([]Result(nil), s.Games...), other.Games...)
	return out
}

type gameSpec struct {
	i       int
	seed    int64
	p1color othello.Stone
}

type Result struct {
	spec   gameSpec
	Game   *othello.Game
	Moves  []notation.Move
	P1     othello.Stone
	Status othello.Status
	err    error
}

// Index is the position of the game in the batch.
func (r *Result) Index() int {
	return r.spec.i
}

// Simulate plays the configured games over Threads workers. Results
// are ordered by game index, so a fixed Seed reproduces a run.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	var st Stats
	rc := make(chan Result)
	go startGames(ctx, c, rc)
	var firstErr error
	for r := range rc {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		if c.Verbose {
			log.Printf("game n=%d plies=%d p1=%s result=%s black=%d white=%d",
				r.spec.i, len(r.Moves), r.P1, r.Status,
				r.Game.BitsFor(othello.Black).CountSet(),
				r.Game.BitsFor(othello.White).CountSet(),
			)
		}
		st.tally(&r)
		st.Games = append(st.Games, r)
	}
	if firstErr != nil {
		return st, firstErr
	}
	sort.Slice(st.Games, func(i, j int) bool {
		return st.Games[i].spec.i < st.Games[j].spec.i
	})

	if c.Repo != nil {
		rows := make([]*logs.Game, 0, len(st.Games))
		for i := range st.Games {
			r := &st.Games[i]
			black, white := c.P1.String(), c.P2.String()
			if r.P1 == othello.White {
				black, white = white, black
			}
			rows = append(rows, logs.FromGame(black, white, r.Game, r.Moves))
		}
		if err := c.Repo.InsertGames(rows); err != nil {
			return st, fmt.Errorf("log games: %w", err)
		}
	}
	return st, nil
}

func (s *Stats) tally(r *Result) {
	p1 := r.P1
	s.Players[0].Discs += r.Game.BitsFor(p1).CountSet()
	s.Players[1].Discs += r.Game.BitsFor(p1.Flip()).CountSet()
	if r.Status.Result != othello.Win {
		s.Ties++
		return
	}
	if r.Status.Winner == othello.White {
		s.White++
	} else {
		s.Black++
	}
	ps := &s.Players[0]
	if r.Status.Winner != p1 {
		ps = &s.Players[1]
	}
	if r.Status.Winner == othello.White {
		ps.WhiteWins++
	} else {
		ps.BlackWins++
	}
	ps.Wins++
}

func startGames(ctx context.Context, c *Config, rc chan<- Result) {
	threads := c.Threads
	if threads <= 0 {
		threads = 1
	}
	gc := make(chan gameSpec)
	var wg sync.WaitGroup
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func() {
			worker(ctx, c, gc, rc)
			wg.Done()
		}()
	}
	r := rand.New(rand.NewSource(c.Seed))
	n := c.Games
	if c.Swap {
		n *= 2
	}
	for g := 0; g < n; g++ {
		p1color := othello.Black
		if c.Swap && g%2 == 1 {
			p1color = othello.White
		}
		gc <- gameSpec{i: g, seed: r.Int63(), p1color: p1color}
	}
	close(gc)
	wg.Wait()
	close(rc)
}

func worker(ctx context.Context, c *Config, games <-chan gameSpec, out chan<- Result) {
	for g := range games {
		if err := ctx.Err(); err != nil {
			out <- Result{spec: g, P1: g.p1color, err: err}
			continue
		}
		r := rand.New(rand.NewSource(g.seed))
		black := c.P1.NewPlayer(r.Int63())
		white := c.P2.NewPlayer(r.Int63())
		if g.p1color == othello.White {
			black, white = white, black
		}
		game, moves, err := playGame(ctx, black, white)
		out <- Result{
			spec:   g,
			Game:   game,
			Moves:  moves,
			P1:     g.p1color,
			Status: game.Status(),
			err:    err,
		}
	}
}

// playGame runs one game to the end. Forced passes are made for the
// players; an illegal move from a player is an error.
func playGame(ctx context.Context, black, white ai.Player) (*othello.Game, []notation.Move, error) {
	g := othello.NewGame()
	var moves []notation.Move
	for !g.Status().Over() {
		if g.Moves().IsEmpty() {
			g.PassTurn()
			moves = append(moves, notation.Move{Pass: true})
			continue
		}
		p := black
		if g.CurrentTurn() == othello.White {
			p = white
		}
		m, err := p.GetMove(ctx, g)
		if err != nil {
			return g, moves, fmt.Errorf("get move: %w", err)
		}
		if m.Pass {
			return g, moves, fmt.Errorf("%s passed with moves available", g.CurrentTurn())
		}
		if err := g.Play(m.Pos); err != nil {
			return g, moves, fmt.Errorf("%s %s: %w", g.CurrentTurn(), m.Pos, err)
		}
		moves = append(moves, notation.Move{Pos: m.Pos})
	}
	return g, moves, nil
}
