// Package logs stores finished games in a sqlite database.
package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/othello"
)

type Repository struct {
	db *sqlx.DB
}

type Game struct {
	ID         int64     `db:"id"`
	Timestamp  time.Time `db:"time"`
	Black      string    `db:"black"`
	White      string    `db:"white"`
	Result     string    `db:"result"`
	Winner     string    `db:"winner"`
	BlackDiscs int       `db:"black_discs"`
	WhiteDiscs int       `db:"white_discs"`
	Plies      int       `db:"plies"`
	Moves      string    `db:"moves"`
}

// PlayerRecord sums a player's results over every logged game.
type PlayerRecord struct {
	Player string `db:"player"`
	Wins   int    `db:"wins"`
	Losses int    `db:"losses"`
	Ties   int    `db:"ties"`
}

// FromGame builds a row for a finished game and its transcript.
func FromGame(black, white string, g *othello.Game, moves []notation.Move) *Game {
	st := g.Status()
	row := &Game{
		Timestamp:  time.Now().UTC(),
		Black:      black,
		White:      white,
		Result:     st.Result.String(),
		BlackDiscs: g.BitsFor(othello.Black).CountSet(),
		WhiteDiscs: g.BitsFor(othello.White).CountSet(),
		Plies:      len(moves),
		Moves:      notation.FormatMoves(moves),
	}
	if st.Result == othello.Win {
		row.Winner = st.Winner.String()
	}
	return row
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	_, err = sql.Exec(createGameTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create game table: %w", err)
	}
	_, err = sql.Exec(createPlayerView)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create player_games view: %w", err)
	}
	return &Repository{db: sql}, nil
}

// InsertGame stores g and sets its ID.
func (r *Repository) InsertGame(g *Game) error {
	return insertGame(r.db, g)
}

func insertGame(ex sqlx.Ext, g *Game) error {
	res, err := sqlx.NamedExec(ex, insertStmt, g)
	if err != nil {
		return err
	}
	g.ID, err = res.LastInsertId()
	return err
}

// InsertGames stores gs in one transaction.
func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	for _, g := range gs {
		if e := insertGame(txn, g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Games returns up to limit games, newest first.
func (r *Repository) Games(limit int) ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectGames, limit); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	return out, nil
}

func (r *Repository) Records() ([]PlayerRecord, error) {
	var out []PlayerRecord
	if err := r.db.Select(&out, selectRecords); err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	return out, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
