package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  time datetime not null,
  black varchar not null,
  white varchar not null,
  result string not null,
  winner string not null,
  black_discs int not null,
  white_discs int not null,
  plies int not null,
  moves text not null
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, color, win, discs, plies
) AS
SELECT id, black, white, 'black',
       CASE winner WHEN 'white' THEN 'lose' WHEN 'black' THEN 'win' ELSE 'tie' END,
       black_discs, plies
 FROM games
UNION ALL
SELECT id, white, black, 'white',
       CASE winner WHEN 'white' THEN 'win' WHEN 'black' THEN 'lose' ELSE 'tie' END,
       white_discs, plies
 FROM games
`

const insertStmt = `
INSERT INTO games (time, black, white, result, winner, black_discs, white_discs, plies, moves)
VALUES (:time, :black, :white, :result, :winner, :black_discs, :white_discs, :plies, :moves)
`

const selectGames = `
SELECT id, time, black, white, result, winner, black_discs, white_discs, plies, moves
FROM games ORDER BY id DESC LIMIT ?
`

const selectRecords = `
SELECT player,
       SUM(CASE win WHEN 'win' THEN 1 ELSE 0 END) AS wins,
       SUM(CASE win WHEN 'lose' THEN 1 ELSE 0 END) AS losses,
       SUM(CASE win WHEN 'tie' THEN 1 ELSE 0 END) AS ties
FROM player_games GROUP BY player ORDER BY player
`
