package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/save-the-dragon/internal/game"
)

// Store defines the persistence operations the engine relies on
type Store interface {
	CreateGame(ctx context.Context, g *game.Game) error
	LoadGame(ctx context.Context, gameID string) (*game.State, error)
	// UpdateGame runs fn against the loaded state inside one transaction and
	// writes the result back. If fn fails nothing is written.
	UpdateGame(ctx context.Context, gameID string, fn func(*game.State) error) error
	ListGames(ctx context.Context) ([]*game.State, error)
	DeleteGame(ctx context.Context, gameID string) error
	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	state_json TEXT NOT NULL,
	created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS players (
	id TEXT PRIMARY KEY,
	game_id TEXT NOT NULL,
	name TEXT NOT NULL,
	seq INTEGER NOT NULL,
	state_json TEXT NOT NULL,
	UNIQUE(game_id, name)
);

CREATE INDEX IF NOT EXISTS idx_players_game ON players(game_id);

CREATE TABLE IF NOT EXISTS valid_moves (
	game_id TEXT NOT NULL,
	x INTEGER NOT NULL,
	y INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_valid_moves_game ON valid_moves(game_id);
`

// dialect captures the differences between the SQL backends
type dialect struct {
	name       string
	numbered   bool   // $1 placeholders instead of ?
	lockSuffix string // appended to the game select inside UpdateGame
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// sqlStore implements Store over database/sql
type sqlStore struct {
	db      *sql.DB
	dialect dialect
}

func newSQLStore(db *sql.DB, d dialect) (*sqlStore, error) {
	s := &sqlStore{db: db, dialect: d}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *sqlStore) initSchema() error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// rebind rewrites ? placeholders for backends that number them
func (s *sqlStore) rebind(query string) string {
	if !s.dialect.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CreateGame inserts a new game record
func (s *sqlStore) CreateGame(ctx context.Context, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to encode game: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO games (id, state_json, created_at) VALUES (?, ?, ?)`),
		g.ID, string(data), g.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

// LoadGame reads a game with its players and valid moves
func (s *sqlStore) LoadGame(ctx context.Context, gameID string) (*game.State, error) {
	return s.load(ctx, s.db, gameID, "")
}

func (s *sqlStore) load(ctx context.Context, q querier, gameID, suffix string) (*game.State, error) {
	var data string
	err := q.QueryRowContext(ctx,
		s.rebind(`SELECT state_json FROM games WHERE id = ?`+suffix), gameID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, game.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	state := &game.State{Game: &game.Game{}}
	if err := json.Unmarshal([]byte(data), state.Game); err != nil {
		return nil, fmt.Errorf("failed to decode game: %w", err)
	}

	if state.Players, err = s.loadPlayers(ctx, q, gameID); err != nil {
		return nil, err
	}
	if state.ValidMoves, err = s.loadValidMoves(ctx, q, gameID); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *sqlStore) loadPlayers(ctx context.Context, q querier, gameID string) ([]*game.Player, error) {
	rows, err := q.QueryContext(ctx,
		s.rebind(`SELECT state_json FROM players WHERE game_id = ? ORDER BY seq`), gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	defer rows.Close()

	players := make([]*game.Player, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		p := &game.Player{}
		if err := json.Unmarshal([]byte(data), p); err != nil {
			return nil, fmt.Errorf("failed to decode player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *sqlStore) loadValidMoves(ctx context.Context, q querier, gameID string) ([]game.Position, error) {
	rows, err := q.QueryContext(ctx,
		s.rebind(`SELECT x, y FROM valid_moves WHERE game_id = ?`), gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load valid moves: %w", err)
	}
	defer rows.Close()

	moves := make([]game.Position, 0)
	for rows.Next() {
		var p game.Position
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("failed to scan valid move: %w", err)
		}
		moves = append(moves, p)
	}
	return moves, rows.Err()
}

// UpdateGame loads, mutates and saves a game atomically
func (s *sqlStore) UpdateGame(ctx context.Context, gameID string, fn func(*game.State) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	state, err := s.load(ctx, tx, gameID, s.dialect.lockSuffix)
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	if err := s.save(ctx, tx, state); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (s *sqlStore) save(ctx context.Context, tx *sql.Tx, state *game.State) error {
	data, err := json.Marshal(state.Game)
	if err != nil {
		return fmt.Errorf("failed to encode game: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		s.rebind(`UPDATE games SET state_json = ? WHERE id = ?`), string(data), state.Game.ID); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	upsert := s.rebind(`INSERT INTO players (id, game_id, name, seq, state_json) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, seq = excluded.seq, state_json = excluded.state_json`)
	for seq, p := range state.Players {
		pdata, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to encode player: %w", err)
		}
		if _, err := tx.ExecContext(ctx, upsert, p.ID, state.Game.ID, p.Name, seq, string(pdata)); err != nil {
			return fmt.Errorf("failed to save player %s: %w", p.Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		s.rebind(`DELETE FROM valid_moves WHERE game_id = ?`), state.Game.ID); err != nil {
		return fmt.Errorf("failed to clear valid moves: %w", err)
	}
	insert := s.rebind(`INSERT INTO valid_moves (game_id, x, y) VALUES (?, ?, ?)`)
	for _, m := range state.ValidMoves {
		if _, err := tx.ExecContext(ctx, insert, state.Game.ID, m.X, m.Y); err != nil {
			return fmt.Errorf("failed to save valid move: %w", err)
		}
	}
	return nil
}

// ListGames loads every stored game, oldest first
func (s *sqlStore) ListGames(ctx context.Context) ([]*game.State, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM games ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	states := make([]*game.State, 0, len(ids))
	for _, id := range ids {
		state, err := s.LoadGame(ctx, id)
		if errors.Is(err, game.ErrNotFound) {
			continue // deleted since listing
		}
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

// DeleteGame removes a game and everything attached to it
func (s *sqlStore) DeleteGame(ctx context.Context, gameID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM valid_moves WHERE game_id = ?`,
		`DELETE FROM players WHERE game_id = ?`,
		`DELETE FROM games WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, s.rebind(stmt), gameID); err != nil {
			return fmt.Errorf("failed to delete game: %w", err)
		}
	}
	return tx.Commit()
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}
