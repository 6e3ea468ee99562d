// Package archive stores finished arena games in a local SQLite file so they
// can be replayed and inspected later. The decision engine never reads from
// it; recording is purely for humans.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/copperbelly/battlesnake/sdk"
)

type DB struct {
	conn *sql.DB
	mu   sync.Mutex
}

// Game is one recorded arena game.
type Game struct {
	ID     string
	Winner string
	Turns  int
}

// Frame is the full state of one turn of a recorded game.
type Frame struct {
	GameID string
	Turn   int
	State  sdk.GameState
}

// Open creates or opens the archive at path and ensures the schema exists.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	// SQLite only supports one writer.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		winner TEXT,
		turns INTEGER,
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS frames (
		game_id TEXT,
		turn INTEGER,
		state_json TEXT,
		PRIMARY KEY (game_id, turn),
		FOREIGN KEY(game_id) REFERENCES games(id)
	);

	CREATE INDEX IF NOT EXISTS idx_frames_game_id ON frames(game_id);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize archive schema: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// RecordFrame stores the state of one turn.
func (db *DB) RecordFrame(gameID string, turn int, state sdk.GameState) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	_, err = db.conn.Exec(
		`INSERT OR REPLACE INTO frames (game_id, turn, state_json) VALUES (?, ?, ?)`,
		gameID, turn, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to record frame: %w", err)
	}
	return nil
}

// FinishGame records the game's outcome once it is over.
func (db *DB) FinishGame(gameID, winner string, turns int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO games (id, winner, turns) VALUES (?, ?, ?)`,
		gameID, winner, turns,
	)
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}
	return nil
}

// Games lists recorded games, most recent first.
func (db *DB) Games() ([]Game, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(`SELECT id, winner, turns FROM games ORDER BY recorded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Winner, &g.Turns); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// Frames loads a game's recorded turns in order.
func (db *DB) Frames(gameID string) ([]Frame, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(`SELECT turn, state_json FROM frames WHERE game_id = ? ORDER BY turn ASC`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load frames: %w", err)
	}
	defer rows.Close()

	frames := []Frame{}
	for rows.Next() {
		var turn int
		var raw string
		if err := rows.Scan(&turn, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan frame: %w", err)
		}
		frame := Frame{GameID: gameID, Turn: turn}
		if err := json.Unmarshal([]byte(raw), &frame.State); err != nil {
			return nil, fmt.Errorf("failed to decode frame %d: %w", turn, err)
		}
		frames = append(frames, frame)
	}
	return frames, rows.Err()
}
