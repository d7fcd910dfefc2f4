package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage"
)

// timeLayout is how timestamps are stored in TEXT columns
const timeLayout = time.RFC3339Nano

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the database at path and ensures the schema exists.
// Use ":memory:" for an ephemeral database.
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// An in-memory database exists per connection; keep the pool at one
	// so every query sees the same database. SQLite allows a single
	// writer regardless.
	db.SetMaxOpenConns(1)

	if err := initTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func initTables(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return err
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS leagues (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS players (
			uuid TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS memberships (
			player_uuid TEXT NOT NULL,
			league_id TEXT NOT NULL,
			joined_at TEXT NOT NULL,
			PRIMARY KEY (player_uuid, league_id)
		);

		CREATE TABLE IF NOT EXISTS scores (
			player_uuid TEXT NOT NULL,
			league_id TEXT NOT NULL,
			date TEXT NOT NULL,
			mistakes INTEGER NOT NULL,
			recorded_at TEXT NOT NULL,
			PRIMARY KEY (player_uuid, league_id, date)
		);

		CREATE TABLE IF NOT EXISTS puzzles (
			date TEXT PRIMARY KEY,
			categories_json TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_memberships_league ON memberships (league_id);
		CREATE INDEX IF NOT EXISTS idx_scores_league_date ON scores (league_id, date);
	`)
	return err
}

// League operations

func (s *Storage) SaveLeague(ctx context.Context, league *model.League) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leagues (id, name, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		string(league.ID), league.Name, league.CreatedAt.Format(timeLayout))
	return err
}

func (s *Storage) GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error) {
	var league model.League
	var createdAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM leagues WHERE id = ?`, string(id)).
		Scan(&league.ID, &league.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrLeagueNotFound
	}
	if err != nil {
		return nil, err
	}

	league.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, err
	}
	return &league, nil
}

func (s *Storage) LeagueExists(ctx context.Context, id model.LeagueID) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM leagues WHERE id = ?`, string(id)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Player operations

func (s *Storage) UpsertPlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	// ON CONFLICT leaves created_at untouched so the original value
	// survives repeated upserts
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (uuid, display_name, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(uuid) DO UPDATE SET display_name = excluded.display_name`,
		string(player.UUID), player.DisplayName, player.CreatedAt.Format(timeLayout))
	if err != nil {
		return nil, err
	}
	return s.GetPlayer(ctx, player.UUID)
}

func (s *Storage) GetPlayer(ctx context.Context, uuid model.PlayerID) (*model.Player, error) {
	var player model.Player
	var createdAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT uuid, display_name, created_at FROM players WHERE uuid = ?`, string(uuid)).
		Scan(&player.UUID, &player.DisplayName, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	player.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Membership operations

func (s *Storage) AddMembership(ctx context.Context, uuid model.PlayerID, leagueID model.LeagueID, joinedAt time.Time) error {
	// DO NOTHING keeps the original joined_at for duplicate joins
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO memberships (player_uuid, league_id, joined_at) VALUES (?, ?, ?)
		 ON CONFLICT(player_uuid, league_id) DO NOTHING`,
		string(uuid), string(leagueID), joinedAt.Format(timeLayout))
	return err
}

func (s *Storage) HasMembership(ctx context.Context, uuid model.PlayerID, leagueID model.LeagueID) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM memberships WHERE player_uuid = ? AND league_id = ?`,
		string(uuid), string(leagueID)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Storage) ListMembers(ctx context.Context, leagueID model.LeagueID) ([]model.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.player_uuid, COALESCE(p.display_name, '')
		 FROM memberships m
		 LEFT JOIN players p ON p.uuid = m.player_uuid
		 WHERE m.league_id = ?`,
		string(leagueID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		var member model.Member
		if err := rows.Scan(&member.PlayerUUID, &member.DisplayName); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (s *Storage) ListLeagues(ctx context.Context, uuid model.PlayerID) ([]model.LeagueRef, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.league_id, COALESCE(l.name, '')
		 FROM memberships m
		 LEFT JOIN leagues l ON l.id = m.league_id
		 WHERE m.player_uuid = ?`,
		string(uuid))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []model.LeagueRef{}
	for rows.Next() {
		var ref model.LeagueRef
		if err := rows.Scan(&ref.LeagueID, &ref.LeagueName); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (s *Storage) CountMembers(ctx context.Context, leagueID model.LeagueID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE league_id = ?`,
		string(leagueID)).Scan(&count)
	return count, err
}

// Score operations

func (s *Storage) UpsertScore(ctx context.Context, score *model.Score) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM scores WHERE player_uuid = ? AND league_id = ? AND date = ?`,
		string(score.PlayerUUID), string(score.LeagueID), string(score.Date)).Scan(&one)
	created := errors.Is(err, sql.ErrNoRows)
	if err != nil && !created {
		return false, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scores (player_uuid, league_id, date, mistakes, recorded_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(player_uuid, league_id, date) DO UPDATE SET
			mistakes = excluded.mistakes,
			recorded_at = excluded.recorded_at`,
		string(score.PlayerUUID), string(score.LeagueID), string(score.Date),
		score.Mistakes, score.RecordedAt.Format(timeLayout))
	if err != nil {
		return false, err
	}

	return created, tx.Commit()
}

func (s *Storage) ScoresForDate(ctx context.Context, leagueID model.LeagueID, date model.Date) ([]model.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_uuid, mistakes FROM scores WHERE league_id = ? AND date = ?`,
		string(leagueID), string(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.ScoreEntry{}
	for rows.Next() {
		var entry model.ScoreEntry
		if err := rows.Scan(&entry.PlayerUUID, &entry.Mistakes); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Storage) CountPlayedOnDate(ctx context.Context, leagueID model.LeagueID, date model.Date) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM scores WHERE league_id = ? AND date = ?`,
		string(leagueID), string(date)).Scan(&count)
	return count, err
}

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	categories, err := json.Marshal(puzzle.Categories)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO puzzles (date, categories_json) VALUES (?, ?)
		 ON CONFLICT(date) DO UPDATE SET categories_json = excluded.categories_json`,
		string(puzzle.Date), string(categories))
	return err
}

func (s *Storage) GetPuzzle(ctx context.Context, date model.Date) (*model.Puzzle, error) {
	var categoriesJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT categories_json FROM puzzles WHERE date = ?`, string(date)).
		Scan(&categoriesJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPuzzleNotFound
	}
	if err != nil {
		return nil, err
	}

	puzzle := &model.Puzzle{Date: date}
	if err := json.Unmarshal([]byte(categoriesJSON), &puzzle.Categories); err != nil {
		return nil, err
	}
	return puzzle, nil
}
