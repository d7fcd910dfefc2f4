package storage

import (
	"context"
	"time"

	"github.com/daygrid/leagues/internal/model"
)

// MembershipStore persists leagues, players, and the player-league relation
type MembershipStore interface {
	// League operations
	SaveLeague(ctx context.Context, league *model.League) error
	GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error)
	LeagueExists(ctx context.Context, id model.LeagueID) (bool, error)

	// Player operations. UpsertPlayer creates the player if absent;
	// otherwise it overwrites the display name only, preserving the
	// original CreatedAt.
	UpsertPlayer(ctx context.Context, player *model.Player) (*model.Player, error)
	GetPlayer(ctx context.Context, uuid model.PlayerID) (*model.Player, error)

	// Membership operations. AddMembership is idempotent: a duplicate
	// call for the same pair is a no-op and keeps the original JoinedAt.
	AddMembership(ctx context.Context, uuid model.PlayerID, leagueID model.LeagueID, joinedAt time.Time) error
	HasMembership(ctx context.Context, uuid model.PlayerID, leagueID model.LeagueID) (bool, error)
	ListMembers(ctx context.Context, leagueID model.LeagueID) ([]model.Member, error)
	ListLeagues(ctx context.Context, uuid model.PlayerID) ([]model.LeagueRef, error)
	CountMembers(ctx context.Context, leagueID model.LeagueID) (int, error)
}

// ScoreStore persists per-player, per-league, per-date score rows
type ScoreStore interface {
	// UpsertScore writes a score keyed by (player, league, date),
	// overwriting mistakes and recordedAt on conflict. It reports
	// whether a new row was created.
	UpsertScore(ctx context.Context, score *model.Score) (created bool, err error)
	ScoresForDate(ctx context.Context, leagueID model.LeagueID, date model.Date) ([]model.ScoreEntry, error)
	CountPlayedOnDate(ctx context.Context, leagueID model.LeagueID, date model.Date) (int, error)
}

// PuzzleStore persists daily puzzle content
type PuzzleStore interface {
	SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error
	GetPuzzle(ctx context.Context, date model.Date) (*model.Puzzle, error)
}

// Storage is the full persistence contract the services are built on
type Storage interface {
	MembershipStore
	ScoreStore
	PuzzleStore
}
