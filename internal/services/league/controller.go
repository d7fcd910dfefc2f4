package league

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/daygrid/leagues/internal/dependencies/clock"
	"github.com/daygrid/leagues/internal/dependencies/random"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage"
)

// LeagueIDAlphabet is the characters used in generated league IDs
const LeagueIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Controller manages leagues, players, and memberships
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new league Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateLeague creates a new league with a freshly generated ID.
// The name is trimmed and must be non-empty.
func (c *Controller) CreateLeague(ctx context.Context, name string) (*model.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyLeagueName
	}

	// Generate a unique league ID
	var id model.LeagueID
	for {
		id = model.LeagueID(c.random.String(model.LeagueIDLength, LeagueIDAlphabet))
		exists, err := c.storage.LeagueExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	league := &model.League{
		ID:        id,
		Name:      name,
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SaveLeague(ctx, league); err != nil {
		return nil, err
	}

	c.logger.Info("league created",
		slog.String("league_id", string(league.ID)),
		slog.String("name", league.Name),
	)

	return league, nil
}

// GetLeague retrieves a league by ID
func (c *Controller) GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error) {
	return c.storage.GetLeague(ctx, id)
}

// JoinLeague upserts the player and adds them to the league. Joining a
// league the player already belongs to is a no-op; the display name is
// still updated.
func (c *Controller) JoinLeague(ctx context.Context, leagueID model.LeagueID, uuid model.PlayerID, displayName string) (*model.Player, error) {
	if uuid == "" {
		return nil, model.ErrMissingPlayer
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, model.ErrEmptyDisplayName
	}

	// The league must exist before anything is written
	if _, err := c.storage.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	player, err := c.storage.UpsertPlayer(ctx, &model.Player{
		UUID:        uuid,
		DisplayName: displayName,
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	if err := c.storage.AddMembership(ctx, uuid, leagueID, now); err != nil {
		return nil, err
	}

	return player, nil
}

// PlayerSummary describes each league the player belongs to: member count
// and how many members have played today. Today is resolved once for the
// whole call. Leagues whose record no longer resolves are skipped.
func (c *Controller) PlayerSummary(ctx context.Context, uuid model.PlayerID) ([]model.LeagueSummary, error) {
	if uuid == "" {
		return nil, model.ErrMissingPlayer
	}

	refs, err := c.storage.ListLeagues(ctx, uuid)
	if err != nil {
		return nil, err
	}

	today := model.DateOf(c.clock.Now())

	summaries := make([]model.LeagueSummary, 0, len(refs))
	for _, ref := range refs {
		league, err := c.storage.GetLeague(ctx, ref.LeagueID)
		if errors.Is(err, model.ErrLeagueNotFound) {
			c.logger.Warn("skipping unresolvable league in summary",
				slog.String("league_id", string(ref.LeagueID)),
				slog.String("player_uuid", string(uuid)),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		totalMembers, err := c.storage.CountMembers(ctx, ref.LeagueID)
		if err != nil {
			return nil, err
		}

		playedToday, err := c.storage.CountPlayedOnDate(ctx, ref.LeagueID, today)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, model.LeagueSummary{
			LeagueID:     league.ID,
			LeagueName:   league.Name,
			TotalMembers: totalMembers,
			PlayedToday:  playedToday,
		})
	}

	return summaries, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateLeague(ctx context.Context, name string) (*model.League, error)
	GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error)
	JoinLeague(ctx context.Context, leagueID model.LeagueID, uuid model.PlayerID, displayName string) (*model.Player, error)
	PlayerSummary(ctx context.Context, uuid model.PlayerID) ([]model.LeagueSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
