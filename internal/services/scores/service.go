package scores

import (
	"context"
	"log/slog"

	"github.com/daygrid/leagues/internal/dependencies/clock"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage"
)

// Service records submitted scores against every league a player
// belongs to
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new scores Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Submit fans a single submission out to every league the player belongs
// to and returns how many leagues recorded it. A player in no leagues
// gets recorded=0 with no error. Leagues are independent: one league's
// failed upsert is logged and skipped, never aborting the rest.
func (s *Service) Submit(ctx context.Context, uuid model.PlayerID, date model.Date, mistakes int) (int, error) {
	if uuid == "" {
		return 0, model.ErrMissingPlayer
	}
	if date == "" {
		return 0, model.ErrMissingDate
	}
	if mistakes < 0 {
		return 0, model.ErrNegativeMistakes
	}

	refs, err := s.storage.ListLeagues(ctx, uuid)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	recorded := 0
	for _, ref := range refs {
		_, err := s.storage.UpsertScore(ctx, &model.Score{
			PlayerUUID: uuid,
			LeagueID:   ref.LeagueID,
			Date:       date,
			Mistakes:   mistakes,
			RecordedAt: now,
		})
		if err != nil {
			s.logger.Warn("score upsert failed, continuing with remaining leagues",
				slog.String("league_id", string(ref.LeagueID)),
				slog.String("player_uuid", string(uuid)),
				slog.String("date", string(date)),
				slog.String("error", err.Error()),
			)
			continue
		}
		recorded++
	}

	return recorded, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Submit(ctx context.Context, uuid model.PlayerID, date model.Date, mistakes int) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
