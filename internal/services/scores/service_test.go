package scores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/daygrid/leagues/internal/dependencies/mocks"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage"
	"github.com/daygrid/leagues/internal/storage/memory"
	"github.com/daygrid/leagues/internal/testutil"
)

// flakyStorage fails score upserts for one league
type flakyStorage struct {
	storage.Storage
	failLeague model.LeagueID
}

func (f *flakyStorage) UpsertScore(ctx context.Context, score *model.Score) (bool, error) {
	if score.LeagueID == f.failLeague {
		return false, errors.New("store unavailable")
	}
	return f.Storage.UpsertScore(ctx, score)
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) joinLeague(leagueID model.LeagueID, uuid model.PlayerID, name string) {
	err := s.storage.SaveLeague(s.ctx, &model.League{
		ID:        leagueID,
		Name:      string(leagueID),
		CreatedAt: s.clock.Now(),
	})
	s.Require().NoError(err)
	_, err = s.storage.UpsertPlayer(s.ctx, &model.Player{
		UUID:        uuid,
		DisplayName: name,
		CreatedAt:   s.clock.Now(),
	})
	s.Require().NoError(err)
	err = s.storage.AddMembership(s.ctx, uuid, leagueID, s.clock.Now())
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestSubmitFansOutToAllLeagues() {
	s.joinLeague("league-a", "alice", "Alice")
	s.joinLeague("league-b", "alice", "Alice")
	s.joinLeague("league-c", "alice", "Alice")

	recorded, err := s.service.Submit(s.ctx, "alice", "2024-01-05", 2)
	s.Require().NoError(err)
	s.Equal(3, recorded)

	for _, leagueID := range []model.LeagueID{"league-a", "league-b", "league-c"} {
		entries, err := s.storage.ScoresForDate(s.ctx, leagueID, "2024-01-05")
		s.Require().NoError(err)
		s.Require().Len(entries, 1)
		s.Equal(2, entries[0].Mistakes)
	}
}

func (s *ServiceSuite) TestSubmitWithNoLeaguesRecordsNothing() {
	recorded, err := s.service.Submit(s.ctx, "alice", "2024-01-05", 2)
	s.Require().NoError(err)
	s.Equal(0, recorded)
}

func (s *ServiceSuite) TestSubmitOverwritesSameDay() {
	s.joinLeague("league-a", "alice", "Alice")

	_, err := s.service.Submit(s.ctx, "alice", "2024-01-05", 4)
	s.Require().NoError(err)
	recorded, err := s.service.Submit(s.ctx, "alice", "2024-01-05", 1)
	s.Require().NoError(err)
	s.Equal(1, recorded)

	entries, err := s.storage.ScoresForDate(s.ctx, "league-a", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(1, entries[0].Mistakes)
}

func (s *ServiceSuite) TestSubmitContinuesPastFailedLeague() {
	s.joinLeague("league-a", "alice", "Alice")
	s.joinLeague("league-b", "alice", "Alice")
	s.joinLeague("league-c", "alice", "Alice")

	flaky := &flakyStorage{Storage: s.storage, failLeague: "league-b"}
	service := New(flaky, s.clock, testutil.NopLogger())

	recorded, err := service.Submit(s.ctx, "alice", "2024-01-05", 2)
	s.Require().NoError(err)
	s.Equal(2, recorded)

	entries, err := s.storage.ScoresForDate(s.ctx, "league-b", "2024-01-05")
	s.Require().NoError(err)
	s.Empty(entries)
	entries, err = s.storage.ScoresForDate(s.ctx, "league-c", "2024-01-05")
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *ServiceSuite) TestSubmitAllowsZeroMistakes() {
	s.joinLeague("league-a", "alice", "Alice")

	recorded, err := s.service.Submit(s.ctx, "alice", "2024-01-05", 0)
	s.Require().NoError(err)
	s.Equal(1, recorded)
}

func (s *ServiceSuite) TestSubmitFailsOnMissingPlayer() {
	_, err := s.service.Submit(s.ctx, "", "2024-01-05", 2)
	s.ErrorIs(err, model.ErrMissingPlayer)
}

func (s *ServiceSuite) TestSubmitFailsOnMissingDate() {
	_, err := s.service.Submit(s.ctx, "alice", "", 2)
	s.ErrorIs(err, model.ErrMissingDate)
}

func (s *ServiceSuite) TestSubmitFailsOnNegativeMistakes() {
	_, err := s.service.Submit(s.ctx, "alice", "2024-01-05", -1)
	s.ErrorIs(err, model.ErrNegativeMistakes)
}
