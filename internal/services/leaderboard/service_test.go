package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/daygrid/leagues/internal/dependencies/mocks"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage/memory"
)

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
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
}

func (s *ServiceSuite) createLeague(id model.LeagueID, name string) {
	err := s.storage.SaveLeague(s.ctx, &model.League{
		ID:        id,
		Name:      name,
		CreatedAt: s.clock.Now(),
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) addMember(leagueID model.LeagueID, uuid model.PlayerID, name string) {
	_, err := s.storage.UpsertPlayer(s.ctx, &model.Player{
		UUID:        uuid,
		DisplayName: name,
		CreatedAt:   s.clock.Now(),
	})
	s.Require().NoError(err)
	err = s.storage.AddMembership(s.ctx, uuid, leagueID, s.clock.Now())
	s.Require().NoError(err)
}

func (s *ServiceSuite) addScore(leagueID model.LeagueID, uuid model.PlayerID, date model.Date, mistakes int) {
	_, err := s.storage.UpsertScore(s.ctx, &model.Score{
		PlayerUUID: uuid,
		LeagueID:   leagueID,
		Date:       date,
		Mistakes:   mistakes,
		RecordedAt: s.clock.Now(),
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestComputeFailsIfLeagueNotFound() {
	_, err := s.service.Compute(s.ctx, "nonexist", "2024-01-05")
	s.ErrorIs(err, model.ErrLeagueNotFound)
}

func (s *ServiceSuite) TestComputeEmptyLeague() {
	s.createLeague("abcd1234", "Office League")

	board, err := s.service.Compute(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)

	s.Equal(model.LeagueID("abcd1234"), board.League.ID)
	s.Equal(model.Date("2024-01-05"), board.Date)
	s.Empty(board.Entries)
}

func (s *ServiceSuite) TestComputeTiesShareRankUnplayedTrail() {
	s.createLeague("abcd1234", "Office League")
	s.addMember("abcd1234", "alice", "Alice")
	s.addMember("abcd1234", "bob", "Bob")
	s.addMember("abcd1234", "carol", "Carol")
	s.addScore("abcd1234", "bob", "2024-01-05", 2)
	s.addScore("abcd1234", "carol", "2024-01-05", 2)

	board, err := s.service.Compute(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 3)

	// Bob and Carol tie at rank 1; Alice has not played
	s.Equal("Bob", board.Entries[0].DisplayName)
	s.Equal(1, *board.Entries[0].Rank)
	s.Equal(2, *board.Entries[0].Mistakes)

	s.Equal("Carol", board.Entries[1].DisplayName)
	s.Equal(1, *board.Entries[1].Rank)
	s.Equal(2, *board.Entries[1].Mistakes)

	s.Equal("Alice", board.Entries[2].DisplayName)
	s.Nil(board.Entries[2].Rank)
	s.Nil(board.Entries[2].Mistakes)
}

func (s *ServiceSuite) TestComputeRanksCountPlayedEntries() {
	s.createLeague("abcd1234", "Office League")
	s.addMember("abcd1234", "alice", "Alice")
	s.addMember("abcd1234", "bob", "Bob")
	s.addMember("abcd1234", "carol", "Carol")
	s.addMember("abcd1234", "dave", "Dave")
	s.addScore("abcd1234", "bob", "2024-01-05", 2)
	s.addScore("abcd1234", "carol", "2024-01-05", 2)
	s.addScore("abcd1234", "dave", "2024-01-05", 0)

	board, err := s.service.Compute(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 4)

	// Dave leads; the tied pair shares the next position, not rank 2 twice
	s.Equal("Dave", board.Entries[0].DisplayName)
	s.Equal(1, *board.Entries[0].Rank)
	s.Equal("Bob", board.Entries[1].DisplayName)
	s.Equal(2, *board.Entries[1].Rank)
	s.Equal("Carol", board.Entries[2].DisplayName)
	s.Equal(2, *board.Entries[2].Rank)
	s.Equal("Alice", board.Entries[3].DisplayName)
	s.Nil(board.Entries[3].Rank)
}

func (s *ServiceSuite) TestComputeRankAfterTieSkipsPositions() {
	s.createLeague("abcd1234", "Office League")
	s.addMember("abcd1234", "alice", "Alice")
	s.addMember("abcd1234", "bob", "Bob")
	s.addMember("abcd1234", "carol", "Carol")
	s.addScore("abcd1234", "alice", "2024-01-05", 0)
	s.addScore("abcd1234", "bob", "2024-01-05", 0)
	s.addScore("abcd1234", "carol", "2024-01-05", 3)

	board, err := s.service.Compute(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 3)

	s.Equal(1, *board.Entries[0].Rank)
	s.Equal(1, *board.Entries[1].Rank)
	s.Equal(3, *board.Entries[2].Rank)
	s.Equal("Carol", board.Entries[2].DisplayName)
}

func (s *ServiceSuite) TestComputeUnplayedOrderedByName() {
	s.createLeague("abcd1234", "Office League")
	s.addMember("abcd1234", "p1", "Zara")
	s.addMember("abcd1234", "p2", "Amy")

	board, err := s.service.Compute(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 2)

	s.Equal("Amy", board.Entries[0].DisplayName)
	s.Equal("Zara", board.Entries[1].DisplayName)
	s.Nil(board.Entries[0].Rank)
	s.Nil(board.Entries[1].Rank)
}

func (s *ServiceSuite) TestComputeDefaultsToToday() {
	s.createLeague("abcd1234", "Office League")
	s.addMember("abcd1234", "alice", "Alice")
	s.addScore("abcd1234", "alice", "2024-01-05", 1)

	board, err := s.service.Compute(s.ctx, "abcd1234", "")
	s.Require().NoError(err)

	s.Equal(model.Date("2024-01-05"), board.Date)
	s.Require().Len(board.Entries, 1)
	s.Equal(1, *board.Entries[0].Mistakes)
}

func (s *ServiceSuite) TestComputeIgnoresOtherDates() {
	s.createLeague("abcd1234", "Office League")
	s.addMember("abcd1234", "alice", "Alice")
	s.addScore("abcd1234", "alice", "2024-01-04", 1)

	board, err := s.service.Compute(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 1)
	s.Nil(board.Entries[0].Mistakes)
	s.Nil(board.Entries[0].Rank)
}

func (s *ServiceSuite) TestComputeIgnoresOtherLeagues() {
	s.createLeague("abcd1234", "Office League")
	s.createLeague("wxyz5678", "Family League")
	s.addMember("abcd1234", "alice", "Alice")
	s.addMember("wxyz5678", "alice", "Alice")
	s.addScore("wxyz5678", "alice", "2024-01-05", 1)

	board, err := s.service.Compute(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 1)
	s.Nil(board.Entries[0].Mistakes)
}

func (s *ServiceSuite) TestComputeRanksAreNonDecreasing() {
	s.createLeague("abcd1234", "Office League")
	members := []struct {
		uuid     model.PlayerID
		name     string
		mistakes int
	}{
		{"p1", "Alice", 4},
		{"p2", "Bob", 0},
		{"p3", "Carol", 4},
		{"p4", "Dave", 2},
		{"p5", "Erin", 0},
		{"p6", "Frank", 1},
	}
	for _, m := range members {
		s.addMember("abcd1234", m.uuid, m.name)
		s.addScore("abcd1234", m.uuid, "2024-01-05", m.mistakes)
	}

	board, err := s.service.Compute(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(board.Entries, len(members))

	prevRank := 0
	prevMistakes := -1
	for _, e := range board.Entries {
		s.Require().NotNil(e.Rank)
		s.Require().NotNil(e.Mistakes)
		s.GreaterOrEqual(*e.Rank, prevRank)
		s.GreaterOrEqual(*e.Mistakes, prevMistakes)
		prevRank = *e.Rank
		prevMistakes = *e.Mistakes
	}
}
