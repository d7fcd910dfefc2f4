package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/daygrid/leagues/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
}

// League tests

func (s *StorageSuite) TestSaveAndGetLeague() {
	league := &model.League{
		ID:        "abcd1234",
		Name:      "Office League",
		CreatedAt: s.now,
	}

	err := s.storage.SaveLeague(s.ctx, league)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetLeague(s.ctx, "abcd1234")
	s.Require().NoError(err)
	s.Equal(league.ID, retrieved.ID)
	s.Equal(league.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetLeagueNotFound() {
	_, err := s.storage.GetLeague(s.ctx, "nonexist")
	s.ErrorIs(err, model.ErrLeagueNotFound)
}

func (s *StorageSuite) TestLeagueExists() {
	exists, err := s.storage.LeagueExists(s.ctx, "abcd1234")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveLeague(s.ctx, &model.League{ID: "abcd1234", Name: "Office League"})

	exists, err = s.storage.LeagueExists(s.ctx, "abcd1234")
	s.Require().NoError(err)
	s.True(exists)
}

// Player tests

func (s *StorageSuite) TestUpsertAndGetPlayer() {
	player := &model.Player{
		UUID:        "player-1",
		DisplayName: "Alice",
		CreatedAt:   s.now,
	}

	_, err := s.storage.UpsertPlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.UUID, retrieved.UUID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestUpsertPlayerKeepsCreatedAt() {
	_, err := s.storage.UpsertPlayer(s.ctx, &model.Player{
		UUID:        "player-1",
		DisplayName: "Alice",
		CreatedAt:   s.now,
	})
	s.Require().NoError(err)

	updated, err := s.storage.UpsertPlayer(s.ctx, &model.Player{
		UUID:        "player-1",
		DisplayName: "Alicia",
		CreatedAt:   s.now.Add(24 * time.Hour),
	})
	s.Require().NoError(err)

	s.Equal("Alicia", updated.DisplayName)
	s.Equal(s.now, updated.CreatedAt)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Membership tests

func (s *StorageSuite) TestAddAndHasMembership() {
	err := s.storage.AddMembership(s.ctx, "player-1", "abcd1234", s.now)
	s.Require().NoError(err)

	isMember, err := s.storage.HasMembership(s.ctx, "player-1", "abcd1234")
	s.Require().NoError(err)
	s.True(isMember)

	isMember, err = s.storage.HasMembership(s.ctx, "player-2", "abcd1234")
	s.Require().NoError(err)
	s.False(isMember)
}

func (s *StorageSuite) TestAddMembershipIsIdempotent() {
	err := s.storage.AddMembership(s.ctx, "player-1", "abcd1234", s.now)
	s.Require().NoError(err)
	err = s.storage.AddMembership(s.ctx, "player-1", "abcd1234", s.now.Add(time.Hour))
	s.Require().NoError(err)

	count, err := s.storage.CountMembers(s.ctx, "abcd1234")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *StorageSuite) TestListMembersIncludesDisplayName() {
	_, _ = s.storage.UpsertPlayer(s.ctx, &model.Player{UUID: "player-1", DisplayName: "Alice"})
	_ = s.storage.AddMembership(s.ctx, "player-1", "abcd1234", s.now)

	members, err := s.storage.ListMembers(s.ctx, "abcd1234")
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(model.PlayerID("player-1"), members[0].PlayerUUID)
	s.Equal("Alice", members[0].DisplayName)
}

func (s *StorageSuite) TestListMembersScopedToLeague() {
	_ = s.storage.AddMembership(s.ctx, "player-1", "abcd1234", s.now)
	_ = s.storage.AddMembership(s.ctx, "player-2", "wxyz5678", s.now)

	members, err := s.storage.ListMembers(s.ctx, "abcd1234")
	s.Require().NoError(err)
	s.Len(members, 1)
}

func (s *StorageSuite) TestListLeaguesForPlayer() {
	_ = s.storage.SaveLeague(s.ctx, &model.League{ID: "abcd1234", Name: "Office League"})
	_ = s.storage.AddMembership(s.ctx, "player-1", "abcd1234", s.now)
	_ = s.storage.AddMembership(s.ctx, "player-1", "wxyz5678", s.now)
	_ = s.storage.AddMembership(s.ctx, "player-2", "qrst9012", s.now)

	refs, err := s.storage.ListLeagues(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Len(refs, 2)

	ids := []model.LeagueID{refs[0].LeagueID, refs[1].LeagueID}
	s.Contains(ids, model.LeagueID("abcd1234"))
	s.Contains(ids, model.LeagueID("wxyz5678"))
}

func (s *StorageSuite) TestCountMembersEmpty() {
	count, err := s.storage.CountMembers(s.ctx, "abcd1234")
	s.Require().NoError(err)
	s.Equal(0, count)
}

// Score tests

func (s *StorageSuite) TestUpsertScoreReportsCreated() {
	score := &model.Score{
		PlayerUUID: "player-1",
		LeagueID:   "abcd1234",
		Date:       "2024-01-05",
		Mistakes:   2,
		RecordedAt: s.now,
	}

	created, err := s.storage.UpsertScore(s.ctx, score)
	s.Require().NoError(err)
	s.True(created)

	score.Mistakes = 1
	created, err = s.storage.UpsertScore(s.ctx, score)
	s.Require().NoError(err)
	s.False(created)

	entries, err := s.storage.ScoresForDate(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(1, entries[0].Mistakes)
}

func (s *StorageSuite) TestScoresForDateScopedToLeagueAndDate() {
	for _, score := range []*model.Score{
		{PlayerUUID: "player-1", LeagueID: "abcd1234", Date: "2024-01-05", Mistakes: 0},
		{PlayerUUID: "player-2", LeagueID: "abcd1234", Date: "2024-01-04", Mistakes: 1},
		{PlayerUUID: "player-3", LeagueID: "wxyz5678", Date: "2024-01-05", Mistakes: 2},
	} {
		_, err := s.storage.UpsertScore(s.ctx, score)
		s.Require().NoError(err)
	}

	entries, err := s.storage.ScoresForDate(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(model.PlayerID("player-1"), entries[0].PlayerUUID)
}

func (s *StorageSuite) TestCountPlayedOnDate() {
	for _, uuid := range []model.PlayerID{"player-1", "player-2"} {
		_, err := s.storage.UpsertScore(s.ctx, &model.Score{
			PlayerUUID: uuid,
			LeagueID:   "abcd1234",
			Date:       "2024-01-05",
			Mistakes:   3,
		})
		s.Require().NoError(err)
	}

	count, err := s.storage.CountPlayedOnDate(s.ctx, "abcd1234", "2024-01-05")
	s.Require().NoError(err)
	s.Equal(2, count)

	count, err = s.storage.CountPlayedOnDate(s.ctx, "abcd1234", "2024-01-04")
	s.Require().NoError(err)
	s.Equal(0, count)
}

// Puzzle tests

func (s *StorageSuite) TestSaveAndGetPuzzle() {
	puzzle := &model.Puzzle{
		Date: "2024-01-05",
		Categories: []model.PuzzleCategory{
			{Name: "Fruit", Words: []string{"apple", "pear", "plum", "fig"}},
			{Name: "Metals", Words: []string{"iron", "gold", "lead", "tin"}},
			{Name: "Rivers", Words: []string{"nile", "amazon", "volga", "seine"}},
			{Name: "Gems", Words: []string{"ruby", "opal", "jade", "pearl"}},
		},
	}

	err := s.storage.SavePuzzle(s.ctx, puzzle)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzle(s.ctx, "2024-01-05")
	s.Require().NoError(err)
	s.Equal(puzzle.Date, retrieved.Date)
	s.Len(retrieved.Categories, 4)
}

func (s *StorageSuite) TestGetPuzzleNotFound() {
	_, err := s.storage.GetPuzzle(s.ctx, "2024-01-05")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}
