package memory

import (
	"context"
	"sync"
	"time"

	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	leagues     map[model.LeagueID]*model.League
	players     map[model.PlayerID]*model.Player
	memberships map[membershipKey]*model.Membership
	scores      map[scoreKey]*model.Score
	puzzles     map[model.Date]*model.Puzzle
}

type membershipKey struct {
	uuid     model.PlayerID
	leagueID model.LeagueID
}

type scoreKey struct {
	uuid     model.PlayerID
	leagueID model.LeagueID
	date     model.Date
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		leagues:     make(map[model.LeagueID]*model.League),
		players:     make(map[model.PlayerID]*model.Player),
		memberships: make(map[membershipKey]*model.Membership),
		scores:      make(map[scoreKey]*model.Score),
		puzzles:     make(map[model.Date]*model.Puzzle),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// League operations

func (s *Storage) SaveLeague(ctx context.Context, league *model.League) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *league
	s.leagues[league.ID] = &cp
	return nil
}

func (s *Storage) GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	league, ok := s.leagues[id]
	if !ok {
		return nil, model.ErrLeagueNotFound
	}
	cp := *league
	return &cp, nil
}

func (s *Storage) LeagueExists(ctx context.Context, id model.LeagueID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.leagues[id]
	return ok, nil
}

// Player operations

func (s *Storage) UpsertPlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.players[player.UUID]; ok {
		existing.DisplayName = player.DisplayName
		cp := *existing
		return &cp, nil
	}

	cp := *player
	s.players[player.UUID] = &cp
	result := cp
	return &result, nil
}

func (s *Storage) GetPlayer(ctx context.Context, uuid model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[uuid]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *player
	return &cp, nil
}

// Membership operations

func (s *Storage) AddMembership(ctx context.Context, uuid model.PlayerID, leagueID model.LeagueID, joinedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := membershipKey{uuid: uuid, leagueID: leagueID}
	if _, ok := s.memberships[key]; ok {
		return nil
	}

	s.memberships[key] = &model.Membership{
		PlayerUUID: uuid,
		LeagueID:   leagueID,
		JoinedAt:   joinedAt,
	}
	return nil
}

func (s *Storage) HasMembership(ctx context.Context, uuid model.PlayerID, leagueID model.LeagueID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.memberships[membershipKey{uuid: uuid, leagueID: leagueID}]
	return ok, nil
}

func (s *Storage) ListMembers(ctx context.Context, leagueID model.LeagueID) ([]model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := []model.Member{}
	for key := range s.memberships {
		if key.leagueID != leagueID {
			continue
		}
		member := model.Member{PlayerUUID: key.uuid}
		if player, ok := s.players[key.uuid]; ok {
			member.DisplayName = player.DisplayName
		}
		members = append(members, member)
	}
	return members, nil
}

func (s *Storage) ListLeagues(ctx context.Context, uuid model.PlayerID) ([]model.LeagueRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := []model.LeagueRef{}
	for key := range s.memberships {
		if key.uuid != uuid {
			continue
		}
		ref := model.LeagueRef{LeagueID: key.leagueID}
		if league, ok := s.leagues[key.leagueID]; ok {
			ref.LeagueName = league.Name
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (s *Storage) CountMembers(ctx context.Context, leagueID model.LeagueID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for key := range s.memberships {
		if key.leagueID == leagueID {
			count++
		}
	}
	return count, nil
}

// Score operations

func (s *Storage) UpsertScore(ctx context.Context, score *model.Score) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := scoreKey{uuid: score.PlayerUUID, leagueID: score.LeagueID, date: score.Date}
	_, exists := s.scores[key]
	cp := *score
	s.scores[key] = &cp
	return !exists, nil
}

func (s *Storage) ScoresForDate(ctx context.Context, leagueID model.LeagueID, date model.Date) ([]model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []model.ScoreEntry{}
	for key, score := range s.scores {
		if key.leagueID == leagueID && key.date == date {
			entries = append(entries, model.ScoreEntry{
				PlayerUUID: key.uuid,
				Mistakes:   score.Mistakes,
			})
		}
	}
	return entries, nil
}

func (s *Storage) CountPlayedOnDate(ctx context.Context, leagueID model.LeagueID, date model.Date) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for key := range s.scores {
		if key.leagueID == leagueID && key.date == date {
			count++
		}
	}
	return count, nil
}

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *puzzle
	s.puzzles[puzzle.Date] = &cp
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, date model.Date) (*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[date]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	cp := *puzzle
	return &cp, nil
}
