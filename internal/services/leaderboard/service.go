package leaderboard

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/daygrid/leagues/internal/dependencies/clock"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage"
)

// Service computes ranked standings for a league on a date
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	lang    language.Tag
}

// New creates a new leaderboard Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		lang:    language.Und,
	}
}

// Compute produces the leaderboard for a league on a date. An empty date
// resolves to the caller-current day; any other non-empty value is used
// as-is. The league must exist.
//
// Order: players with a score first, ascending by mistakes; members
// without a score follow, ordered by display name. Ranks are dense
// competition ranks over the played prefix only (tied mistakes share the
// rank of the group's first position); unplayed members have a nil rank.
func (s *Service) Compute(ctx context.Context, leagueID model.LeagueID, date model.Date) (*model.Leaderboard, error) {
	if date == "" {
		date = model.DateOf(s.clock.Now())
	}

	league, err := s.storage.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	members, err := s.storage.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	scores, err := s.storage.ScoresForDate(ctx, leagueID, date)
	if err != nil {
		return nil, err
	}

	mistakesByPlayer := make(map[model.PlayerID]int, len(scores))
	for _, score := range scores {
		mistakesByPlayer[score.PlayerUUID] = score.Mistakes
	}

	entries := make([]model.LeaderboardEntry, 0, len(members))
	for _, member := range members {
		entry := model.LeaderboardEntry{
			PlayerUUID:  member.PlayerUUID,
			DisplayName: member.DisplayName,
		}
		if mistakes, ok := mistakesByPlayer[member.PlayerUUID]; ok {
			m := mistakes
			entry.Mistakes = &m
		}
		entries = append(entries, entry)
	}

	// Collators are not safe for concurrent use, so build one per call
	names := collate.New(s.lang)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.Mistakes != nil && b.Mistakes == nil:
			return true
		case a.Mistakes == nil && b.Mistakes != nil:
			return false
		case a.Mistakes != nil && b.Mistakes != nil:
			if *a.Mistakes != *b.Mistakes {
				return *a.Mistakes < *b.Mistakes
			}
			return names.CompareString(a.DisplayName, b.DisplayName) < 0
		default:
			return names.CompareString(a.DisplayName, b.DisplayName) < 0
		}
	})

	assignRanks(entries)

	return &model.Leaderboard{
		League:  *league,
		Date:    date,
		Entries: entries,
	}, nil
}

// assignRanks walks the sorted entries and assigns dense competition
// ranks to the played prefix. A tied group shares the rank of its first
// member's 1-based position among played entries.
func assignRanks(entries []model.LeaderboardEntry) {
	playedCount := 0
	currentRank := 0
	lastMistakes := -1

	for i := range entries {
		if entries[i].Mistakes == nil {
			continue
		}
		playedCount++
		if playedCount == 1 || *entries[i].Mistakes != lastMistakes {
			currentRank = playedCount
		}
		rank := currentRank
		entries[i].Rank = &rank
		lastMistakes = *entries[i].Mistakes
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Compute(ctx context.Context, leagueID model.LeagueID, date model.Date) (*model.Leaderboard, error)
}

var _ ServiceInterface = (*Service)(nil)
