package response

import (
	"time"

	"github.com/daygrid/leagues/internal/model"
)

// League represents a league in API responses
type League struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LeagueFromModel converts a model.League to a response League
func LeagueFromModel(l *model.League) League {
	return League{
		ID:        string(l.ID),
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}

// Player represents a player in API responses
type Player struct {
	UUID        string    `json:"uuid"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		UUID:        string(p.UUID),
		DisplayName: p.DisplayName,
		CreatedAt:   p.CreatedAt,
	}
}

// LeaderboardEntry is one member's row in a leaderboard response.
// Mistakes and Rank are null for members who have not played.
type LeaderboardEntry struct {
	PlayerUUID  string `json:"player_uuid"`
	DisplayName string `json:"display_name"`
	Mistakes    *int   `json:"mistakes"`
	Rank        *int   `json:"rank"`
}

// Leaderboard is the ranked standings response
type Leaderboard struct {
	League  League             `json:"league"`
	Date    string             `json:"date"`
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromModel converts a model.Leaderboard
func LeaderboardFromModel(lb *model.Leaderboard) Leaderboard {
	entries := make([]LeaderboardEntry, len(lb.Entries))
	for i, e := range lb.Entries {
		entries[i] = LeaderboardEntry{
			PlayerUUID:  string(e.PlayerUUID),
			DisplayName: e.DisplayName,
			Mistakes:    e.Mistakes,
			Rank:        e.Rank,
		}
	}
	return Leaderboard{
		League:  LeagueFromModel(&lb.League),
		Date:    string(lb.Date),
		Entries: entries,
	}
}

// SubmitScore reports how many leagues recorded a submission
type SubmitScore struct {
	Recorded int `json:"recorded"`
}

// LeagueSummary is one league in a player's summary response
type LeagueSummary struct {
	LeagueID     string `json:"league_id"`
	LeagueName   string `json:"league_name"`
	TotalMembers int    `json:"total_members"`
	PlayedToday  int    `json:"played_today"`
}

// PlayerLeagues is a player's league summary response
type PlayerLeagues struct {
	Leagues []LeagueSummary `json:"leagues"`
}

// PlayerLeaguesFromModel converts a summary list
func PlayerLeaguesFromModel(summaries []model.LeagueSummary) PlayerLeagues {
	leagues := make([]LeagueSummary, len(summaries))
	for i, s := range summaries {
		leagues[i] = LeagueSummary{
			LeagueID:     string(s.LeagueID),
			LeagueName:   s.LeagueName,
			TotalMembers: s.TotalMembers,
			PlayedToday:  s.PlayedToday,
		}
	}
	return PlayerLeagues{Leagues: leagues}
}

// PuzzleCategory is one group of words in a puzzle response
type PuzzleCategory struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Puzzle is a daily puzzle content response
type Puzzle struct {
	Date       string           `json:"date"`
	Categories []PuzzleCategory `json:"categories"`
}

// PuzzleFromModel converts a model.Puzzle
func PuzzleFromModel(p *model.Puzzle) Puzzle {
	categories := make([]PuzzleCategory, len(p.Categories))
	for i, c := range p.Categories {
		categories[i] = PuzzleCategory{Name: c.Name, Words: c.Words}
	}
	return Puzzle{
		Date:       string(p.Date),
		Categories: categories,
	}
}

// ImportResult reports how many puzzles a CSV import created
type ImportResult struct {
	Imported int `json:"imported"`
}
