package model

import "time"

// LeagueID is the short opaque identifier for a league.
// IDs are generated server-side and never reused.
type LeagueID string

// LeagueIDLength is the length of generated league IDs
const LeagueIDLength = 8

// League is a named group of players sharing a leaderboard
type League struct {
	ID        LeagueID  `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LeagueRef is a lightweight league reference as seen from a player's
// membership list
type LeagueRef struct {
	LeagueID   LeagueID `json:"league_id"`
	LeagueName string   `json:"league_name"`
}

// LeagueSummary describes one league from a player's point of view
type LeagueSummary struct {
	LeagueID     LeagueID `json:"league_id"`
	LeagueName   string   `json:"league_name"`
	TotalMembers int      `json:"total_members"`
	PlayedToday  int      `json:"played_today"`
}
