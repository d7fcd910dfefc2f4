package model

import "time"

// Score is a player's mistake count for one league on one calendar date.
// It is unique on (player, league, date); re-submission on the same date
// overwrites Mistakes and RecordedAt, last write wins.
type Score struct {
	PlayerUUID PlayerID  `json:"player_uuid"`
	LeagueID   LeagueID  `json:"league_id"`
	Date       Date      `json:"date"`
	Mistakes   int       `json:"mistakes"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ScoreEntry is one row of a league's scores for a single date
type ScoreEntry struct {
	PlayerUUID PlayerID `json:"player_uuid"`
	Mistakes   int      `json:"mistakes"`
}

// LeaderboardEntry is one member's row in a computed leaderboard.
// Mistakes and Rank are nil for members who have not played on the date.
type LeaderboardEntry struct {
	PlayerUUID  PlayerID `json:"player_uuid"`
	DisplayName string   `json:"display_name"`
	Mistakes    *int     `json:"mistakes"`
	Rank        *int     `json:"rank"`
}

// Leaderboard is the ranked standings of a league for one date
type Leaderboard struct {
	League  League             `json:"league"`
	Date    Date               `json:"date"`
	Entries []LeaderboardEntry `json:"entries"`
}
