package model

import "time"

// PlayerID is the caller-supplied opaque identifier for a player.
// The service never generates these; identity is the caller's concern.
type PlayerID string

// Player represents someone who plays the daily puzzle
type Player struct {
	UUID        PlayerID  `json:"uuid"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Membership relates one player to one league. It is created once per
// (player, league) pair and never mutated afterwards.
type Membership struct {
	PlayerUUID PlayerID  `json:"player_uuid"`
	LeagueID   LeagueID  `json:"league_id"`
	JoinedAt   time.Time `json:"joined_at"`
}

// Member is one row of a league's member list
type Member struct {
	PlayerUUID  PlayerID `json:"player_uuid"`
	DisplayName string   `json:"display_name"`
}
