package redis

import (
	"fmt"

	"github.com/daygrid/leagues/internal/model"
)

// Key prefix for all league data
const keyPrefix = "dgleague"

// Key generation functions for each entity type

// leagueKey returns the Redis key for a League
func leagueKey(id model.LeagueID) string {
	return fmt.Sprintf("%s:league:%s", keyPrefix, id)
}

// playerKey returns the Redis key for a Player
func playerKey(uuid model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, uuid)
}

// membershipKey returns the Redis key for a Membership row
func membershipKey(uuid model.PlayerID, leagueID model.LeagueID) string {
	return fmt.Sprintf("%s:membership:%s:%s", keyPrefix, leagueID, uuid)
}

// membersIndexKey returns the Redis key for the SET of a league's member uuids
func membersIndexKey(leagueID model.LeagueID) string {
	return fmt.Sprintf("%s:idx:members:%s", keyPrefix, leagueID)
}

// leaguesIndexKey returns the Redis key for the SET of a player's league ids
func leaguesIndexKey(uuid model.PlayerID) string {
	return fmt.Sprintf("%s:idx:leagues:%s", keyPrefix, uuid)
}

// scoreKey returns the Redis key for a Score row
func scoreKey(uuid model.PlayerID, leagueID model.LeagueID, date model.Date) string {
	return fmt.Sprintf("%s:score:%s:%s:%s", keyPrefix, leagueID, date, uuid)
}

// scoresIndexKey returns the Redis key for the SET of uuids who scored in a league on a date
func scoresIndexKey(leagueID model.LeagueID, date model.Date) string {
	return fmt.Sprintf("%s:idx:scores:%s:%s", keyPrefix, leagueID, date)
}

// puzzleKey returns the Redis key for a date's puzzle content
func puzzleKey(date model.Date) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, date)
}
