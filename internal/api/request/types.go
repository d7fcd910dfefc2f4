package request

// CreateLeagueRequest is the request body for creating a league.
// When PlayerUUID and DisplayName are provided, the creator joins the
// new league immediately.
type CreateLeagueRequest struct {
	Name        string `json:"name"`
	PlayerUUID  string `json:"player_uuid,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// JoinLeagueRequest is the request body for joining a league
type JoinLeagueRequest struct {
	PlayerUUID  string `json:"player_uuid"`
	DisplayName string `json:"display_name"`
}

// SubmitScoreRequest is the request body for submitting a daily score.
// Mistakes is a pointer so a missing field is distinguishable from zero.
type SubmitScoreRequest struct {
	PlayerUUID string `json:"player_uuid"`
	Date       string `json:"date"`
	Mistakes   *int   `json:"mistakes"`
}
