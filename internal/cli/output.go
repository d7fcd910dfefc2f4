package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case League:
		o.printLeague(v)
	case Player:
		o.printPlayer(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case SubmitScoreResult:
		o.printSubmitScoreResult(v)
	case PlayerLeagues:
		o.printPlayerLeagues(v)
	case Puzzle:
		o.printPuzzle(v)
	case ImportResult:
		o.printImportResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// League response type (matches API)
type League struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// Player response type
type Player struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"display_name"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	PlayerUUID  string `json:"player_uuid"`
	DisplayName string `json:"display_name"`
	Mistakes    *int   `json:"mistakes"`
	Rank        *int   `json:"rank"`
}

// Leaderboard response type
type Leaderboard struct {
	League  League             `json:"league"`
	Date    string             `json:"date"`
	Entries []LeaderboardEntry `json:"entries"`
}

// SubmitScoreResult response type
type SubmitScoreResult struct {
	Recorded int `json:"recorded"`
}

// LeagueSummary response type
type LeagueSummary struct {
	LeagueID     string `json:"league_id"`
	LeagueName   string `json:"league_name"`
	TotalMembers int    `json:"total_members"`
	PlayedToday  int    `json:"played_today"`
}

// PlayerLeagues response type
type PlayerLeagues struct {
	Leagues []LeagueSummary `json:"leagues"`
}

// PuzzleCategory response type
type PuzzleCategory struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Puzzle response type
type Puzzle struct {
	Date       string           `json:"date"`
	Categories []PuzzleCategory `json:"categories"`
}

// ImportResult response type
type ImportResult struct {
	Imported int `json:"imported"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLeague(l League) {
	fmt.Printf("League: %s (%s)\n", l.Name, l.ID)
	fmt.Printf("Created: %s\n", l.CreatedAt)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.UUID)
}

func (o *Output) printLeaderboard(b Leaderboard) {
	fmt.Printf("League: %s (%s)\n", b.League.Name, b.League.ID)
	fmt.Printf("Date: %s\n", b.Date)
	fmt.Printf("Entries (%d):\n", len(b.Entries))
	for _, e := range b.Entries {
		if e.Rank != nil && e.Mistakes != nil {
			fmt.Printf("  %d. %s - %d mistakes\n", *e.Rank, e.DisplayName, *e.Mistakes)
		} else {
			fmt.Printf("  -. %s - not played\n", e.DisplayName)
		}
	}
}

func (o *Output) printSubmitScoreResult(r SubmitScoreResult) {
	fmt.Printf("Score recorded in %d league(s)\n", r.Recorded)
}

func (o *Output) printPlayerLeagues(p PlayerLeagues) {
	fmt.Printf("Leagues (%d):\n", len(p.Leagues))
	for _, l := range p.Leagues {
		fmt.Printf("  - %s (%s): %d member(s), %d played today\n",
			l.LeagueName, l.LeagueID, l.TotalMembers, l.PlayedToday)
	}
}

func (o *Output) printPuzzle(p Puzzle) {
	fmt.Printf("Puzzle: %s\n", p.Date)
	for _, c := range p.Categories {
		fmt.Printf("  %s:\n", c.Name)
		for _, w := range c.Words {
			fmt.Printf("    - %s\n", w)
		}
	}
}

func (o *Output) printImportResult(r ImportResult) {
	fmt.Printf("Imported %d puzzle(s)\n", r.Imported)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
