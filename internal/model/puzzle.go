package model

// Puzzle content dimensions. Imports are checked against these counts
// only; deeper content validation is out of scope.
const (
	CategoriesPerPuzzle = 4
	WordsPerCategory    = 4
)

// PuzzleCategory is one group of related words in a daily puzzle
type PuzzleCategory struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Puzzle is the content of the daily puzzle for one date
type Puzzle struct {
	Date       Date             `json:"date"`
	Categories []PuzzleCategory `json:"categories"`
}
