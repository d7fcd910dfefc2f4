package puzzle

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/daygrid/leagues/internal/dependencies/clock"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage"
)

// Service provides daily puzzle content lookup and import
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new puzzle Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// GetForDate returns the puzzle content for a date. Unlike leaderboard
// reads, this path validates the date form and refuses dates after the
// caller-current day, so tomorrow's puzzle never leaks early.
func (s *Service) GetForDate(ctx context.Context, date model.Date) (*model.Puzzle, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}
	if date.After(model.DateOf(s.clock.Now())) {
		return nil, model.ErrFutureDate
	}
	return s.storage.GetPuzzle(ctx, date)
}

// ImportCSV reads puzzle content rows of the form
//
//	date,category,word1,word2,word3,word4
//
// groups them by date, and saves one puzzle per date. Each date must end
// up with exactly 4 categories of 4 words; only these counts are checked.
// Returns the number of puzzles imported.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2 + model.WordsPerCategory

	byDate := make(map[model.Date][]model.PuzzleCategory)
	var order []model.Date

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("malformed puzzle row: %w", err)
		}

		date := model.Date(strings.TrimSpace(record[0]))
		if err := date.Validate(); err != nil {
			return 0, err
		}

		category := model.PuzzleCategory{Name: strings.TrimSpace(record[1])}
		for _, word := range record[2:] {
			word = strings.TrimSpace(word)
			if word == "" {
				return 0, fmt.Errorf("puzzle for %s: category %q must have %d words",
					date, category.Name, model.WordsPerCategory)
			}
			category.Words = append(category.Words, word)
		}

		if _, seen := byDate[date]; !seen {
			order = append(order, date)
		}
		byDate[date] = append(byDate[date], category)
	}

	for _, date := range order {
		categories := byDate[date]
		if len(categories) != model.CategoriesPerPuzzle {
			return 0, fmt.Errorf("puzzle for %s: expected %d categories, got %d",
				date, model.CategoriesPerPuzzle, len(categories))
		}
	}

	for _, date := range order {
		if err := s.storage.SavePuzzle(ctx, &model.Puzzle{
			Date:       date,
			Categories: byDate[date],
		}); err != nil {
			return 0, err
		}
	}

	s.logger.Info("puzzles imported", slog.Int("count", len(order)))
	return len(order), nil
}

// ImportFile imports puzzle content from a CSV file on disk
func (s *Service) ImportFile(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return s.ImportCSV(ctx, file)
}

// Interface for dependency injection
type ServiceInterface interface {
	GetForDate(ctx context.Context, date model.Date) (*model.Puzzle, error)
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
	ImportFile(ctx context.Context, path string) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
