package puzzle

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/daygrid/leagues/internal/dependencies/mocks"
	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage/memory"
	"github.com/daygrid/leagues/internal/testutil"
)

const validCSV = `2024-01-05,Fruit,apple,pear,plum,fig
2024-01-05,Metals,iron,gold,lead,tin
2024-01-05,Rivers,nile,amazon,volga,seine
2024-01-05,Gems,ruby,opal,jade,pearl
`

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// ImportCSV tests

func (s *ServiceSuite) TestImportCSVSucceeds() {
	count, err := s.service.ImportCSV(s.ctx, strings.NewReader(validCSV))
	s.Require().NoError(err)
	s.Equal(1, count)

	puzzle, err := s.storage.GetPuzzle(s.ctx, "2024-01-05")
	s.Require().NoError(err)
	s.Require().Len(puzzle.Categories, 4)
	s.Equal("Fruit", puzzle.Categories[0].Name)
	s.Equal([]string{"apple", "pear", "plum", "fig"}, puzzle.Categories[0].Words)
}

func (s *ServiceSuite) TestImportCSVMultipleDates() {
	csv := validCSV + strings.ReplaceAll(validCSV, "2024-01-05", "2024-01-06")

	count, err := s.service.ImportCSV(s.ctx, strings.NewReader(csv))
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *ServiceSuite) TestImportCSVTrimsFields() {
	csv := strings.ReplaceAll(validCSV, "apple", "  apple ")

	_, err := s.service.ImportCSV(s.ctx, strings.NewReader(csv))
	s.Require().NoError(err)

	puzzle, err := s.storage.GetPuzzle(s.ctx, "2024-01-05")
	s.Require().NoError(err)
	s.Equal("apple", puzzle.Categories[0].Words[0])
}

func (s *ServiceSuite) TestImportCSVFailsOnWrongCategoryCount() {
	csv := "2024-01-05,Fruit,apple,pear,plum,fig\n"

	_, err := s.service.ImportCSV(s.ctx, strings.NewReader(csv))
	s.Error(err)
}

func (s *ServiceSuite) TestImportCSVFailsOnWrongWordCount() {
	csv := strings.ReplaceAll(validCSV, ",fig", "")

	_, err := s.service.ImportCSV(s.ctx, strings.NewReader(csv))
	s.Error(err)
}

func (s *ServiceSuite) TestImportCSVFailsOnEmptyWord() {
	csv := strings.ReplaceAll(validCSV, "fig", " ")

	_, err := s.service.ImportCSV(s.ctx, strings.NewReader(csv))
	s.Error(err)
}

func (s *ServiceSuite) TestImportCSVFailsOnBadDate() {
	csv := strings.ReplaceAll(validCSV, "2024-01-05", "05/01/2024")

	_, err := s.service.ImportCSV(s.ctx, strings.NewReader(csv))
	s.ErrorIs(err, model.ErrInvalidDate)
}

func (s *ServiceSuite) TestImportCSVOverwritesExisting() {
	_, err := s.service.ImportCSV(s.ctx, strings.NewReader(validCSV))
	s.Require().NoError(err)

	updated := strings.ReplaceAll(validCSV, "Fruit", "Trees")
	_, err = s.service.ImportCSV(s.ctx, strings.NewReader(updated))
	s.Require().NoError(err)

	puzzle, err := s.storage.GetPuzzle(s.ctx, "2024-01-05")
	s.Require().NoError(err)
	s.Equal("Trees", puzzle.Categories[0].Name)
}

// GetForDate tests

func (s *ServiceSuite) TestGetForDateSucceeds() {
	_, err := s.service.ImportCSV(s.ctx, strings.NewReader(validCSV))
	s.Require().NoError(err)

	puzzle, err := s.service.GetForDate(s.ctx, "2024-01-05")
	s.Require().NoError(err)
	s.Equal(model.Date("2024-01-05"), puzzle.Date)
}

func (s *ServiceSuite) TestGetForDateFailsIfNotFound() {
	_, err := s.service.GetForDate(s.ctx, "2024-01-04")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *ServiceSuite) TestGetForDateFailsOnFutureDate() {
	_, err := s.service.GetForDate(s.ctx, "2024-01-06")
	s.ErrorIs(err, model.ErrFutureDate)
}

func (s *ServiceSuite) TestGetForDateFailsOnInvalidDate() {
	_, err := s.service.GetForDate(s.ctx, "not-a-date")
	s.ErrorIs(err, model.ErrInvalidDate)
}

func (s *ServiceSuite) TestGetForDateFailsOnMissingDate() {
	_, err := s.service.GetForDate(s.ctx, "")
	s.ErrorIs(err, model.ErrMissingDate)
}
