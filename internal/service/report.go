package service

import (
	"fmt"
	"time"

	"guess_the_word/internal/domain"
	"guess_the_word/internal/game"
	"guess_the_word/internal/repository"
)

// ReportService builds the admin views from persisted sessions. Reads only;
// totals are derived from the aggregation rows so repeated calls over the
// same stored state always return the same report.
type ReportService struct {
	users   repository.UserRepository
	reports repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(users repository.UserRepository, reports repository.ReportRepository) *ReportService {
	return &ReportService{users: users, reports: reports}
}

// DailyReport returns per-session rows for the date plus the unique-player,
// total-game and games-won counters for the admin dashboard.
func (s *ReportService) DailyReport(date string) (*domain.DailyReport, error) {
	if date == "" {
		date = Today()
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", game.ErrInvalidInput)
	}

	rows, err := s.reports.DailyReport(date)
	if err != nil {
		return nil, err
	}

	report := &domain.DailyReport{Date: date, Sessions: rows, TotalGames: len(rows)}
	seen := make(map[string]struct{})
	for _, row := range rows {
		if _, ok := seen[row.Username]; !ok {
			seen[row.Username] = struct{}{}
			report.UniqueUsers++
		}
		if row.Outcome == game.OutcomeWon {
			report.GamesWon++
		}
	}
	return report, nil
}

// UserHistory returns the named player's past sessions, newest first.
// Fails with game.ErrNotFound for unknown usernames.
func (s *ReportService) UserHistory(username string) ([]domain.SessionSummary, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.reports.UserHistory(user.ID)
}
