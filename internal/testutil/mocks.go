package testutil

import (
	"guess_the_word/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Register(username, passwordHash string) (*domain.User, error) {
	args := m.Called(username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Start(userID uint, date string) (*domain.GameSession, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameSession), args.Error(1)
}

func (m *MockSessionRepository) Get(sessionID uint) (*domain.GameSession, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameSession), args.Error(1)
}

func (m *MockSessionRepository) RecordGuess(sessionID uint, guess *domain.Guess, won bool) (string, error) {
	args := m.Called(sessionID, guess, won)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) GamesStartedOn(userID uint, date string) (int, error) {
	args := m.Called(userID, date)
	return args.Int(0), args.Error(1)
}

// MockReportRepository is a mock for repository.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) DailyReport(date string) ([]domain.DailyReportRow, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReportRow), args.Error(1)
}

func (m *MockReportRepository) UserHistory(userID uint) ([]domain.SessionSummary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SessionSummary), args.Error(1)
}
