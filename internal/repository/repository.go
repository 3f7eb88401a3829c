package repository

import (
	"errors"

	"guess_the_word/internal/domain"
)

// ErrDuplicateUsername is returned by Register when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository defines user data operations
type UserRepository interface {
	// Register creates the user, promoting the very first registered user to
	// admin. The count-and-create runs in one transaction with a locking
	// count, so concurrent registrations serialize. Returns
	// ErrDuplicateUsername when the username is taken.
	Register(username, passwordHash string) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	FindByID(id uint) (*domain.User, error)
	List(limit, offset int) ([]domain.User, int64, error)
}

// SessionRepository defines game session data operations. Start and
// RecordGuess are atomic: quota and guess-count checks are serialized with
// row locks so concurrent requests cannot overshoot the caps.
type SessionRepository interface {
	// Start checks the daily quota, draws a secret word the player has not
	// played where possible, creates the session and increments the quota.
	// Returns game.ErrQuotaExceeded when the cap is reached.
	Start(userID uint, date string) (*domain.GameSession, error)
	// Get loads a session with its secret word and ordered guess history.
	// Returns game.ErrNotFound for unknown ids.
	Get(sessionID uint) (*domain.GameSession, error)
	// RecordGuess appends a guess and applies the outcome transition, which
	// is derived from the guess count observed under the session row lock so
	// concurrent submissions cannot leave a full session in progress. The
	// in-progress and guess-count guards are also re-checked under that lock;
	// returns game.ErrInvalidState if the session is terminal or full.
	RecordGuess(sessionID uint, guess *domain.Guess, won bool) (string, error)
	// GamesStartedOn returns the player's quota usage for the date.
	GamesStartedOn(userID uint, date string) (int, error)
}

// ReportRepository defines the read-only aggregation queries used by admins.
type ReportRepository interface {
	DailyReport(date string) ([]domain.DailyReportRow, error)
	UserHistory(userID uint) ([]domain.SessionSummary, error)
}
