package service

import (
	"fmt"
	"time"

	"guess_the_word/internal/domain"
	"guess_the_word/internal/game"
	"guess_the_word/internal/repository"

	"github.com/sirupsen/logrus"
)

// GameService drives the round-of-play rules: session starts against the
// daily quota and guess submissions through the evaluator and the state
// machine. All storage effects go through the session repository, which
// serializes the quota and guess-count checks.
type GameService struct {
	sessions repository.SessionRepository
}

// NewGameService creates a new game service
func NewGameService(sessions repository.SessionRepository) *GameService {
	return &GameService{sessions: sessions}
}

// Today returns the current calendar day in the storage format.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// StartSession starts a new word for the player on the given date (today when
// empty). Fails with game.ErrQuotaExceeded once the player has started the
// daily maximum of distinct words.
func (s *GameService) StartSession(userID uint, date string) (*domain.GameSession, error) {
	if date == "" {
		date = Today()
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", game.ErrInvalidInput)
	}

	session, err := s.sessions.Start(userID, date)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"session_id": session.ID,
		"date":       session.Date,
	}).Info("Game session started")
	return session, nil
}

// SubmitGuess evaluates one guess for the session and advances its state.
// Returns the per-letter marks and the session outcome after the guess.
// Fails with game.ErrInvalidInput on malformed text, game.ErrInvalidState on
// terminal sessions and game.ErrNotFound when the session does not exist or
// belongs to another player.
func (s *GameService) SubmitGuess(sessionID, userID uint, text string) ([]game.Mark, string, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, "", err
	}
	// Players can only play their own sessions; do not reveal others' ids.
	if session.UserID != userID {
		return nil, "", game.ErrNotFound
	}
	if game.IsTerminal(session.Outcome) {
		return nil, session.Outcome, game.ErrInvalidState
	}

	guess, err := game.NormalizeGuess(text)
	if err != nil {
		return nil, session.Outcome, err
	}

	marks, err := game.Evaluate(guess, session.SecretWord.Word)
	if err != nil {
		return nil, session.Outcome, err
	}

	// The repository derives the outcome from the guess count it observes
	// under the session row lock; the history loaded above may be stale by
	// the time the guess lands.
	record := domain.Guess{Word: guess, Feedback: game.EncodeMarks(marks)}
	outcome, err := s.sessions.RecordGuess(sessionID, &record, game.AllCorrect(marks))
	if err != nil {
		return nil, session.Outcome, err
	}

	if game.IsTerminal(outcome) {
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"session_id": sessionID,
			"outcome":    outcome,
			"guesses":    record.GuessNumber,
		}).Info("Game session finished")
	}
	return marks, outcome, nil
}

// GetSession returns the player's own session with its guess history.
func (s *GameService) GetSession(sessionID, userID uint) (*domain.GameSession, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, game.ErrNotFound
	}
	return session, nil
}

// GamesStartedToday reports quota usage for the player's dashboard.
func (s *GameService) GamesStartedToday(userID uint) (int, error) {
	return s.sessions.GamesStartedOn(userID, Today())
}
