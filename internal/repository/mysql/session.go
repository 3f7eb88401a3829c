package mysql

import (
	"errors"

	"guess_the_word/internal/domain"
	"guess_the_word/internal/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Start creates a new in-progress session for the player. The daily quota row
// is locked FOR UPDATE for the whole transaction, so two concurrent starts
// serialize and the second one sees the incremented counter.
func (r *SessionRepo) Start(userID uint, date string) (*domain.GameSession, error) {
	var session domain.GameSession
	err := r.db.Transaction(func(tx *gorm.DB) error {
		quota, err := lockQuota(tx, userID, date)
		if err != nil {
			return err
		}
		if quota.WordsStarted >= game.MaxDailyGames {
			return game.ErrQuotaExceeded
		}

		word, err := drawWord(tx, userID)
		if err != nil {
			return err
		}

		session = domain.GameSession{
			UserID:       userID,
			SecretWordID: word.ID,
			Date:         date,
			Outcome:      game.OutcomeInProgress,
		}
		if err := tx.Omit(clause.Associations).Create(&session).Error; err != nil {
			return err
		}
		session.SecretWord = *word

		return tx.Model(quota).
			Update("words_started", gorm.Expr("words_started + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// lockQuota returns the (user, date) quota row locked FOR UPDATE, creating it
// when absent. Two concurrent first starts can both miss the row and race the
// insert; the loser of that race hits the unique index and retries the
// locking read, which blocks until the winner commits.
func lockQuota(tx *gorm.DB, userID uint, date string) (*domain.DailyQuota, error) {
	var quota domain.DailyQuota
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND date = ?", userID, date).
		First(&quota).Error
	if err == nil {
		return &quota, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	quota = domain.DailyQuota{UserID: userID, Date: date}
	err = tx.Create(&quota).Error
	if err == nil {
		return &quota, nil
	}
	if !isDuplicateKey(err) {
		return nil, err
	}
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND date = ?", userID, date).
		First(&quota).Error
	if err != nil {
		return nil, err
	}
	return &quota, nil
}

// drawWord picks a random secret word the player has not played before. When
// the player has been through the whole pool the filter matches nothing and
// the draw falls back to the full pool.
func drawWord(tx *gorm.DB, userID uint) (*domain.SecretWord, error) {
	var word domain.SecretWord
	err := tx.Raw(
		`SELECT id, word FROM secret_words
		 WHERE id NOT IN (SELECT secret_word_id FROM game_sessions WHERE user_id = ?)
		 ORDER BY RAND() LIMIT 1`, userID,
	).Scan(&word).Error
	if err != nil {
		return nil, err
	}
	if word.ID != 0 {
		return &word, nil
	}

	// Pool exhausted for this player; fall back to a plain random draw.
	err = tx.Raw(`SELECT id, word FROM secret_words ORDER BY RAND() LIMIT 1`).Scan(&word).Error
	if err != nil {
		return nil, err
	}
	if word.ID == 0 {
		return nil, game.ErrNoWords
	}
	return &word, nil
}

// Get loads a session with its secret word and guesses in guess order.
func (r *SessionRepo) Get(sessionID uint) (*domain.GameSession, error) {
	var session domain.GameSession
	err := r.db.
		Preload("SecretWord").
		Preload("Guesses", func(db *gorm.DB) *gorm.DB {
			return db.Order("guess_number ASC")
		}).
		First(&session, sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// RecordGuess appends a guess and moves the session to its next outcome. The
// session row is locked and the guess count recounted under that lock, so two
// simultaneous submissions cannot both pass the max-guess check. The outcome
// is derived from that locked count rather than from anything the caller read
// earlier; a racing fifth miss still lands the session on lost.
func (r *SessionRepo) RecordGuess(sessionID uint, guess *domain.Guess, won bool) (string, error) {
	var outcome string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var session domain.GameSession
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, sessionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.ErrNotFound
		}
		if err != nil {
			return err
		}
		if session.Outcome != game.OutcomeInProgress {
			return game.ErrInvalidState
		}

		var count int64
		if err := tx.Model(&domain.Guess{}).
			Where("session_id = ?", sessionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= game.MaxGuesses {
			return game.ErrInvalidState
		}

		guess.SessionID = sessionID
		guess.GuessNumber = int(count) + 1
		if err := tx.Create(guess).Error; err != nil {
			return err
		}

		outcome = game.NextOutcome(won, guess.GuessNumber)
		if outcome != session.Outcome {
			return tx.Model(&session).Update("outcome", outcome).Error
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// GamesStartedOn returns the quota usage for the player on the given date.
func (r *SessionRepo) GamesStartedOn(userID uint, date string) (int, error) {
	var quota domain.DailyQuota
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&quota).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return quota.WordsStarted, nil
}
