package testutil

import "guess_the_word/internal/domain"

// NewTestUser creates a user for tests
func NewTestUser(id uint, username, role string) *domain.User {
	return &domain.User{
		ID:       id,
		Username: username,
		Password: "$2a$10$test-hash",
		Role:     role,
	}
}

// NewTestSession creates an in-progress session for tests
func NewTestSession(id, userID uint, word, date string) *domain.GameSession {
	return &domain.GameSession{
		ID:           id,
		UserID:       userID,
		SecretWordID: 1,
		SecretWord:   domain.SecretWord{ID: 1, Word: word},
		Date:         date,
		Outcome:      "in_progress",
	}
}

// WithGuesses attaches prior guesses to a session
func WithGuesses(session *domain.GameSession, guesses ...domain.Guess) *domain.GameSession {
	session.Guesses = guesses
	return session
}
