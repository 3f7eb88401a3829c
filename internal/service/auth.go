package service

import (
	"errors"
	"fmt"
	"regexp"

	"guess_the_word/internal/domain"
	"guess_the_word/internal/game"
	"guess_the_word/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Credential rules: usernames need at least five letters, passwords need an
// alphabetic character, a digit and one of $ % * @.
var (
	usernameLetters = regexp.MustCompile(`[a-zA-Z]{5,}`)
	passwordAlpha   = regexp.MustCompile(`[a-zA-Z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSpecial = regexp.MustCompile(`[$%*@]`)
)

// ErrInvalidCredentials is returned on login failure without distinguishing
// unknown user from wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles registration and login
type AuthService struct {
	users repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates credentials, hashes the password and creates the user.
// The repository promotes the first registered user to admin atomically.
func (s *AuthService) Register(username, password string) (*domain.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.Register(username, string(hash))
}

// Login verifies the password against the stored hash and returns the user.
func (s *AuthService) Login(username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, game.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func validateUsername(username string) error {
	if len(username) < 5 || !usernameLetters.MatchString(username) {
		return fmt.Errorf("%w: username must be at least 5 characters and contain 5 letters", game.ErrInvalidInput)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 5 {
		return fmt.Errorf("%w: password must be at least 5 characters long", game.ErrInvalidInput)
	}
	if !passwordAlpha.MatchString(password) {
		return fmt.Errorf("%w: password must contain at least one alphabet character", game.ErrInvalidInput)
	}
	if !passwordDigit.MatchString(password) {
		return fmt.Errorf("%w: password must contain at least one numeric digit", game.ErrInvalidInput)
	}
	if !passwordSpecial.MatchString(password) {
		return fmt.Errorf("%w: password must contain one of $, %%, * or @", game.ErrInvalidInput)
	}
	return nil
}
