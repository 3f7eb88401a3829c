package game

import "strings"

const (
	WordLength    = 5 // Letters per secret word and per guess
	MaxGuesses    = 5 // Guesses allowed per session
	MaxDailyGames = 3 // Distinct words a player may start per day
)

// Mark is the per-letter result of comparing a guess to the secret word.
type Mark string

const (
	MarkCorrect   Mark = "correct"   // Right letter, right position
	MarkMisplaced Mark = "misplaced" // Right letter, wrong position
	MarkWrong     Mark = "wrong"     // Letter not in the word (or already consumed)
)

// Evaluate scores a guess against the secret word using the two-pass
// algorithm. The first pass marks exact matches and counts the remaining
// secret letters; the second pass resolves misplaced/wrong from those counts,
// so duplicate letters in the guess are never credited more times than they
// occur in the secret.
//
// Both inputs must already be normalized to uppercase A-Z; Evaluate is a pure
// function of its inputs.
func Evaluate(guess, secret string) ([]Mark, error) {
	if len(guess) != WordLength || len(secret) != WordLength {
		return nil, ErrInvalidInput
	}
	if !isUpperAlpha(guess) || !isUpperAlpha(secret) {
		return nil, ErrInvalidInput
	}

	marks := make([]Mark, WordLength)

	// Remaining letter counts for the non-correct secret positions.
	var counts [26]int
	for i := 0; i < WordLength; i++ {
		if guess[i] == secret[i] {
			marks[i] = MarkCorrect
		} else {
			counts[secret[i]-'A']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		if j := guess[i] - 'A'; counts[j] > 0 {
			marks[i] = MarkMisplaced
			counts[j]--
		} else {
			marks[i] = MarkWrong
		}
	}
	return marks, nil
}

// NormalizeGuess trims and uppercases raw guess input and validates it
// against the fixed length and A-Z alphabet.
func NormalizeGuess(text string) (string, error) {
	guess := strings.ToUpper(strings.TrimSpace(text))
	if len(guess) != WordLength || !isUpperAlpha(guess) {
		return "", ErrInvalidInput
	}
	return guess, nil
}

// AllCorrect reports whether every mark is MarkCorrect.
func AllCorrect(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkCorrect {
			return false
		}
	}
	return len(marks) == WordLength
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
