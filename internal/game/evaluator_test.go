package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		secret   string
		expected []Mark
	}{
		{
			name:     "exact match is all correct",
			guess:    "APPLE",
			secret:   "APPLE",
			expected: []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect},
		},
		{
			name:     "disjoint letters are all wrong",
			guess:    "MUDDY",
			secret:   "TRAIN",
			expected: []Mark{MarkWrong, MarkWrong, MarkWrong, MarkWrong, MarkWrong},
		},
		{
			name:     "every letter present but displaced",
			guess:    "PLEAS",
			secret:   "APPLE",
			expected: []Mark{MarkMisplaced, MarkMisplaced, MarkMisplaced, MarkMisplaced, MarkWrong},
		},
		{
			name:     "duplicate guess letters consume secret counts",
			guess:    "LLAMA",
			secret:   "ALARM",
			expected: []Mark{MarkWrong, MarkCorrect, MarkCorrect, MarkMisplaced, MarkMisplaced},
		},
		{
			name:     "second duplicate is wrong when secret has one occurrence",
			guess:    "ALLOY",
			secret:   "APPLE",
			expected: []Mark{MarkCorrect, MarkMisplaced, MarkWrong, MarkWrong, MarkWrong},
		},
		{
			name:     "correct position wins over misplaced duplicate",
			guess:    "EERIE",
			secret:   "BREAK",
			expected: []Mark{MarkMisplaced, MarkWrong, MarkMisplaced, MarkWrong, MarkWrong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marks, err := Evaluate(tt.guess, tt.secret)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, marks)
		})
	}
}

func TestEvaluate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
	}{
		{name: "guess too short", guess: "CAT", secret: "APPLE"},
		{name: "guess too long", guess: "APPLES", secret: "APPLE"},
		{name: "secret length mismatch", guess: "APPLE", secret: "PEAR"},
		{name: "lowercase guess", guess: "apple", secret: "APPLE"},
		{name: "non-alphabetic guess", guess: "AP3LE", secret: "APPLE"},
		{name: "empty guess", guess: "", secret: "APPLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marks, err := Evaluate(tt.guess, tt.secret)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, marks)
		})
	}
}

// Evaluation is a pure function: same inputs always produce the same marks.
func TestEvaluate_Deterministic(t *testing.T) {
	first, err := Evaluate("PLEAS", "APPLE")
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Evaluate("PLEAS", "APPLE")
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Count-based consumption: a letter is never credited (correct or misplaced)
// more times than it occurs in the secret.
func TestEvaluate_NeverOverCredits(t *testing.T) {
	words := []string{"APPLE", "ALARM", "LLAMA", "PLEAS", "EERIE", "BREAK", "TRAIN"}

	for _, secret := range words {
		for _, guess := range words {
			if len(secret) != WordLength || len(guess) != WordLength {
				continue
			}
			marks, err := Evaluate(guess, secret)
			assert.NoError(t, err)

			credited := map[byte]int{}
			available := map[byte]int{}
			for i := 0; i < WordLength; i++ {
				available[secret[i]]++
				if marks[i] != MarkWrong {
					credited[guess[i]]++
				}
			}
			for letter, n := range credited {
				assert.LessOrEqualf(t, n, available[letter],
					"guess %q vs secret %q over-credits %q", guess, secret, string(letter))
			}
		}
	}
}

func TestNormalizeGuess(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "lowercase is uppercased", input: "apple", expected: "APPLE"},
		{name: "surrounding whitespace trimmed", input: "  grape ", expected: "GRAPE"},
		{name: "mixed case", input: "TrAiN", expected: "TRAIN"},
		{name: "too short", input: "cat", expectError: true},
		{name: "too long", input: "apples", expectError: true},
		{name: "digits rejected", input: "ap3le", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeGuess(tt.input)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
