package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOutcome(t *testing.T) {
	tests := []struct {
		name       string
		won        bool
		guessCount int
		expected   string
	}{
		{name: "win on first guess", won: true, guessCount: 1, expected: OutcomeWon},
		{name: "win on last guess", won: true, guessCount: MaxGuesses, expected: OutcomeWon},
		{name: "miss mid-session stays in progress", won: false, guessCount: 3, expected: OutcomeInProgress},
		{name: "miss on last guess loses", won: false, guessCount: MaxGuesses, expected: OutcomeLost},
		{name: "first miss stays in progress", won: false, guessCount: 1, expected: OutcomeInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextOutcome(tt.won, tt.guessCount))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(OutcomeWon))
	assert.True(t, IsTerminal(OutcomeLost))
	assert.False(t, IsTerminal(OutcomeInProgress))
}

func TestEncodeDecodeMarks(t *testing.T) {
	marks := []Mark{MarkCorrect, MarkMisplaced, MarkWrong, MarkMisplaced, MarkCorrect}

	encoded := EncodeMarks(marks)

	assert.Equal(t, "CMWMC", encoded)
	assert.Equal(t, marks, DecodeMarks(encoded))
}
