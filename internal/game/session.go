package game

// Session outcomes. A session starts in_progress and moves to exactly one of
// won or lost; both are terminal.
const (
	OutcomeInProgress = "in_progress"
	OutcomeWon        = "won"
	OutcomeLost       = "lost"
)

// NextOutcome applies the state transition after a guess. won reports whether
// the guess matched the secret word exactly; guessCount is the total number of
// recorded guesses including this one. Callers that persist guesses must pass
// the count they observe under lock, not a count read earlier.
func NextOutcome(won bool, guessCount int) string {
	if won {
		return OutcomeWon
	}
	if guessCount >= MaxGuesses {
		return OutcomeLost
	}
	return OutcomeInProgress
}

// IsTerminal reports whether an outcome permits no further guesses.
func IsTerminal(outcome string) bool {
	return outcome == OutcomeWon || outcome == OutcomeLost
}

// EncodeMarks packs marks into the compact per-letter form stored with each
// guess ("C", "M", "W").
func EncodeMarks(marks []Mark) string {
	b := make([]byte, len(marks))
	for i, m := range marks {
		switch m {
		case MarkCorrect:
			b[i] = 'C'
		case MarkMisplaced:
			b[i] = 'M'
		default:
			b[i] = 'W'
		}
	}
	return string(b)
}

// DecodeMarks is the inverse of EncodeMarks. Unknown bytes decode as wrong.
func DecodeMarks(encoded string) []Mark {
	marks := make([]Mark, len(encoded))
	for i := 0; i < len(encoded); i++ {
		switch encoded[i] {
		case 'C':
			marks[i] = MarkCorrect
		case 'M':
			marks[i] = MarkMisplaced
		default:
			marks[i] = MarkWrong
		}
	}
	return marks
}
