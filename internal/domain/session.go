package domain

// GameSession Model. One player's attempt sequence against one secret word on
// one calendar day. Terminal sessions (won/lost) are never mutated again.
type GameSession struct {
	ID           uint       `gorm:"primaryKey"`                         // Primary key
	UserID       uint       `gorm:"not null;index:idx_session_user_date"` // Foreign key to User
	SecretWordID uint       `gorm:"not null"`                           // Foreign key to SecretWord
	SecretWord   SecretWord // Preloaded secret word
	Date         string     `gorm:"size:10;not null;index:idx_session_user_date"` // Calendar day, YYYY-MM-DD
	Outcome      string     `gorm:"size:16;not null;default:in_progress"`         // in_progress, won or lost
	Guesses      []Guess    `gorm:"foreignKey:SessionID"`               // Ordered guess history
	CreatedAt    int64      `gorm:"autoCreateTime:milli"`               // Timestamp of creation in milliseconds
}

// Guess Model. Append-only; feedback is persisted at evaluation time so
// reports never re-score.
type Guess struct {
	ID          uint   `gorm:"primaryKey"`           // Primary key
	SessionID   uint   `gorm:"not null;index"`       // Foreign key to GameSession
	GuessNumber int    `gorm:"not null"`             // 1-based position in the session
	Word        string `gorm:"size:5;not null"`      // Guessed word, uppercase
	Feedback    string `gorm:"size:5;not null"`      // Encoded marks, e.g. "CMWWW"
	CreatedAt   int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
