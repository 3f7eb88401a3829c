package domain

// DailyQuota Model. Counts distinct word starts per (user, date); the row is
// locked and incremented inside the session-start transaction so two
// concurrent starts cannot both pass the cap check.
type DailyQuota struct {
	ID           uint   `gorm:"primaryKey"`                                    // Primary key
	UserID       uint   `gorm:"not null;uniqueIndex:idx_quota_user_date"`      // Foreign key to User
	Date         string `gorm:"size:10;not null;uniqueIndex:idx_quota_user_date"` // Calendar day, YYYY-MM-DD
	WordsStarted int    `gorm:"not null;default:0"`                            // Distinct words started this day
}
