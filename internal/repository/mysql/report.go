package mysql

import (
	"guess_the_word/internal/domain"

	"gorm.io/gorm"
)

// ReportRepo implements repository.ReportRepository. Both queries aggregate
// persisted sessions only and carry explicit ORDER BY clauses, so the same
// stored state always yields the same report.
type ReportRepo struct {
	db *gorm.DB
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// DailyReport returns one row per session played on the date, with the
// player's name, the word, the outcome and how many guesses were recorded.
func (r *ReportRepo) DailyReport(date string) ([]domain.DailyReportRow, error) {
	query := `
		SELECT u.username, w.word, s.outcome, COUNT(g.id) AS guess_count
		FROM game_sessions s
		JOIN users u ON u.id = s.user_id
		JOIN secret_words w ON w.id = s.secret_word_id
		LEFT JOIN guesses g ON g.session_id = s.id
		WHERE s.date = ?
		GROUP BY s.id, u.username, w.word, s.outcome
		ORDER BY u.username, s.id
	`
	rows, err := r.db.Raw(query, date).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []domain.DailyReportRow
	for rows.Next() {
		var row domain.DailyReportRow
		if err := rows.Scan(&row.Username, &row.Word, &row.Outcome, &row.GuessCount); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// UserHistory returns every session the player has started, newest first.
func (r *ReportRepo) UserHistory(userID uint) ([]domain.SessionSummary, error) {
	query := `
		SELECT s.id, s.date, w.word, s.outcome, COUNT(g.id) AS guess_count
		FROM game_sessions s
		JOIN secret_words w ON w.id = s.secret_word_id
		LEFT JOIN guesses g ON g.session_id = s.id
		WHERE s.user_id = ?
		GROUP BY s.id, s.date, w.word, s.outcome
		ORDER BY s.id DESC
	`
	rows, err := r.db.Raw(query, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.SessionSummary
	for rows.Next() {
		var row domain.SessionSummary
		if err := rows.Scan(&row.SessionID, &row.Date, &row.Word, &row.Outcome, &row.GuessCount); err != nil {
			return nil, err
		}
		history = append(history, row)
	}
	return history, rows.Err()
}
