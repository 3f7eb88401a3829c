package domain

// DailyReportRow is one session played on the report date.
type DailyReportRow struct {
	Username   string `json:"username"`
	Word       string `json:"word"`
	Outcome    string `json:"outcome"`
	GuessCount int    `json:"guess_count"`
}

// DailyReport summarizes all play on a single calendar day.
type DailyReport struct {
	Date        string           `json:"date"`
	UniqueUsers int              `json:"unique_users"`
	TotalGames  int              `json:"total_games"`
	GamesWon    int              `json:"games_won"`
	Sessions    []DailyReportRow `json:"sessions"`
}

// SessionSummary is one past session in a user's history, newest first.
type SessionSummary struct {
	SessionID  uint   `json:"session_id"`
	Date       string `json:"date"`
	Word       string `json:"word"`
	Outcome    string `json:"outcome"`
	GuessCount int    `json:"guess_count"`
}
