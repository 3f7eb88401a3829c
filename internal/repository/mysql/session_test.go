package mysql

import (
	"testing"

	"guess_the_word/internal/domain"
	"guess_the_word/internal/game"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepo_Start(t *testing.T) {
	gdb, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewSessionRepo(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `daily_quotas`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "words_started"}).
			AddRow(1, 7, "2026-08-30", 0))
	mock.ExpectQuery("SELECT id, word FROM secret_words").
		WillReturnRows(sqlmock.NewRows([]string{"id", "word"}).AddRow(3, "GRAPE"))
	mock.ExpectExec("INSERT INTO `game_sessions`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE `daily_quotas` SET `words_started`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	session, err := repo.Start(7, "2026-08-30")

	assert.NoError(t, err)
	assert.Equal(t, uint(9), session.ID)
	assert.Equal(t, "GRAPE", session.SecretWord.Word)
	assert.Equal(t, game.OutcomeInProgress, session.Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Start_QuotaExceeded(t *testing.T) {
	gdb, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewSessionRepo(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `daily_quotas`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "words_started"}).
			AddRow(1, 7, "2026-08-30", game.MaxDailyGames))
	mock.ExpectRollback()

	session, err := repo.Start(7, "2026-08-30")

	assert.ErrorIs(t, err, game.ErrQuotaExceeded)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Two concurrent first starts for the same (user, date) can both miss the
// quota row and race the insert. The loser hits the unique index and must
// retry the locking read against the winner's row instead of surfacing the
// raw duplicate-key error.
func TestSessionRepo_Start_QuotaInsertRaceRetriesLockingRead(t *testing.T) {
	gdb, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewSessionRepo(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `daily_quotas`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "words_started"}))
	mock.ExpectExec("INSERT INTO `daily_quotas`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry '7-2026-08-30' for key 'idx_quota_user_date'"})
	mock.ExpectQuery("SELECT (.+) FROM `daily_quotas`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "words_started"}).
			AddRow(1, 7, "2026-08-30", game.MaxDailyGames))
	mock.ExpectRollback()

	session, err := repo.Start(7, "2026-08-30")

	assert.ErrorIs(t, err, game.ErrQuotaExceeded)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The outcome is derived from the guess count observed under the session row
// lock. A submission racing another one may arrive as the fifth miss even if
// its caller loaded fewer guesses; the session must still land on lost.
func TestSessionRepo_RecordGuess_FifthMissLoses(t *testing.T) {
	gdb, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewSessionRepo(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `game_sessions`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "secret_word_id", "date", "outcome", "created_at"}).
			AddRow(1, 7, 3, "2026-08-30", game.OutcomeInProgress, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `guesses`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectExec("INSERT INTO `guesses`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("UPDATE `game_sessions` SET `outcome`").
		WithArgs(game.OutcomeLost, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	guess := domain.Guess{Word: "WRONG", Feedback: "WWWWW"}
	outcome, err := repo.RecordGuess(1, &guess, false)

	assert.NoError(t, err)
	assert.Equal(t, game.OutcomeLost, outcome)
	assert.Equal(t, 5, guess.GuessNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_RecordGuess_Win(t *testing.T) {
	gdb, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewSessionRepo(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `game_sessions`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "secret_word_id", "date", "outcome", "created_at"}).
			AddRow(1, 7, 3, "2026-08-30", game.OutcomeInProgress, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `guesses`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec("INSERT INTO `guesses`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("UPDATE `game_sessions` SET `outcome`").
		WithArgs(game.OutcomeWon, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	guess := domain.Guess{Word: "APPLE", Feedback: "CCCCC"}
	outcome, err := repo.RecordGuess(1, &guess, true)

	assert.NoError(t, err)
	assert.Equal(t, game.OutcomeWon, outcome)
	assert.Equal(t, 3, guess.GuessNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_RecordGuess_TerminalSessionRejected(t *testing.T) {
	gdb, mock, closeDB := newMockDB(t)
	defer closeDB()

	repo := NewSessionRepo(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `game_sessions`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "secret_word_id", "date", "outcome", "created_at"}).
			AddRow(1, 7, 3, "2026-08-30", game.OutcomeWon, 0))
	mock.ExpectRollback()

	guess := domain.Guess{Word: "WRONG", Feedback: "WWWWW"}
	outcome, err := repo.RecordGuess(1, &guess, false)

	assert.ErrorIs(t, err, game.ErrInvalidState)
	assert.Empty(t, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}
