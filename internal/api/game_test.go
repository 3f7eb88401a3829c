package api

import (
	"net/http"
	"testing"

	"guess_the_word/internal/domain"
	"guess_the_word/internal/game"
	"guess_the_word/internal/service"
	"guess_the_word/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// unreachableRedis returns a client whose every command fails fast; cache
// invalidation errors are ignored, so handlers must still succeed.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func TestSubmitGuessHandler_WinRevealsWordAndInvalidatesReportCaches(t *testing.T) {
	gin.SetMode(gin.TestMode)

	session := testutil.NewTestSession(1, 7, "APPLE", "2026-08-30")

	sessions := new(testutil.MockSessionRepository)
	sessions.On("Get", uint(1)).Return(session, nil)
	sessions.On("RecordGuess", uint(1), mock.AnythingOfType("*domain.Guess"), true).
		Return(game.OutcomeWon, nil)

	// The user lookup only happens on completion, to target the player's
	// history cache entry.
	users := new(testutil.MockUserRepository)
	users.On("FindByID", uint(7)).
		Return(testutil.NewTestUser(7, "alice", domain.RolePlayer), nil)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", uint(7)) })
	r.POST("/game/:id/guess", SubmitGuessHandler(service.NewGameService(sessions), users, unreachableRedis()))

	w := postJSON(t, r, "/game/1/guess", gin.H{"guess": "APPLE"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "APPLE")
	assert.Contains(t, w.Body.String(), game.OutcomeWon)
	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestSubmitGuessHandler_InProgressLeavesCachesAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	session := testutil.NewTestSession(1, 7, "APPLE", "2026-08-30")

	sessions := new(testutil.MockSessionRepository)
	sessions.On("Get", uint(1)).Return(session, nil)
	sessions.On("RecordGuess", uint(1), mock.AnythingOfType("*domain.Guess"), false).
		Return(game.OutcomeInProgress, nil)

	users := new(testutil.MockUserRepository)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", uint(7)) })
	r.POST("/game/:id/guess", SubmitGuessHandler(service.NewGameService(sessions), users, unreachableRedis()))

	w := postJSON(t, r, "/game/1/guess", gin.H{"guess": "GRAPE"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "APPLE")
	users.AssertNotCalled(t, "FindByID", mock.Anything)
	sessions.AssertExpectations(t)
}
