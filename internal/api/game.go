package api

import (
	"context"
	"net/http"
	"strconv"

	"guess_the_word/internal/game"
	"guess_the_word/internal/repository"
	"guess_the_word/internal/service"
	"guess_the_word/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// GuessRequest carries one guess attempt
type GuessRequest struct {
	Guess string `json:"guess" binding:"required"`
}

// LetterFeedback pairs a guessed letter with its mark for rendering.
type LetterFeedback struct {
	Letter string    `json:"letter"`
	Mark   game.Mark `json:"mark"`
}

// StartGameHandler starts a new session for the authenticated player.
func StartGameHandler(games *service.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		session, err := games.StartSession(userID.(uint), "")
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Failed to start game session")
			c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"session_id":  session.ID,
			"date":        session.Date,
			"outcome":     session.Outcome,
			"max_guesses": game.MaxGuesses,
			"word_length": game.WordLength,
		})
	}
}

// SubmitGuessHandler evaluates one guess against the session's secret word.
// A finished game changes the admin reports, so the affected cache entries
// are dropped; the next report request repopulates them.
func SubmitGuessHandler(games *service.GameService, users repository.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
			return
		}
		var req GuessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		marks, outcome, err := games.SubmitGuess(sessionID, userID.(uint), req.Guess)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
			return
		}

		resp := gin.H{
			"feedback": zipFeedback(req.Guess, marks),
			"outcome":  outcome,
		}
		// Reveal the word once the session is over.
		if game.IsTerminal(outcome) {
			if session, err := games.GetSession(sessionID, userID.(uint)); err == nil {
				resp["word"] = session.SecretWord.Word
				resp["guesses_used"] = len(session.Guesses)
				invalidateReportCaches(users, rdb, userID.(uint), session.Date)
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetSessionHandler returns the session state and guess history for the
// board. The secret word is only included for terminal sessions.
func GetSessionHandler(games *service.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
			return
		}
		session, err := games.GetSession(sessionID, userID.(uint))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
			return
		}

		history := make([]gin.H, len(session.Guesses))
		for i, g := range session.Guesses {
			history[i] = gin.H{
				"guess_number": g.GuessNumber,
				"feedback":     zipFeedback(g.Word, game.DecodeMarks(g.Feedback)),
			}
		}
		resp := gin.H{
			"session_id":        session.ID,
			"date":              session.Date,
			"outcome":           session.Outcome,
			"guesses":           history,
			"guesses_remaining": game.MaxGuesses - len(session.Guesses),
		}
		if game.IsTerminal(session.Outcome) {
			resp["word"] = session.SecretWord.Word
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetQuotaHandler reports the player's daily quota usage for the dashboard.
func GetQuotaHandler(games *service.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		played, err := games.GamesStartedToday(userID.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quota"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"date":        service.Today(),
			"games_used":  played,
			"games_limit": game.MaxDailyGames,
		})
	}
}

// invalidateReportCaches drops the report cache entries a finished game
// affects. Failures are ignored; stale entries expire with the TTL anyway.
func invalidateReportCaches(users repository.UserRepository, rdb *redis.Client, userID uint, date string) {
	ctx := context.Background()
	_ = utils.DeleteCache(ctx, rdb, dailyReportCacheKey(date))
	if user, err := users.FindByID(userID); err == nil {
		_ = utils.DeleteCache(ctx, rdb, userHistoryCacheKey(user.Username))
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

func zipFeedback(guess string, marks []game.Mark) []LetterFeedback {
	normalized, err := game.NormalizeGuess(guess)
	if err != nil || len(marks) != len(normalized) {
		return nil
	}
	feedback := make([]LetterFeedback, len(marks))
	for i, m := range marks {
		feedback[i] = LetterFeedback{Letter: string(normalized[i]), Mark: m}
	}
	return feedback
}
