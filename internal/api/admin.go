package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"guess_the_word/internal/domain"
	"guess_the_word/internal/repository"
	"guess_the_word/internal/service"
	"guess_the_word/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const reportCacheTTL = 60 * time.Second

// Report cache keys, shared with the invalidation on game completion.
func dailyReportCacheKey(date string) string {
	return "admin:report:daily:" + date
}

func userHistoryCacheKey(username string) string {
	return "admin:report:user:" + username
}

// DailyReportHandler returns the admin's daily summary: per-session rows plus
// unique-player, total-game and win counters. Responses are cached briefly
// since reports only change as games finish.
func DailyReportHandler(reports *service.ReportService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.DefaultQuery("date", service.Today())
		ctx := context.Background()
		cacheKey := dailyReportCacheKey(date)

		var cached domain.DailyReport
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"report": cached, "cached": true})
			return
		}

		report, err := reports.DailyReport(date)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, report, reportCacheTTL)
		c.JSON(http.StatusOK, gin.H{"report": report, "cached": false})
	}
}

// UserHistoryHandler returns one player's past sessions, newest first.
func UserHistoryHandler(reports *service.ReportService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username")
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}
		ctx := context.Background()
		cacheKey := userHistoryCacheKey(username)

		var cached []domain.SessionSummary
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"username": username, "history": cached, "cached": true})
			return
		}

		history, err := reports.UserHistory(username)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, history, reportCacheTTL)
		c.JSON(http.StatusOK, gin.H{"username": username, "history": history, "cached": false})
	}
}

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ListUsersHandler returns a paginated user list for the admin's report
// picker.
func ListUsersHandler(users repository.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1
		pageSize := 20
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v
			}
		}
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v
			}
		}
		ctx := context.Background()
		cacheKey := "admin:users:page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)

		var cached struct {
			Users      []UserAdminResponse `json:"users"`
			Page       int                 `json:"page"`
			PageSize   int                 `json:"page_size"`
			Total      int64               `json:"total"`
			TotalPages int                 `json:"total_pages"`
		}
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,
				"page":        cached.Page,
				"page_size":   cached.PageSize,
				"total":       cached.Total,
				"total_pages": cached.TotalPages,
				"cached":      true,
			})
			return
		}

		offset := (page - 1) * pageSize
		list, total, err := users.List(pageSize, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		resp := make([]UserAdminResponse, len(list))
		for i, u := range list {
			resp[i] = UserAdminResponse{ID: u.ID, Username: u.Username, Role: u.Role}
		}
		totalPages := (int(total) + pageSize - 1) / pageSize
		respData := gin.H{
			"users":       resp,
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages,
			"cached":      false,
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, reportCacheTTL)
		c.JSON(http.StatusOK, respData)
	}
}
