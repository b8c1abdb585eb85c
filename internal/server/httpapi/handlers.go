package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/dmitrijs2005/moodlog/internal/server/services"
	"github.com/gin-gonic/gin"
)

const (
	msgFeedbackFailed     = common.FeedbackFailedMessage
	msgAchievementsFailed = common.AchievementsFailedMessage
	msgInvalidBody        = "invalid request body"
)

// StatusFor maps a service error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeResult[T any](c *gin.Context, r services.Result[T]) {
	c.JSON(StatusFor(r.Err()), r)
}

func parseID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (h *Handler) CreateEntry(c *gin.Context) {
	var req models.NewEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		writeResult(c, services.Fail[*models.Entry](common.NewValidationError(msgInvalidBody)))
		return
	}
	writeResult(c, h.entries.Create(c.Request.Context(), req))
}

func (h *Handler) ListEntries(c *gin.Context) {
	writeResult(c, h.entries.List(c.Request.Context(), models.EntryType(c.Query("type"))))
}

func (h *Handler) UpdateEntry(c *gin.Context) {
	var req models.EntryPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		writeResult(c, services.Fail[*models.Entry](common.NewValidationError(msgInvalidBody)))
		return
	}
	writeResult(c, h.entries.Update(c.Request.Context(), parseID(c), req))
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	writeResult(c, h.entries.Delete(c.Request.Context(), parseID(c)))
}

func (h *Handler) DeleteAllEntries(c *gin.Context) {
	writeResult(c, h.entries.DeleteAll(c.Request.Context(), models.EntryType(c.Query("type"))))
}

func (h *Handler) GetOverview(c *gin.Context) {
	writeResult(c, h.overview.Get(c.Request.Context()))
}

func (h *Handler) generationFailed(c *gin.Context, msg string, err error) {
	h.logger.Error(c.Request.Context(), msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": err.Error()})
}

func (h *Handler) GetActivityFeedback(c *gin.Context) {
	fb, err := h.feedback.ActivityFeedback(c.Request.Context())
	if err != nil {
		h.generationFailed(c, msgFeedbackFailed, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": fb})
}

func (h *Handler) GetThoughtsFeedback(c *gin.Context) {
	fb, err := h.feedback.ThoughtsFeedback(c.Request.Context())
	if err != nil {
		h.generationFailed(c, msgFeedbackFailed, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": fb})
}

func (h *Handler) GetDailyAchievements(c *gin.Context) {
	a, err := h.feedback.DailyAchievements(c.Request.Context())
	if err != nil {
		h.generationFailed(c, msgAchievementsFailed, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
