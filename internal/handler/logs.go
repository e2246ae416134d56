package handler

import (
	"net/http"
	"strconv"
	"time"

	"aoa/internal/logger"
	"aoa/internal/model"
	"aoa/internal/service"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logs *service.LogService
}

func NewLogHandler(logs *service.LogService) *LogHandler {
	return &LogHandler{logs: logs}
}

func validDate(s string) bool {
	_, err := time.Parse(service.DateLayout, s)
	return err == nil
}

// logKey pulls the :user_id and :log_date params, writing a 400 and
// returning ok=false when either is malformed.
func logKey(c *gin.Context) (userID int, date string, ok bool) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, "", false
	}
	date = c.Param("log_date")
	if date != "" && !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return 0, "", false
	}
	return userID, date, true
}

func pageParams(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return skip, limit
}

// POST /dailylogs/:user_id — morning check-in.
func (h *LogHandler) CheckIn(c *gin.Context) {
	userID, _, ok := logKey(c)
	if !ok {
		return
	}
	var req model.LogCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.LogDate != "" && !validDate(req.LogDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log_date, want YYYY-MM-DD"})
		return
	}
	log, err := h.logs.CheckIn(c.Request.Context(), userID, req)
	if err != nil {
		logger.Warn("log.checkin failed", "uid", userID, "date", req.LogDate, "err", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	logger.Info("log.checkin", "uid", userID, "date", log.LogDate, "log_id", log.ID)
	c.JSON(http.StatusOK, log)
}

// PATCH /dailylogs/:user_id/:log_date/checkout — evening checkout, creates
// the log first when the user never checked in that day.
func (h *LogHandler) Checkout(c *gin.Context) {
	userID, date, ok := logKey(c)
	if !ok {
		return
	}
	var req model.LogCheckout
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "out_til1 is required"})
		return
	}
	log, err := h.logs.Checkout(c.Request.Context(), userID, date, req)
	if err != nil {
		logger.Error("log.checkout failed", "uid", userID, "date", date, "err", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	logger.Info("log.checkout", "uid", userID, "date", date, "log_id", log.ID)
	c.JSON(http.StatusOK, log)
}

// PATCH /dailylogs/:user_id/:log_date — partial edit, never creates.
func (h *LogHandler) Edit(c *gin.Context) {
	userID, date, ok := logKey(c)
	if !ok {
		return
	}
	var req model.LogUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	log, err := h.logs.Edit(c.Request.Context(), userID, date, req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	logger.Info("log.edit", "uid", userID, "date", date, "log_id", log.ID)
	c.JSON(http.StatusOK, log)
}

// GET /dailylogs/:user_id?skip=&limit= — all logs, newest date first.
// No logs at all reads as 404, not an empty list.
func (h *LogHandler) List(c *gin.Context) {
	userID, _, ok := logKey(c)
	if !ok {
		return
	}
	skip, limit := pageParams(c)
	logs, err := h.logs.ListByUser(c.Request.Context(), userID, skip, limit)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if len(logs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no logs found for this user"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GET /dailylogs/:user_id/:log_date — single log, JSON null when absent.
func (h *LogHandler) Get(c *gin.Context) {
	userID, date, ok := logKey(c)
	if !ok {
		return
	}
	log, err := h.logs.Get(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if log == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, log)
}
