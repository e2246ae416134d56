package handler

import (
	"errors"
	"net/http"
	"strconv"

	"aoa/internal/logger"
	"aoa/internal/model"
	"aoa/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// statusFor maps the service error taxonomy onto HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req model.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		logger.Warn("user.create failed", "email", req.Email, "err", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	logger.Info("user.create", "uid", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, user)
}

// POST /users/create-with-log
func (h *UserHandler) CreateWithLog(c *gin.Context) {
	var req model.UserCreateWithLog
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.LogData.LogDate != "" && !validDate(req.LogData.LogDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log_date"})
		return
	}
	user, err := h.users.CreateWithLog(c.Request.Context(), req)
	if err != nil {
		logger.Warn("user.create_with_log failed", "email", req.UserData.Email, "err", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	logger.Info("user.create_with_log", "uid", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, user)
}

// GET /users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /users?skip=&limit=
func (h *UserHandler) List(c *gin.Context) {
	skip, limit := pageParams(c)
	users, err := h.users.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}
