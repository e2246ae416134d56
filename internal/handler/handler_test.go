package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"aoa/internal/model"
	"aoa/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.DailyLog{}))

	return NewRouter(
		NewUserHandler(service.NewUserService(db)),
		NewLogHandler(service.NewLogService(db)),
		[]string{"http://localhost:3000"},
		"",
	)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeLog(t *testing.T, w *httptest.ResponseRecorder) model.DailyLog {
	t.Helper()
	var log model.DailyLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	return log
}

func TestRootGreeting(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Hello AOA"}`, w.Body.String())
}

func TestCreateAndGetUser(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/users", gin.H{"email": "ada@example.com", "name": "Ada"})
	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.NotZero(t, user.ID)
	assert.Equal(t, "America/New_York", user.Timezone)

	w = do(t, r, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/users", gin.H{"email": "ada@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/users", gin.H{"email": "ada@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUserRequiresEmail(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/users", gin.H{"name": "nobody"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsers(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	do(t, r, http.MethodPost, "/users", gin.H{"email": "a@example.com"})
	do(t, r, http.MethodPost, "/users", gin.H{"email": "b@example.com"})

	w = do(t, r, http.MethodGet, "/users?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

func TestCreateUserWithLog(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/users/create-with-log", gin.H{
		"user_data": gin.H{"email": "ada@example.com"},
		"log_data":  gin.H{"log_date": "2026-08-30", "in_attention": "signup"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	w = do(t, r, http.MethodGet, "/dailylogs/1/2026-08-30", nil)
	require.Equal(t, http.StatusOK, w.Code)
	log := decodeLog(t, w)
	assert.Equal(t, user.ID, log.UserID)
	require.NotNil(t, log.InAttention)
	assert.Equal(t, "signup", *log.InAttention)
}
