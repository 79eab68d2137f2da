package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanao-dev/bingo-party-backend/config"
	"github.com/nanao-dev/bingo-party-backend/game"
	"github.com/nanao-dev/bingo-party-backend/store"
)

func newTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *game.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := game.NewService(store.NewMemory())

	r := gin.New()
	r.POST("/api/auth/login", Login(cfg))
	r.POST("/api/auth/logout", Logout())
	admin := r.Group("/api/game", AdminAuth(cfg.JWTSecret))
	admin.GET("/rooms", ListRooms(service))
	return r, service
}

func testConfig() *config.Config {
	return &config.Config{
		AdminPassword: "hunter2",
		JWTSecret:     "test-secret",
	}
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := doJSON(r, http.MethodPost, "/api/auth/login", `{"password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", `{"password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestLogin_PasswordNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.AdminPassword = ""
	r, _ := newTestRouter(t, cfg)

	w := doJSON(r, http.MethodPost, "/api/auth/login", `{"password":"anything"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListRooms_RequiresToken(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := doJSON(r, http.MethodGet, "/api/game/rooms", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/game/rooms", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListRooms(t *testing.T) {
	cfg := testConfig()
	r, service := newTestRouter(t, cfg)

	code, err := service.CreateRoom(context.Background(), "host", "Test Room")
	require.NoError(t, err)
	_, err = service.JoinRoom(context.Background(), code, "c1", "Player 1", "")
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/auth/login", `{"password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(r, http.MethodGet, "/api/game/rooms", "", login["token"])
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []game.RoomSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, code, summaries[0].RoomID)
	assert.Equal(t, "Test Room", summaries[0].Name)
	assert.Equal(t, 1, summaries[0].PlayerCount)
}

func TestLogout(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := doJSON(r, http.MethodPost, "/api/auth/logout", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
