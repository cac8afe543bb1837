package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-task-api/internal/constants"
	"github.com/yukikurage/project-task-api/internal/dto"
	apierrors "github.com/yukikurage/project-task-api/internal/errors"
	"github.com/yukikurage/project-task-api/internal/testutil"
)

func TestAuthHandler_Signup(t *testing.T) {
	env := newTestEnv(t, nil)

	payload := map[string]string{
		"email":      "New.User@example.com",
		"first_name": "New",
		"last_name":  "User",
		"password":   "supersecret",
	}
	w := env.do(t, http.MethodPost, "/api/auth/signup", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	response := decode[dto.UserDTO](t, w)
	assert.Equal(t, "new.user@example.com", response.Email)
	assert.Equal(t, "New User", response.Name)
	assert.NotContains(t, w.Body.String(), "password")

	w = env.do(t, http.MethodPost, "/api/auth/signup", payload, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_SignupRejectsBadInput(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"bad email", map[string]string{"email": "nope", "first_name": "A", "last_name": "B", "password": "supersecret"}},
		{"missing name", map[string]string{"email": "a@example.com", "first_name": "A", "password": "supersecret"}},
		{"short password", map[string]string{"email": "a@example.com", "first_name": "A", "last_name": "B", "password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/auth/signup", tt.payload, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := newTestEnv(t, nil)
	user := testutil.CreateUser(t, env.db, "existing@example.com", "Ex", "Isting")

	cookies := env.login(t, "existing@example.com")

	w := env.do(t, http.MethodGet, "/api/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, decode[dto.UserDTO](t, w).ID)

	w = env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apierrors.ErrCodeInvalidCredentials, decode[apierrors.APIError](t, w).Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	env := newTestEnv(t, nil)
	testutil.CreateUser(t, env.db, "existing@example.com", "Ex", "Isting")
	cookies := env.login(t, "existing@example.com")

	w := env.do(t, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/auth/me", nil, w.Result().Cookies())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := newTestEnv(t, nil)
	user := testutil.CreateUser(t, env.db, "current@example.com", "Cur", "Rent")
	handler := NewAuthHandler(env.services.Auth)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, user.ID)

	handler.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cur Rent", decode[dto.UserDTO](t, w).Name)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	handler.GetCurrentUser(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, path := range []string{"/api/auth/me", "/api/projects", "/api/tasks"} {
		w := env.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := env.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
