package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-task-api/internal/constants"
	"github.com/yukikurage/project-task-api/internal/repository"
	"github.com/yukikurage/project-task-api/internal/services"
	"github.com/yukikurage/project-task-api/internal/testutil"
	"github.com/yukikurage/project-task-api/internal/validation"
	"gorm.io/gorm"
)

type stubSuggester struct {
	tasks []services.SuggestedTask
}

func (s *stubSuggester) SuggestTasks(ctx context.Context, projectName, text string) ([]services.SuggestedTask, error) {
	return s.tasks, nil
}

type testEnv struct {
	db       *gorm.DB
	router   *gin.Engine
	services Services
	now      time.Time
}

// newTestEnv wires the full router against an in-memory database. A nil
// suggester disables task suggestions.
func newTestEnv(t *testing.T, suggester services.TaskSuggester) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	taskService := services.NewTaskService(
		taskRepo,
		projectRepo,
		assignmentRepo,
		services.NewTaskRelations(projectRepo, userRepo, assignmentRepo),
		validation.NewTaskValidator(validation.NewNaturalDateParser(clock)),
		suggester,
	)
	taskService.SetClock(clock)

	svc := Services{
		Auth:         services.NewAuthService(userRepo),
		Projects:     services.NewProjectService(projectRepo, assignmentRepo, userRepo),
		Tasks:        taskService,
		UpcomingDays: constants.DefaultUpcomingDays,
	}

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	RegisterRoutes(r, svc)

	return &testEnv{
		db:       db,
		router:   r,
		services: svc,
		now:      now,
	}
}

// do sends a JSON request through the router.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login signs in a fixture user and returns the session cookies.
func (e *testEnv) login(t *testing.T, email string) []*http.Cookie {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": testutil.Password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
