package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	catalogrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/catalog"
	chatrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/chat"
	progressrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/progress"
	"github.com/Digital-Coach-Women/APP-API/internal/data/repos/testutil"
	userrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/user"
	"github.com/Digital-Coach-Women/APP-API/internal/http/handlers"
	"github.com/Digital-Coach-Women/APP-API/internal/http/middleware"
	"github.com/Digital-Coach-Women/APP-API/internal/server"
	"github.com/Digital-Coach-Women/APP-API/internal/services"
)

type nullSink struct{}

func (nullSink) Append(ctx context.Context, chatID uuid.UUID, senderID uuid.UUID, senderName, message string) (string, error) {
	return "test-receipt", nil
}

func newTestRouter(t *testing.T, gdb *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testutil.Logger(t)

	auth := services.NewAuthService(
		gdb, log,
		userrepo.NewUserRepo(gdb, log),
		userrepo.NewUserTokenRepo(gdb, log),
		"handlers-test-secret", time.Hour, 24*time.Hour,
	)
	speciality := services.NewSpecialityService(gdb, log, catalogrepo.NewSpecialityRepo(gdb, log))
	level := services.NewLevelService(gdb, log, catalogrepo.NewSpecialityLevelRepo(gdb, log))
	course := services.NewCourseService(gdb, log, catalogrepo.NewCourseRepo(gdb, log))
	enrollment := services.NewEnrollmentService(
		gdb, log,
		userrepo.NewUserRepo(gdb, log),
		catalogrepo.NewSpecialityLevelRepo(gdb, log),
		progressrepo.NewUserSpecialityLevelRepo(gdb, log),
		progressrepo.NewUserCourseRepo(gdb, log),
		progressrepo.NewUserCourseLessonRepo(gdb, log),
	)
	progress := services.NewProgressService(
		gdb, log,
		progressrepo.NewUserSpecialityLevelRepo(gdb, log),
		progressrepo.NewUserCourseRepo(gdb, log),
		progressrepo.NewUserCourseLessonRepo(gdb, log),
		services.ProgressOptions{},
	)
	chat := services.NewChatService(
		gdb, log,
		userrepo.NewUserRepo(gdb, log),
		chatrepo.NewChatRepo(gdb, log),
		chatrepo.NewChatMessageRepo(gdb, log),
		nullSink{},
	)

	return server.NewRouter(server.RouterConfig{
		Log:               log,
		ServiceName:       "app-api-test",
		AuthMiddleware:    middleware.NewAuthMiddleware(log, auth),
		HealthHandler:     handlers.NewHealthHandler(),
		AuthHandler:       handlers.NewAuthHandler(auth),
		SpecialityHandler: handlers.NewSpecialityHandler(log, speciality),
		LevelHandler:      handlers.NewLevelHandler(log, level, enrollment),
		CourseHandler:     handlers.NewCourseHandler(log, course, progress),
		LessonHandler:     handlers.NewLessonHandler(log, progress),
		ChatHandler:       handlers.NewChatHandler(log, chat),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/register", "", map[string]any{
		"email":     email,
		"password":  "supersecret",
		"names":     "Ana",
		"last_name": "Prueba",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/login", "", map[string]any{
		"email":    email,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := decodeBody(t, rec)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter(t, testutil.DB(t))
	rec := doJSON(t, router, http.MethodGet, "/healthcheck", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(t, testutil.DB(t))
	rec := doJSON(t, router, http.MethodGet, "/api/v1/specialities", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEnrollmentAndCompletionFlow(t *testing.T) {
	router := newTestRouter(t, testutil.DB(t))
	token := registerAndLogin(t, router, fmt.Sprintf("flow-%s@test.local", uuid.New()))

	// Build the catalog through the API.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/specialities", token, map[string]any{"name": "coaching"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	specID := decodeBody(t, rec)["speciality"].(map[string]any)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/specialities/levels", token, map[string]any{
		"name": "avanzado", "order": 2, "is_basic": false, "speciality_id": specID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	levelID := decodeBody(t, rec)["speciality_level"].(map[string]any)["id"].(string)

	courseIDs := make([]string, 0, 2)
	for i := 1; i <= 2; i++ {
		rec = doJSON(t, router, http.MethodPost, "/api/v1/specialities/levels/courses", token, map[string]any{
			"title": fmt.Sprintf("curso-%d", i), "order": i, "speciality_level_id": levelID,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		courseIDs = append(courseIDs, decodeBody(t, rec)["course"].(map[string]any)["id"].(string))
	}

	// Enroll, then finish both courses.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/specialities/levels/"+levelID+"/matriculated", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/specialities/levels/"+levelID+"/matriculated", token, nil)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPut, "/api/v1/specialities/levels/courses/"+courseIDs[0]+"/time-video", token,
		map[string]any{"time": 120, "is_finish": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/specialities/levels/matriculated", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	items := decodeBody(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	require.False(t, items[0].(map[string]any)["is_finish"].(bool))

	rec = doJSON(t, router, http.MethodPut, "/api/v1/specialities/levels/courses/"+courseIDs[1]+"/time-video", token,
		map[string]any{"time": 90, "is_finish": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/specialities/levels/matriculated", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	items = decodeBody(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	require.True(t, items[0].(map[string]any)["is_finish"].(bool))
}

func TestTimeVideoRejectsNegativeTime(t *testing.T) {
	router := newTestRouter(t, testutil.DB(t))
	token := registerAndLogin(t, router, fmt.Sprintf("neg-%s@test.local", uuid.New()))

	rec := doJSON(t, router, http.MethodPut, "/api/v1/specialities/levels/courses/"+uuid.NewString()+"/time-video", token,
		map[string]any{"time": -5, "is_finish": false})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestChatSendAndContacts(t *testing.T) {
	router := newTestRouter(t, testutil.DB(t))
	aliceToken := registerAndLogin(t, router, fmt.Sprintf("h-alice-%s@test.local", uuid.New()))

	rec := doJSON(t, router, http.MethodGet, "/api/v1/user", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/register", "", map[string]any{
		"email": fmt.Sprintf("h-carol-%s@test.local", uuid.New()), "password": "supersecret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	carolID := decodeBody(t, rec)["user"].(map[string]any)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/chats/contacts/"+carolID+"/chats", aliceToken,
		map[string]any{"message": "hola"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	msg := decodeBody(t, rec)["chat_message"].(map[string]any)
	require.Equal(t, "hola", msg["message"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/chats/contacts", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, decodeBody(t, rec)["items"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/chats/contacts/"+carolID+"/chats", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody(t, rec)["items"].([]any)
	require.Len(t, items, 1)
}
