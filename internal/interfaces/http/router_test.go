package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharris560/ace-attendance/internal/infrastructure/config"
	sharedconfig "github.com/pharris560/ace-attendance/internal/shared/config"
	"github.com/pharris560/ace-attendance/internal/shared/constants"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:   sharedconfig.ServerConfig{Mode: "test"},
		Database: sharedconfig.DatabaseConfig{Driver: "memory"},
		Auth: sharedconfig.AuthConfig{
			Password: sharedconfig.PasswordConfig{Iterations: 1000},
			Session:  sharedconfig.SessionConfig{ExpDays: 1, SweepInterval: 60},
			Cookie:   sharedconfig.CookieConfig{Path: "/", SameSite: "Lax"},
		},
		RateLimit: sharedconfig.RateLimitConfig{LoginPerMinute: 1000, LoginPerHour: 10000},
	}

	r := NewRouter(cfg, nil, logger.NewLogger())
	r.SetupRoutes()
	return r
}

func doJSON(t *testing.T, r *Router, method, path string, body any, cookie *http.Cookie, apiKey string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if apiKey != "" {
		req.Header.Set(constants.HeaderAPIKey, apiKey)
	}

	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.CookieSessionToken {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func registerAndLogin(t *testing.T, r *Router, username string) *http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": username,
		"password": "correct horse battery",
	}, nil, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": username,
		"password": "correct horse battery",
	}, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/classes", nil, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Not authenticated", env.Error.Message)
}

func TestLoginSetsCookieAndMeReturnsUser(t *testing.T) {
	r := newTestRouter(t)
	cookie := registerAndLogin(t, r, "ms.rivera")

	w := doJSON(t, r, http.MethodGet, "/api/v1/auth/me", nil, cookie, "")
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		Username string `json:"username"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "ms.rivera", me.Username)
}

func TestLoginFailureIsUniform(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "known.user")

	unknownUser := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "nobody",
		"password": "whatever else",
	}, nil, "")
	wrongPassword := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "known.user",
		"password": "not the password",
	}, nil, "")

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.JSONEq(t, unknownUser.Body.String(), wrongPassword.Body.String())
}

func TestLogoutRevokesSession(t *testing.T) {
	r := newTestRouter(t)
	cookie := registerAndLogin(t, r, "teacher.a")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", nil, cookie, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", nil, cookie, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClassLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	cookie := registerAndLogin(t, r, "teacher.b")

	w := doJSON(t, r, http.MethodPost, "/api/v1/classes", gin.H{
		"name":       "Algebra II",
		"instructor": "R. Feynman",
		"capacity":   30,
	}, cookie, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/classes/"+created.ID, gin.H{
		"name": "Algebra III",
	}, cookie, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/classes/"+created.ID, nil, cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Algebra III", created.Name)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/classes/"+created.ID, nil, cookie, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/classes/"+created.ID, nil, cookie, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateClassRequiresCapacity(t *testing.T) {
	r := newTestRouter(t)
	cookie := registerAndLogin(t, r, "teacher.e")

	w := doJSON(t, r, http.MethodPost, "/api/v1/classes", gin.H{"name": "Unbounded"}, cookie, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/classes", gin.H{"name": "Unbounded", "capacity": 0}, cookie, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestOwnershipHiddenAsNotFound(t *testing.T) {
	r := newTestRouter(t)
	owner := registerAndLogin(t, r, "owner.user")
	other := registerAndLogin(t, r, "other.user")

	w := doJSON(t, r, http.MethodPost, "/api/v1/classes", gin.H{"name": "Private Seminar", "capacity": 12}, owner, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w = doJSON(t, r, http.MethodPatch, "/api/v1/classes/"+created.ID, gin.H{"name": "Hijacked"}, other, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttendanceFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	cookie := registerAndLogin(t, r, "teacher.c")

	w := doJSON(t, r, http.MethodPost, "/api/v1/classes", gin.H{"name": "Chemistry", "capacity": 25}, cookie, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var cls struct {
		ID string `json:"id"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &cls))

	w = doJSON(t, r, http.MethodPost, "/api/v1/students", gin.H{
		"studentNumber": "S-1001",
		"firstName":     "Ada",
		"lastName":      "Lovelace",
	}, cookie, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var st struct {
		ID string `json:"id"`
	}
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &st))

	w = doJSON(t, r, http.MethodPost, "/api/v1/classes/"+cls.ID+"/enrollments", gin.H{
		"studentId": st.ID,
	}, cookie, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Enrolling twice conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/v1/classes/"+cls.ID+"/enrollments", gin.H{
		"studentId": st.ID,
	}, cookie, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/attendance", gin.H{
		"classId":   cls.ID,
		"studentId": st.ID,
		"date":      "2026-03-02",
		"status":    "present",
		"location": gin.H{
			"latitude":  33.7490,
			"longitude": -84.3880,
		},
	}, cookie, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/classes/"+cls.ID+"/attendance", nil, cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		Date   string `json:"date"`
		Status string `json:"status"`
	}
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "present", listed[0].Status)

	w = doJSON(t, r, http.MethodGet, "/api/v1/classes/"+cls.ID+"/roster", nil, cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	var roster []struct {
		LatestAttendance *struct {
			Status string `json:"status"`
		} `json:"latestAttendance"`
	}
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &roster))
	require.Len(t, roster, 1)
	require.NotNil(t, roster[0].LatestAttendance)
	assert.Equal(t, "present", roster[0].LatestAttendance.Status)

	w = doJSON(t, r, http.MethodGet, "/api/v1/classes/"+cls.ID+"/stats", nil, cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Stats struct {
			Present int64 `json:"present"`
		} `json:"stats"`
		Total int64 `json:"total"`
	}
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(1), stats.Stats.Present)
	assert.Equal(t, int64(1), stats.Total)
}

func TestBulkMarkReportsPerRow(t *testing.T) {
	r := newTestRouter(t)
	cookie := registerAndLogin(t, r, "teacher.d")

	w := doJSON(t, r, http.MethodPost, "/api/v1/classes", gin.H{"name": "History", "capacity": 40}, cookie, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var cls struct {
		ID string `json:"id"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &cls))

	w = doJSON(t, r, http.MethodPost, "/api/v1/students", gin.H{
		"studentNumber": "S-2001",
		"firstName":     "Grace",
		"lastName":      "Hopper",
	}, cookie, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var st struct {
		ID string `json:"id"`
	}
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &st))

	w = doJSON(t, r, http.MethodPost, "/api/v1/attendance/bulk", gin.H{
		"items": []gin.H{
			{"classId": cls.ID, "studentId": st.ID, "date": "2026-03-02", "status": "present"},
			{"classId": cls.ID, "studentId": "missing", "date": "2026-03-02", "status": "present"},
		},
	}, cookie, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rows []struct {
		Index int    `json:"index"`
		Error string `json:"error"`
	}
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 2)
	assert.Empty(t, rows[0].Error)
	assert.NotEmpty(t, rows[1].Error)
}

func TestAPIKeyAuthenticatesRequests(t *testing.T) {
	r := newTestRouter(t)
	cookie := registerAndLogin(t, r, "teacher.e")

	w := doJSON(t, r, http.MethodPost, "/api/v1/apikeys", gin.H{"name": "kiosk"}, cookie, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		RawKey string `json:"rawKey"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.RawKey)

	// The raw key authenticates without any cookie.
	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", nil, nil, created.RawKey)
	assert.Equal(t, http.StatusOK, w.Code)

	// Listing masks the stored key.
	w = doJSON(t, r, http.MethodGet, "/api/v1/apikeys", nil, cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	var keys []struct {
		Key string `json:"key"`
	}
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &keys))
	require.Len(t, keys, 1)
	assert.NotEqual(t, created.RawKey, keys[0].Key)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", nil, nil, "ak_bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
