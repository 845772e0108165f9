package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/api/middleware"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/session"
)

// MockSessionManager implements session.IManager
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Create(ctx context.Context, upstreamToken string, admin models.Admin) (*session.Record, string, error) {
	args := m.Called(ctx, upstreamToken, admin)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*session.Record), args.String(1), args.Error(2)
}

func (m *MockSessionManager) Destroy(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionManager) Authenticate(ctx context.Context, consoleToken string) (*session.Record, error) {
	args := m.Called(ctx, consoleToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Record), args.Error(1)
}

func (m *MockSessionManager) Resolve(ctx context.Context, consoleToken string) session.Resolution {
	args := m.Called(ctx, consoleToken)
	return args.Get(0).(session.Resolution)
}

func TestSessionGuard_NoTokenRejectedWithRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := new(MockSessionManager)
	sessions.On("Authenticate", mock.Anything, "").Return(nil, session.ErrNotFound)

	r := gin.New()
	r.GET("/console/dashboard", middleware.SessionGuard(sessions), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/console/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), middleware.LoginRedirect)
	sessions.AssertExpectations(t)
}

func TestSessionGuard_LiveSessionAttachedToContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &session.Record{ID: "sess-1", UpstreamToken: "up-tok", Admin: models.Admin{ID: "a1"}}
	sessions := new(MockSessionManager)
	sessions.On("Authenticate", mock.Anything, "console-token").Return(rec, nil)

	var gotRecord *session.Record
	var gotAdminID string
	r := gin.New()
	r.GET("/console/dashboard", middleware.SessionGuard(sessions), func(c *gin.Context) {
		gotRecord, _ = session.RecordFrom(c.Request.Context())
		gotAdminID = c.GetString(middleware.ContextKeyAdminID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/console/dashboard", nil)
	req.Header.Set("Authorization", "Bearer console-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, rec, gotRecord)
	assert.Equal(t, "a1", gotAdminID)
	sessions.AssertExpectations(t)
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest("GET", "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		assert.Equal(t, tc.want, middleware.BearerToken(c), "header %q", tc.header)
	}
}
