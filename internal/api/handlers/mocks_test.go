package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/session"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// --- Shared mocks for handler tests ---

// MockAuthAPI implements handlers.IAuthAPI
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, emailOrPhone, password string) (*upstream.LoginResult, error) {
	args := m.Called(ctx, emailOrPhone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.LoginResult), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, in upstream.RegisterInput) (*upstream.RegisterResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.RegisterResult), args.Error(1)
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

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

// MockUserStore implements store.IUserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockUserStore) UpdateStatus(ctx context.Context, userID, status string) (*models.User, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Verify(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Snapshot() store.UserList {
	args := m.Called()
	return args.Get(0).(store.UserList)
}

// MockFeedbackStore implements store.IFeedbackStore
type MockFeedbackStore struct {
	mock.Mock
}

func (m *MockFeedbackStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockFeedbackStore) FetchMessages(ctx context.Context, feedbackID string) error {
	args := m.Called(ctx, feedbackID)
	return args.Error(0)
}

func (m *MockFeedbackStore) ClearMessages() {
	m.Called()
}

func (m *MockFeedbackStore) UpdateStatus(ctx context.Context, feedbackID, status string) (*models.Feedback, error) {
	args := m.Called(ctx, feedbackID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackStore) Reply(ctx context.Context, feedbackID, message string, screenshotURLs []string) (*models.FeedbackMessage, error) {
	args := m.Called(ctx, feedbackID, message, screenshotURLs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedbackMessage), args.Error(1)
}

func (m *MockFeedbackStore) Snapshot() store.FeedbackList {
	args := m.Called()
	return args.Get(0).(store.FeedbackList)
}

// MockEnquiryStore implements store.IEnquiryStore
type MockEnquiryStore struct {
	mock.Mock
}

func (m *MockEnquiryStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockEnquiryStore) QuotationsFor(ctx context.Context, enquiryID string) ([]models.Quotation, error) {
	args := m.Called(ctx, enquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Quotation), args.Error(1)
}

func (m *MockEnquiryStore) PatchStatus(enquiryID, status string) bool {
	args := m.Called(enquiryID, status)
	return args.Bool(0)
}

func (m *MockEnquiryStore) Snapshot() store.EnquiryList {
	args := m.Called()
	return args.Get(0).(store.EnquiryList)
}

// MockConversationStore implements store.IConversationStore
type MockConversationStore struct {
	mock.Mock
}

func (m *MockConversationStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockConversationStore) FetchMessagesBetween(ctx context.Context, buyerID, sellerID string) error {
	args := m.Called(ctx, buyerID, sellerID)
	return args.Error(0)
}

func (m *MockConversationStore) ClearMessages() {
	m.Called()
}

func (m *MockConversationStore) Snapshot() store.ConversationList {
	args := m.Called()
	return args.Get(0).(store.ConversationList)
}

// MockDashboardStore implements store.IDashboardStore
type MockDashboardStore struct {
	mock.Mock
}

func (m *MockDashboardStore) Fetch(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDashboardStore) Snapshot() store.DashboardSnapshot {
	args := m.Called()
	return args.Get(0).(store.DashboardSnapshot)
}
