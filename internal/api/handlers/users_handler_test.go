package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/api/handlers"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

func TestUsersHandler_ListSellers_ForwardsFiltersAndUserType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUsers := new(MockUserStore)
	handler := handlers.NewUsersHandler(mockUsers)

	wantParams := upstream.ListParams{Page: 2, Limit: 10, Search: "bmw", Status: "active", UserType: "seller"}
	mockUsers.On("Fetch", mock.Anything, wantParams).Return(nil)
	mockUsers.On("Snapshot").Return(store.UserList{
		Items:      []models.User{{ID: "u1", Name: "Seller One"}},
		Pagination: models.Pagination{Total: 11, Page: 2, Pages: 2},
	})

	r := gin.New()
	r.GET("/console/sellers", handler.ListSellers)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/console/sellers?page=2&search=bmw&status=active", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"], 1)
	assert.NotNil(t, resp["pages"])
	mockUsers.AssertExpectations(t)
}

func TestUsersHandler_ListBuyers_FetchErrorStillRendersStaleItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUsers := new(MockUserStore)
	handler := handlers.NewUsersHandler(mockUsers)

	mockUsers.On("Fetch", mock.Anything, mock.Anything).Return(assert.AnError)
	mockUsers.On("Snapshot").Return(store.UserList{
		Items: []models.User{{ID: "u9", Name: "Old Page"}},
		Error: "upstream request failed",
	})

	r := gin.New()
	r.GET("/console/buyers", handler.ListBuyers)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/console/buyers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"], 1)
	assert.Equal(t, "upstream request failed", resp["error"])
}

func TestUsersHandler_List_SessionExpiredRedirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUsers := new(MockUserStore)
	handler := handlers.NewUsersHandler(mockUsers)

	mockUsers.On("Fetch", mock.Anything, mock.Anything).Return(upstream.ErrUnauthenticated)
	mockUsers.On("Snapshot").Return(store.UserList{}).Maybe()

	r := gin.New()
	r.GET("/console/sellers", handler.ListSellers)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/console/sellers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/auth/login")
}

func TestUsersHandler_UpdateStatus_RefetchesCurrentPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUsers := new(MockUserStore)
	handler := handlers.NewUsersHandler(mockUsers)

	updated := &models.User{ID: "u2", Status: "banned"}
	mockUsers.On("UpdateStatus", mock.Anything, "u2", "banned").Return(updated, nil)
	mockUsers.On("Fetch", mock.Anything, upstream.ListParams{Page: 3, Limit: 10, UserType: "seller"}).Return(nil)
	mockUsers.On("Snapshot").Return(store.UserList{
		Items:      []models.User{{ID: "u2", Status: "banned"}},
		Pagination: models.Pagination{Total: 21, Page: 3, Pages: 3},
	})

	r := gin.New()
	r.PATCH("/console/users/:id/status", handler.UpdateStatus)

	body, _ := json.Marshal(gin.H{"status": "banned"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/console/users/u2/status?page=3&userType=seller", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "banned", resp["data"].(map[string]interface{})["status"])
	assert.NotNil(t, resp["list"])
	mockUsers.AssertExpectations(t)
}

func TestUsersHandler_UpdateStatus_UpstreamErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUsers := new(MockUserStore)
	handler := handlers.NewUsersHandler(mockUsers)

	mockUsers.On("UpdateStatus", mock.Anything, "u2", "nope").
		Return(nil, &upstream.APIError{Status: http.StatusUnprocessableEntity, Message: "Invalid status transition"})

	r := gin.New()
	r.PATCH("/console/users/:id/status", handler.UpdateStatus)

	body, _ := json.Marshal(gin.H{"status": "nope"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/console/users/u2/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status transition")
	mockUsers.AssertNotCalled(t, "Fetch")
}

func TestUsersHandler_Verify_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUsers := new(MockUserStore)
	handler := handlers.NewUsersHandler(mockUsers)

	verified := &models.User{ID: "u5", Status: "verified"}
	mockUsers.On("Verify", mock.Anything, "u5").Return(verified, nil)
	mockUsers.On("Fetch", mock.Anything, mock.Anything).Return(nil)
	mockUsers.On("Snapshot").Return(store.UserList{Items: []models.User{*verified}})

	r := gin.New()
	r.PATCH("/console/users/:id/verify", handler.Verify)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/console/users/u5/verify?userType=seller", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified"`)
	mockUsers.AssertExpectations(t)
}
