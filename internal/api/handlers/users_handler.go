package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
)

// UsersHandler serves the sellers and buyers screens. Both read the same
// users store; the userType filter decides which accounts a page holds.
type UsersHandler struct {
	users store.IUserStore
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(users store.IUserStore) *UsersHandler {
	return &UsersHandler{users: users}
}

// ListSellers handles GET /console/sellers.
func (h *UsersHandler) ListSellers(c *gin.Context) {
	params := listQuery(c)
	params.UserType = "seller"
	err := h.users.Fetch(c.Request.Context(), params)
	respondListResult(c, err, h.users.Snapshot())
}

// ListBuyers handles GET /console/buyers.
func (h *UsersHandler) ListBuyers(c *gin.Context) {
	params := listQuery(c)
	params.UserType = "buyer"
	err := h.users.Fetch(c.Request.Context(), params)
	respondListResult(c, err, h.users.Snapshot())
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /console/users/:id/status. The detail dialog's
// act-then-refetch flow happens in one round trip: mutate upstream, patch
// the record in place, then reload the page named by the query parameters.
func (h *UsersHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	updated, err := h.users.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondMutationError(c, err)
		return
	}

	params := listQuery(c)
	params.UserType = c.Query("userType")
	_ = h.users.Fetch(c.Request.Context(), params)

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
		"list": listView(h.users.Snapshot()),
	})
}

// Verify handles PATCH /console/users/:id/verify.
func (h *UsersHandler) Verify(c *gin.Context) {
	updated, err := h.users.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, err)
		return
	}

	params := listQuery(c)
	params.UserType = c.Query("userType")
	_ = h.users.Fetch(c.Request.Context(), params)

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
		"list": listView(h.users.Snapshot()),
	})
}
