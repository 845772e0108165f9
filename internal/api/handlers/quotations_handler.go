package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
)

// QuotationsHandler serves the quotations screen.
type QuotationsHandler struct {
	quotations store.IQuotationStore
}

// NewQuotationsHandler creates a new QuotationsHandler.
func NewQuotationsHandler(quotations store.IQuotationStore) *QuotationsHandler {
	return &QuotationsHandler{quotations: quotations}
}

// List handles GET /console/quotations.
func (h *QuotationsHandler) List(c *gin.Context) {
	err := h.quotations.Fetch(c.Request.Context(), listQuery(c))
	respondListResult(c, err, h.quotations.Snapshot())
}

// UpdateStatus handles PATCH /console/quotations/:id/status.
func (h *QuotationsHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	updated, err := h.quotations.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondMutationError(c, err)
		return
	}

	_ = h.quotations.Fetch(c.Request.Context(), listQuery(c))

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
		"list": listView(h.quotations.Snapshot()),
	})
}
