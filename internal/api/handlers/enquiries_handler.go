package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
)

// EnquiriesHandler serves the enquiries screen and its quotations dialog.
type EnquiriesHandler struct {
	enquiries store.IEnquiryStore
}

// NewEnquiriesHandler creates a new EnquiriesHandler.
func NewEnquiriesHandler(enquiries store.IEnquiryStore) *EnquiriesHandler {
	return &EnquiriesHandler{enquiries: enquiries}
}

// List handles GET /console/enquiries.
func (h *EnquiriesHandler) List(c *gin.Context) {
	err := h.enquiries.Fetch(c.Request.Context(), listQuery(c))
	respondListResult(c, err, h.enquiries.Snapshot())
}

// Quotations handles GET /console/enquiries/:id/quotations, the detail
// dialog's view of the offers answering one enquiry.
func (h *EnquiriesHandler) Quotations(c *gin.Context) {
	quotations, err := h.enquiries.QuotationsFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": quotations})
}

// PatchStatus handles PATCH /console/enquiries/:id/status. The change is
// local to the loaded page; the upstream owns the authoritative status and
// updates it through its own quotation flow.
func (h *EnquiriesHandler) PatchStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if !h.enquiries.PatchStatus(c.Param("id"), req.Status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not on the current page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": listView(h.enquiries.Snapshot())})
}
