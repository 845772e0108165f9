package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
)

// FeedbackHandler serves the support-tickets screen and its message dialog.
type FeedbackHandler struct {
	feedback       store.IFeedbackStore
	maxScreenshots int
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedback store.IFeedbackStore, maxScreenshots int) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, maxScreenshots: maxScreenshots}
}

func feedbackView(snap store.FeedbackList) gin.H {
	view := listView(snap.ListSnapshot)
	view["currentMessages"] = snap.CurrentMessages
	return view
}

// List handles GET /console/tickets.
func (h *FeedbackHandler) List(c *gin.Context) {
	err := h.feedback.Fetch(c.Request.Context(), listQuery(c))
	if respondUnauthenticated(c, err) {
		return
	}
	c.JSON(http.StatusOK, feedbackView(h.feedback.Snapshot()))
}

// Messages handles GET /console/tickets/:id/messages. The fetched thread
// becomes the store's current thread until cleared.
func (h *FeedbackHandler) Messages(c *gin.Context) {
	if err := h.feedback.FetchMessages(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.feedback.Snapshot().CurrentMessages})
}

// ClearMessages handles DELETE /console/tickets/messages, the dialog-close
// reset.
func (h *FeedbackHandler) ClearMessages(c *gin.Context) {
	h.feedback.ClearMessages()
	c.JSON(http.StatusOK, gin.H{"currentMessages": []struct{}{}})
}

// UpdateStatus handles PATCH /console/tickets/:id/status.
func (h *FeedbackHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	updated, err := h.feedback.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondMutationError(c, err)
		return
	}

	_ = h.feedback.Fetch(c.Request.Context(), listQuery(c))

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
		"list": feedbackView(h.feedback.Snapshot()),
	})
}

type replyRequest struct {
	Message        string   `json:"message" binding:"required"`
	ScreenshotURLs []string `json:"screenshotUrls"`
}

// Reply handles POST /console/tickets/:id/reply. Screenshots are staged
// beforehand through the uploads endpoint; only their URLs travel here.
func (h *FeedbackHandler) Reply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	if len(req.ScreenshotURLs) > h.maxScreenshots {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("At most %d screenshots per reply", h.maxScreenshots),
		})
		return
	}

	sent, err := h.feedback.Reply(c.Request.Context(), c.Param("id"), req.Message, req.ScreenshotURLs)
	if err != nil {
		respondMutationError(c, err)
		return
	}

	snap := h.feedback.Snapshot()
	c.JSON(http.StatusCreated, gin.H{
		"data":            sent,
		"currentMessages": snap.CurrentMessages,
	})
}
