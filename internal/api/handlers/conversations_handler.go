package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
)

// ConversationsHandler serves the buyer/seller conversations screen.
type ConversationsHandler struct {
	conversations store.IConversationStore
}

// NewConversationsHandler creates a new ConversationsHandler.
func NewConversationsHandler(conversations store.IConversationStore) *ConversationsHandler {
	return &ConversationsHandler{conversations: conversations}
}

func conversationView(snap store.ConversationList) gin.H {
	view := listView(snap.ListSnapshot)
	view["currentMessages"] = snap.CurrentMessages
	return view
}

// List handles GET /console/conversations.
func (h *ConversationsHandler) List(c *gin.Context) {
	err := h.conversations.Fetch(c.Request.Context(), listQuery(c))
	if respondUnauthenticated(c, err) {
		return
	}
	c.JSON(http.StatusOK, conversationView(h.conversations.Snapshot()))
}

// Messages handles GET /console/messages?buyer_id=&seller_id=, the full
// exchange between one buyer and one seller. A room_id from the loaded page
// may stand in for the pair.
func (h *ConversationsHandler) Messages(c *gin.Context) {
	buyerID := c.Query("buyer_id")
	sellerID := c.Query("seller_id")
	if roomID := c.Query("room_id"); roomID != "" && (buyerID == "" || sellerID == "") {
		for _, conv := range h.conversations.Snapshot().Items {
			if conv.RoomID != roomID {
				continue
			}
			if buyer := conv.Buyer(); buyer != nil {
				buyerID = buyer.ID
			}
			if seller := conv.Seller(); seller != nil {
				sellerID = seller.ID
			}
			break
		}
	}
	if buyerID == "" || sellerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "buyer_id and seller_id are required"})
		return
	}

	if err := h.conversations.FetchMessagesBetween(c.Request.Context(), buyerID, sellerID); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.conversations.Snapshot().CurrentMessages})
}

// ClearMessages handles DELETE /console/messages.
func (h *ConversationsHandler) ClearMessages(c *gin.Context) {
	h.conversations.ClearMessages()
	c.JSON(http.StatusOK, gin.H{"currentMessages": []struct{}{}})
}
