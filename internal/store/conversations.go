package store

import (
	"context"
	"sync"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// ConversationList is the conversations store snapshot.
type ConversationList struct {
	ListSnapshot[models.Conversation]
	CurrentMessages []models.Message `json:"currentMessages"`
}

// IConversationStore defines the conversations store operations.
type IConversationStore interface {
	Fetch(ctx context.Context, params upstream.ListParams) error
	FetchMessagesBetween(ctx context.Context, buyerID, sellerID string) error
	ClearMessages()
	Snapshot() ConversationList
}

type conversationStore struct {
	client *upstream.Client
	list   listCore[models.Conversation]

	msgMu           sync.Mutex
	currentMessages []models.Message
}

// NewConversationStore creates the conversations store.
func NewConversationStore(client *upstream.Client) IConversationStore {
	return &conversationStore{client: client}
}

// Fetch loads one page of threads. The upstream sometimes omits the
// pagination block; the previous value is kept in that case.
func (s *conversationStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	seq := s.list.begin()
	items, p, havePagination, err := s.client.Conversations(ctx, params)
	s.list.settle(seq, items, p, havePagination, err)
	return err
}

// FetchMessagesBetween replaces the detail thread with the full exchange
// between one buyer and one seller.
func (s *conversationStore) FetchMessagesBetween(ctx context.Context, buyerID, sellerID string) error {
	messages, err := s.client.MessagesBetween(ctx, buyerID, sellerID)
	if err != nil {
		return err
	}
	s.msgMu.Lock()
	s.currentMessages = messages
	s.msgMu.Unlock()
	return nil
}

// ClearMessages drops the detail thread.
func (s *conversationStore) ClearMessages() {
	s.msgMu.Lock()
	s.currentMessages = nil
	s.msgMu.Unlock()
}

func (s *conversationStore) Snapshot() ConversationList {
	snap := ConversationList{ListSnapshot: s.list.snapshot()}
	s.msgMu.Lock()
	snap.CurrentMessages = make([]models.Message, len(s.currentMessages))
	copy(snap.CurrentMessages, s.currentMessages)
	s.msgMu.Unlock()
	return snap
}
