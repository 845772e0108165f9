package store

import (
	"context"
	"sync"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// FeedbackList is the tickets store snapshot, including the detail-scoped
// message thread of the currently open ticket.
type FeedbackList struct {
	ListSnapshot[models.Feedback]
	CurrentMessages []models.FeedbackMessage `json:"currentMessages"`
}

// IFeedbackStore defines the support-tickets store operations.
type IFeedbackStore interface {
	Fetch(ctx context.Context, params upstream.ListParams) error
	FetchMessages(ctx context.Context, feedbackID string) error
	ClearMessages()
	UpdateStatus(ctx context.Context, feedbackID, status string) (*models.Feedback, error)
	Reply(ctx context.Context, feedbackID, message string, screenshotURLs []string) (*models.FeedbackMessage, error)
	Snapshot() FeedbackList
}

type feedbackStore struct {
	client *upstream.Client
	list   listCore[models.Feedback]

	// currentMessages is the open ticket's thread. Not paginated, explicitly
	// clearable, and the only place where a sent record is appended without a
	// re-fetch.
	msgMu           sync.Mutex
	currentMessages []models.FeedbackMessage
}

// NewFeedbackStore creates the tickets store.
func NewFeedbackStore(client *upstream.Client) IFeedbackStore {
	return &feedbackStore{client: client}
}

func (s *feedbackStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	seq := s.list.begin()
	items, p, err := s.client.Feedbacks(ctx, params)
	s.list.settle(seq, items, p, true, err)
	return err
}

// FetchMessages replaces the detail thread with the given ticket's messages.
func (s *feedbackStore) FetchMessages(ctx context.Context, feedbackID string) error {
	messages, err := s.client.FeedbackMessages(ctx, feedbackID)
	if err != nil {
		return err
	}
	s.msgMu.Lock()
	s.currentMessages = messages
	s.msgMu.Unlock()
	return nil
}

// ClearMessages drops the detail thread, typically on dialog close.
func (s *feedbackStore) ClearMessages() {
	s.msgMu.Lock()
	s.currentMessages = nil
	s.msgMu.Unlock()
}

func (s *feedbackStore) UpdateStatus(ctx context.Context, feedbackID, status string) (*models.Feedback, error) {
	updated, err := s.client.UpdateFeedbackStatus(ctx, feedbackID, status)
	if err != nil {
		return nil, err
	}
	s.list.replaceWhere(func(f *models.Feedback) bool { return f.ID == updated.ID }, *updated)
	return updated, nil
}

// Reply posts an admin message to the ticket. After upstream confirmation the
// sent message is appended to the open thread and to the ticket's embedded
// message list so the table's message count stays honest.
func (s *feedbackStore) Reply(ctx context.Context, feedbackID, message string, screenshotURLs []string) (*models.FeedbackMessage, error) {
	sent, err := s.client.ReplyToFeedback(ctx, feedbackID, message, screenshotURLs)
	if err != nil {
		return nil, err
	}

	s.msgMu.Lock()
	s.currentMessages = append(s.currentMessages, *sent)
	s.msgMu.Unlock()

	target := sent.FeedbackID
	if target == "" {
		target = feedbackID
	}
	s.list.mutateWhere(
		func(f *models.Feedback) bool { return f.ID == target },
		func(f *models.Feedback) { f.Messages = append(f.Messages, *sent) },
	)
	return sent, nil
}

func (s *feedbackStore) Snapshot() FeedbackList {
	snap := FeedbackList{ListSnapshot: s.list.snapshot()}
	s.msgMu.Lock()
	snap.CurrentMessages = make([]models.FeedbackMessage, len(s.currentMessages))
	copy(snap.CurrentMessages, s.currentMessages)
	s.msgMu.Unlock()
	return snap
}
