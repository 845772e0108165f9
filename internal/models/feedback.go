package models

// FeedbackMessage is one entry in a support ticket thread, written either by
// the user who opened the ticket or by an admin.
type FeedbackMessage struct {
	ID            string   `json:"id"`
	FeedbackID    string   `json:"feedback_id,omitempty"`
	Message       string   `json:"message"`
	ScreenshotURL []string `json:"screenshot_url"`
	IsAdmin       bool     `json:"is_admin"`
	CreatedAt     string   `json:"created_at"`
	Sender        UserRef  `json:"sender"`
}

// Feedback is a support ticket with its ordered message thread.
type Feedback struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	CreatedAt string            `json:"created_at"`
	User      UserRef           `json:"user"`
	Messages  []FeedbackMessage `json:"messages"`
}

// Ticket status values.
const (
	FeedbackStatusOpen     = "open"
	FeedbackStatusResolved = "resolved"
)
