package models

// Participant is one side of a buyer-seller conversation.
type Participant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"` // "buyer" or "seller"
}

// LastMessage is the preview shown in the conversations table.
type LastMessage struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Conversation is a message thread between exactly one buyer and one seller.
type Conversation struct {
	RoomID        string        `json:"room_id"`
	Participants  []Participant `json:"participants"`
	LastMessage   LastMessage   `json:"last_message"`
	MessagesCount int           `json:"messages_count"`
	Status        string        `json:"status"`
}

// Buyer and Seller pick the respective participant out of the pair, or nil
// if the thread is missing that side.
func (c *Conversation) Buyer() *Participant  { return c.participant("buyer") }
func (c *Conversation) Seller() *Participant { return c.participant("seller") }

func (c *Conversation) participant(typ string) *Participant {
	for i := range c.Participants {
		if c.Participants[i].Type == typ {
			return &c.Participants[i]
		}
	}
	return nil
}

// Message is a single chat message within a conversation.
type Message struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"room_id"`
	SenderID   string  `json:"sender_id"`
	ReceiverID string  `json:"receiver_id"`
	Content    string  `json:"content"`
	ImageURL   *string `json:"image_url"`
	Timestamp  string  `json:"timestamp"`
	Sender     UserRef `json:"sender"`
	Receiver   UserRef `json:"receiver"`
}
