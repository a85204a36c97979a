package supabase

// Conversation is one customer thread on one messaging platform.
type Conversation struct {
	ID           string `json:"id"`
	Platform     string `json:"platform"`
	CustomerName string `json:"customer_name"`
	LastMessage  string `json:"last_message"`
	UnreadCount  int    `json:"unread_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Message is one stored chat message.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	Body           string `json:"body"`
	AuthorRole     string `json:"author_role"`
	AuthorName     string `json:"author_name"`
	CreatedAt      string `json:"created_at"`
}

// NewMessage is the insert payload; the store fills in id and
// created_at.
type NewMessage struct {
	ConversationID string `json:"conversation_id"`
	Body           string `json:"body"`
	AuthorRole     string `json:"author_role"`
	AuthorName     string `json:"author_name"`
}
