package store

// EvidenceChunk is a retrieved passage with its similarity score and
// normalized metadata. Content may be empty for padding placeholders, but
// every field is always present.
type EvidenceChunk struct {
	ID       string  `json:"id"`
	Score    float32 `json:"score"`
	Title    string  `json:"titulo"`
	Category string  `json:"categoria"`
	Content  string  `json:"content"`
}

// ConversationTurn is one message of a session history.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

// Session holds the ordered turn history for one conversation.
// Owned exclusively by the session store; callers receive copies.
type Session struct {
	ID    string             `json:"id"`
	Turns []ConversationTurn `json:"turns"`
}

// AnswerResult is what the synthesizer returns: the generated answer plus
// the exact evidence chunks that were placed in the prompt.
type AnswerResult struct {
	SessionID string          `json:"session_id"`
	Category  string          `json:"categoria"`
	Answer    string          `json:"resposta"`
	Evidence  []EvidenceChunk `json:"fontes"`
}
