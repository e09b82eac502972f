package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single entry in the conversation transcript.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ResetConversation clears the transcript and starts a new conversation.
func (c *Client) ResetConversation() {
	c.history = nil
}

// ClearHistory clears the transcript. Alias of ResetConversation kept
// for callers that think in terms of history rather than sessions.
func (c *Client) ClearHistory() {
	c.history = nil
}

// History returns a copy of the current transcript in order.
func (c *Client) History() []Turn {
	out := make([]Turn, len(c.history))
	copy(out, c.history)
	return out
}

// SendTurn appends userText as a user turn, sends the flattened
// transcript as one prompt, appends the assistant reply to the
// transcript and returns it. On provider error the user turn stays in
// the transcript.
func (c *Client) SendTurn(ctx context.Context, userText string) (string, error) {
	c.history = append(c.history, Turn{Role: RoleUser, Content: userText})

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(c.flatten()), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: chat: %w", err)
	}
	reply := resp.Text()

	c.history = append(c.history, Turn{Role: RoleAssistant, Content: reply})
	return reply, nil
}

// flatten renders the transcript as one text blob, each turn on its own
// line as "User: ..." or "Assistant: ...".
func (c *Client) flatten() string {
	var b strings.Builder
	for _, t := range c.history {
		label := "User"
		if t.Role == RoleAssistant {
			label = "Assistant"
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(t.Content)
		b.WriteByte('\n')
	}
	return b.String()
}
