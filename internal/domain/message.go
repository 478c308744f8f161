package domain

import "strings"

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_Tool      ChatRole = "tool"
)

// Message is a single chat message exchanged with the LLM.
// Content is nil when the model answered with a null content field.
type Message struct {
	Role       ChatRole
	Content    *string
	Name       string
	ToolCallID *string
	ToolCalls  []ToolCall
}

// ToolCall is a tool invocation requested by the model.
// Arguments holds the raw JSON text produced by the model.
type ToolCall struct {
	ID        string
	Function  string
	Arguments string
}

// NewMessage creates a message with the given role and content.
func NewMessage(role ChatRole, content string) Message {
	return Message{Role: role, Content: &content}
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return NewMessage(ChatRole_System, content)
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return NewMessage(ChatRole_User, content)
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return NewMessage(ChatRole_Assistant, content)
}

// NewToolResultMessage creates the tool message answering the call with the given id.
func NewToolResultMessage(toolCallID, toolName, content string) Message {
	return Message{
		Role:       ChatRole_Tool,
		Content:    &content,
		Name:       toolName,
		ToolCallID: &toolCallID,
	}
}

// Text returns the message content or an empty string when there is none.
func (m Message) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// HasToolCalls reports whether the message carries tool calls.
func (m Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// IsBlank reports whether the message content is missing or whitespace only.
func (m Message) IsBlank() bool {
	return strings.TrimSpace(m.Text()) == ""
}
