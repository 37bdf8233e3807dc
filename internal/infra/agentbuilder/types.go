package agentbuilder

import "fmt"

// ToolDefinition describes an Agent Builder query tool: an ES|QL template
// with named parameters the agent can fill in.
type ToolDefinition struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Labels        []string        `json:"labels"`
	Configuration string          `json:"configuration"`
	Parameters    []ToolParameter `json:"parameters"`
}

// ToolParameter is a named parameter of a tool's query template.
type ToolParameter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AgentDefinition describes a conversational agent and the tools it may
// call.
type AgentDefinition struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Instructions string   `json:"instructions"`
	Labels       []string `json:"labels"`
	Tools        []string `json:"tools"`
}

// ConverseRequest continues (or starts) a conversation with an agent.
type ConverseRequest struct {
	AgentID        string `json:"agent_id"`
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ConverseResponse carries the agent's reply and the token needed to
// continue the conversation.
type ConverseResponse struct {
	ConversationID string `json:"conversation_id"`
	Response       string `json:"response"`
}

// APIError is a non-success response from the Agent Builder API, surfaced
// with its status code and body rather than swallowed.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
}
