package llm

import "context"

// Responder answers a user question with optional market context appended
// to the system prompt.
type Responder interface {
	Respond(ctx context.Context, question, marketContext string) (string, error)
}

// NamedResponder reports which model answers.
type NamedResponder interface {
	Responder
	Name() string
}
