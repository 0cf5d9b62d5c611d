package usecases

// Renderer turns a markdown reply into sanitized HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

type ReplyRecorder interface {
	RecordChatReply(outcome string)
}

const (
	OutcomeReplied       = "replied"
	OutcomeLimited       = "limited"
	OutcomeProviderError = "provider_error"
)
