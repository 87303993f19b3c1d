package common

const (
	// MaxFeedbackRequestBody limits JSON request bodies for the feedback endpoint.
	MaxFeedbackRequestBody = 1 << 20
	// MaxFeedbackMessageRunes limits feedback message length to keep payloads sane.
	MaxFeedbackMessageRunes = 4000
)
