package core

const (
	AppName      = "EventDash"
	AppUserAgent = "EventDash-API/0.1"
	AppVersion   = "0.1.0"
)

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// Resource is an upstream sourcing-system record. Fields are passed
// through untouched; only the handful of keys used for chaining are
// ever inspected.
type Resource map[string]any

// EventAggregate is the composed Task -> Workspace -> RFXDocument
// chain for a single sourcing event. Either all three resources are
// present or the composition failed; partial aggregates do not exist.
type EventAggregate struct {
	Task      Resource `json:"task"`
	Workspace Resource `json:"workspace"`
	RFX       Resource `json:"rfx"`
}

// ChatTurn is one entry of the conversation history the frontend
// re-sends on every chat call. The server keeps no transcript.
type ChatTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Str returns the value of a top-level key if it is a non-empty string.
func (r Resource) Str(key string) string {
	s, _ := r[key].(string)
	return s
}
