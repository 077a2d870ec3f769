package dashboard

import (
	"strings"
	"time"

	apierrors "github.com/diogo/agentdash/internal/errors"
	"github.com/diogo/agentdash/internal/models"
)

// Failure texts shown in the transcript and in alerts
const (
	unknownErrorText  = "Unknown error"
	commFailureText   = "Failed to communicate with server"
	loadFailureText   = "Failed to load file"
	deleteFailureText = "Failed to delete file"
	failureTextPrefix = "Error: "
)

// ChatState is the state tag of a ChatSession
type ChatState int

const (
	// ChatIdle accepts a new message
	ChatIdle ChatState = iota
	// ChatSending has one request in flight and rejects new messages
	ChatSending
)

func (s ChatState) String() string {
	if s == ChatSending {
		return "sending"
	}
	return "idle"
}

// ChatSession is the transcript plus the in-flight flag. The zero value is an
// idle session with an empty transcript.
type ChatSession struct {
	state    ChatState
	messages []models.ChatMessage
}

// NewChatSession returns an idle, empty session
func NewChatSession() ChatSession {
	return ChatSession{}
}

// State returns the current state tag
func (s ChatSession) State() ChatState {
	return s.state
}

// Sending reports whether a message is awaiting its reply
func (s ChatSession) Sending() bool {
	return s.state == ChatSending
}

// Messages returns a copy of the transcript
func (s ChatSession) Messages() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of transcript entries
func (s ChatSession) Len() int {
	return len(s.messages)
}

// Begin accepts input for sending. It returns the trimmed message to send
// and true, with the user's message already echoed into the transcript.
// Blank input or a send already in flight is rejected without any change.
func (s ChatSession) Begin(input string, now time.Time) (ChatSession, string, bool) {
	message := strings.TrimSpace(input)
	if message == "" || s.state == ChatSending {
		return s, "", false
	}

	next := s.with(models.ChatMessage{Sender: models.SenderUser, Text: message, Timestamp: now})
	next.state = ChatSending
	return next, message, true
}

// Complete appends the agent's reply verbatim and returns to idle
func (s ChatSession) Complete(reply string, now time.Time) ChatSession {
	next := s.with(models.ChatMessage{Sender: models.SenderAgent, Text: reply, Timestamp: now})
	next.state = ChatIdle
	return next
}

// Fail appends a single agent-turn error message and returns to idle
func (s ChatSession) Fail(err error, now time.Time) ChatSession {
	next := s.with(models.ChatMessage{Sender: models.SenderAgent, Text: ChatFailureText(err), Timestamp: now})
	next.state = ChatIdle
	return next
}

// Reset clears the transcript. The state tag is kept: a reply still in
// flight lands in the cleared transcript.
func (s ChatSession) Reset() ChatSession {
	return ChatSession{state: s.state}
}

// with returns a copy of s with msg appended, never sharing the backing array
func (s ChatSession) with(msg models.ChatMessage) ChatSession {
	messages := make([]models.ChatMessage, len(s.messages), len(s.messages)+1)
	copy(messages, s.messages)
	return ChatSession{state: s.state, messages: append(messages, msg)}
}

// ChatFailureText is the transcript text for a failed exchange. A server
// failure shows its reason or "Unknown error"; transport, parse and timeout
// failures share one generic text.
func ChatFailureText(err error) string {
	if apierrors.IsServerError(err) {
		return failureText(err, unknownErrorText)
	}
	return failureTextPrefix + commFailureText
}

// ViewFailureText is the alert text for a failed file view
func ViewFailureText(err error) string {
	return failureText(err, loadFailureText)
}

// DeleteFailureText is the alert text for a failed delete
func DeleteFailureText(err error) string {
	return failureText(err, deleteFailureText)
}

func failureText(err error, fallback string) string {
	if reason := apierrors.Reason(err); reason != "" {
		return failureTextPrefix + reason
	}
	return failureTextPrefix + fallback
}
