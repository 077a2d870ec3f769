package models

import "time"

// Sender identifies who produced a chat message
type Sender int

const (
	SenderUser Sender = iota
	SenderAgent
)

// String returns the role name of the sender
func (s Sender) String() string {
	if s == SenderAgent {
		return "agent"
	}
	return "user"
}

// ChatMessage is a single turn of the transcript. Messages are never mutated
// after creation.
type ChatMessage struct {
	Sender    Sender
	Text      string
	Timestamp time.Time
}

// ChatReply is the decoded body of POST /api/chat
type ChatReply struct {
	Success  bool
	Response string
	Error    string
}
