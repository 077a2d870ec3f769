package dashboard

import (
	"time"

	"github.com/diogo/agentdash/internal/models"
	"github.com/diogo/agentdash/internal/render"
)

// Labels of the two transcript senders
const (
	UserLabel  = "You"
	AgentLabel = "Agent"
)

// Welcome panel content, shown while the transcript is empty
const (
	WelcomeTitle = "👋 Welcome!"
	WelcomeIntro = "Chat with your AI agent to manage files. Try these commands:"
)

// WelcomeExamples are the example prompts of the welcome panel
var WelcomeExamples = []string{
	"Create a file called notes.txt with my shopping list",
	"Read the notes.txt file",
	"What files do I have?",
	"Write a report about AI trends to report.txt",
}

// Empty file panel content
const (
	EmptyFilesIcon  = "📂"
	EmptyFilesTitle = "No files yet"
	EmptyFilesHint  = "Create files by chatting with the agent"
)

// TypingText accompanies the animation shown while a reply is pending
const TypingText = "Agent is typing"

// TranscriptEntry is one rendered chat turn
type TranscriptEntry struct {
	Sender models.Sender
	Label  string
	Text   string
	Time   string
}

// TranscriptView describes the chat panel
type TranscriptView struct {
	Welcome  bool
	Entries  []TranscriptEntry
	Typing   bool
	Examples []string
}

// BuildTranscriptView describes the chat panel for a session
func BuildTranscriptView(s ChatSession) TranscriptView {
	view := TranscriptView{
		Welcome: s.Len() == 0,
		Typing:  s.Sending(),
		Entries: make([]TranscriptEntry, 0, s.Len()),
	}
	if view.Welcome {
		view.Examples = append([]string(nil), WelcomeExamples...)
	}

	for _, msg := range s.messages {
		label := AgentLabel
		if msg.Sender == models.SenderUser {
			label = UserLabel
		}
		view.Entries = append(view.Entries, TranscriptEntry{
			Sender: msg.Sender,
			Label:  label,
			Text:   msg.Text,
			Time:   render.MessageTime(msg.Timestamp),
		})
	}
	return view
}

// FileRow is one row of the file panel
type FileRow struct {
	Name     string
	Icon     string
	Size     string
	Age      string
	Selected bool
}

// Meta returns the secondary line of a row: size, then age when known
func (r FileRow) Meta() string {
	if r.Age == "" {
		return r.Size
	}
	return r.Size + " • " + r.Age
}

// FileListView describes the file panel
type FileListView struct {
	Rows      []FileRow
	Count     int
	TotalSize string
	Empty     bool
}

// BuildFileListView describes the file panel for a registry at time now
func BuildFileListView(r FileRegistry, now time.Time) FileListView {
	view := FileListView{
		Count:     r.Count(),
		TotalSize: render.FileSize(r.TotalSize()),
		Empty:     r.Empty(),
		Rows:      make([]FileRow, 0, r.Count()),
	}

	for i, f := range r.files {
		row := FileRow{
			Name:     f.Name,
			Icon:     render.FileIcon(f.Name),
			Size:     render.FileSize(f.Size),
			Selected: i == r.cursor,
		}
		if f.LastModified != nil {
			row.Age = render.RelativeTime(*f.LastModified, now)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
