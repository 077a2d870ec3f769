package dashboard

import "github.com/diogo/agentdash/internal/models"

// FileRegistry is the last successfully polled listing plus the cursor of
// the file panel. A poll replaces the listing wholesale.
type FileRegistry struct {
	files  []models.FileSummary
	cursor int
	loaded bool
}

// Replace installs a new listing. The cursor follows the previously selected
// file when it is still present, otherwise it is clamped to the new length.
func (r FileRegistry) Replace(files []models.FileSummary) FileRegistry {
	selected, hadSelection := r.Selected()

	next := FileRegistry{
		files:  make([]models.FileSummary, len(files)),
		cursor: r.cursor,
		loaded: true,
	}
	copy(next.files, files)

	if hadSelection {
		for i, f := range next.files {
			if f.Name == selected.Name {
				next.cursor = i
				return next
			}
		}
	}
	next.cursor = clamp(next.cursor, len(next.files))
	return next
}

// Files returns a copy of the listing
func (r FileRegistry) Files() []models.FileSummary {
	out := make([]models.FileSummary, len(r.files))
	copy(out, r.files)
	return out
}

// Loaded reports whether any poll has succeeded yet
func (r FileRegistry) Loaded() bool {
	return r.loaded
}

// Count returns the number of files
func (r FileRegistry) Count() int {
	return len(r.files)
}

// TotalSize returns the sum of all file sizes in bytes
func (r FileRegistry) TotalSize() int64 {
	return models.TotalSize(r.files)
}

// Empty reports whether the listing has no files
func (r FileRegistry) Empty() bool {
	return len(r.files) == 0
}

// Cursor returns the index of the selected row
func (r FileRegistry) Cursor() int {
	return r.cursor
}

// Selected returns the file under the cursor
func (r FileRegistry) Selected() (models.FileSummary, bool) {
	if r.cursor < 0 || r.cursor >= len(r.files) {
		return models.FileSummary{}, false
	}
	return r.files[r.cursor], true
}

// MoveUp moves the cursor one row up, stopping at the first row
func (r FileRegistry) MoveUp() FileRegistry {
	if r.cursor > 0 {
		r.cursor--
	}
	return r
}

// MoveDown moves the cursor one row down, stopping at the last row
func (r FileRegistry) MoveDown() FileRegistry {
	if r.cursor < len(r.files)-1 {
		r.cursor++
	}
	return r
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// Modal is the file viewer overlay: closed, or open on one file
type Modal struct {
	file *models.FileContent
}

// Open shows content in the modal
func (m Modal) Open(content models.FileContent) Modal {
	return Modal{file: &content}
}

// Close hides the modal
func (m Modal) Close() Modal {
	return Modal{}
}

// IsOpen reports whether the modal is showing a file
func (m Modal) IsOpen() bool {
	return m.file != nil
}

// File returns the displayed file, if any
func (m Modal) File() (models.FileContent, bool) {
	if m.file == nil {
		return models.FileContent{}, false
	}
	return *m.file, true
}

// PendingDelete is the confirmation step in front of a delete
type PendingDelete struct {
	name   string
	active bool
}

// Request asks for confirmation of deleting name
func (p PendingDelete) Request(name string) PendingDelete {
	return PendingDelete{name: name, active: true}
}

// Active reports whether a confirmation is being asked
func (p PendingDelete) Active() bool {
	return p.active
}

// Name returns the file awaiting confirmation
func (p PendingDelete) Name() string {
	return p.name
}

// Prompt is the question shown to the user
func (p PendingDelete) Prompt() string {
	if !p.active {
		return ""
	}
	return `Are you sure you want to delete "` + p.name + `"?`
}

// Confirm resolves the step affirmatively. It returns the name to delete
// and true only when a confirmation was pending.
func (p PendingDelete) Confirm() (PendingDelete, string, bool) {
	if !p.active {
		return p, "", false
	}
	return PendingDelete{}, p.name, true
}

// Cancel drops the pending confirmation
func (p PendingDelete) Cancel() PendingDelete {
	return PendingDelete{}
}
