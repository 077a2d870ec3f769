// Package render provides terminal presentation helpers: markdown rendering of
// agent replies, TUI color themes and the size/time/icon formatters used by the
// file panel.
package render

// Options configures the markdown renderer behavior.
type Options struct {
	// Width defines the maximum output width (default: 80)
	Width int

	// Style is a glamour standard style ("dark", "light", "dracula",
	// "tokyo-night", "notty", "ascii") or a path to a JSON style file
	Style string

	EnableEmoji      bool
	PreserveNewLines bool
	TableWrap        bool
	InlineTableLinks bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// MarkdownStyles lists the glamour standard styles offered in the config menu
func MarkdownStyles() []string {
	return []string{"dark", "light", "dracula", "tokyo-night", "pink", "ascii", "notty"}
}
