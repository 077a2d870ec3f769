package render

import "sync"

var (
	defaultMu   sync.RWMutex
	defaultOpts = DefaultOptions()
)

// SetDefaultOptions replaces the options used by MarkdownWithWidth.
func SetDefaultOptions(opts Options) {
	defaultMu.Lock()
	defaultOpts = opts
	defaultMu.Unlock()
}

// Markdown renders markdown content for terminal display. Output for the
// same content and options is served from the memo.
func Markdown(content string, opts Options) (string, error) {
	key := outputKey{opts: opts, content: content}
	if out, ok := rendered.get(key); ok {
		return out, nil
	}

	renderer, err := renderers.get(opts)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(content)
	renderers.put(opts, renderer)
	if err != nil {
		return "", err
	}

	rendered.put(key, out)
	return out, nil
}

// MarkdownWithWidth renders with the default options at the given width.
func MarkdownWithWidth(content string, width int) (string, error) {
	defaultMu.RLock()
	opts := defaultOpts.WithWidth(width)
	defaultMu.RUnlock()
	return Markdown(content, opts)
}
