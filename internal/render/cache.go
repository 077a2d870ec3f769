package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// Agent replies are re-rendered whenever the transcript is redrawn, which is
// every spinner frame while a reply is pending. Renderers are pooled per option
// set and finished output is memoized.

// outputCacheLimit bounds the memo of rendered replies
const outputCacheLimit = 256

// rendererPool keeps one sync.Pool of glamour renderers per option set.
// glamour.TermRenderer is not safe for concurrent Render calls, so renderers
// are checked out rather than shared.
type rendererPool struct {
	mu    sync.Mutex
	pools map[Options]*sync.Pool
}

func newRendererPool() *rendererPool {
	return &rendererPool{pools: make(map[Options]*sync.Pool)}
}

func (p *rendererPool) pool(opts Options) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pool, ok := p.pools[opts]; ok {
		return pool
	}
	pool := &sync.Pool{
		New: func() any {
			renderer, err := createRenderer(opts)
			if err != nil {
				return nil
			}
			return renderer
		},
	}
	p.pools[opts] = pool
	return pool
}

func (p *rendererPool) get(opts Options) (*glamour.TermRenderer, error) {
	if renderer, ok := p.pool(opts).Get().(*glamour.TermRenderer); ok {
		return renderer, nil
	}
	// New failed; a direct attempt surfaces the error
	return createRenderer(opts)
}

func (p *rendererPool) put(opts Options, renderer *glamour.TermRenderer) {
	p.pool(opts).Put(renderer)
}

func (p *rendererPool) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pools = make(map[Options]*sync.Pool)
}

func (p *rendererPool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pools)
}

func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
		glamour.WithTableWrap(opts.TableWrap),
		glamour.WithInlineTableLinks(opts.InlineTableLinks),
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(rendererOpts...)
}

type outputKey struct {
	opts    Options
	content string
}

// outputCache is a bounded memo of rendered markdown. The oldest entry is
// evicted first.
type outputCache struct {
	mu    sync.Mutex
	limit int
	items map[outputKey]string
	order []outputKey
}

func newOutputCache(limit int) *outputCache {
	return &outputCache{limit: limit, items: make(map[outputKey]string)}
}

func (c *outputCache) get(key outputKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, ok := c.items[key]
	return out, ok
}

func (c *outputCache) put(key outputKey, out string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		return
	}
	if len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.items[key] = out
	c.order = append(c.order, key)
}

func (c *outputCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[outputKey]string)
	c.order = nil
}

func (c *outputCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

var (
	renderers = newRendererPool()
	rendered  = newOutputCache(outputCacheLimit)
)

// ClearCache drops every renderer pool and memoized output. It is safe to
// call while renders are in flight.
func ClearCache() {
	renderers.reset()
	rendered.reset()
}

// CacheSize returns the number of renderer configurations in use.
func CacheSize() int {
	return renderers.size()
}
