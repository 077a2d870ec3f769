package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/diogo/agentdash/internal/config"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("expected Width=80, got %d", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("expected Style='dark', got %s", opts.Style)
	}
	if !opts.EnableEmoji || !opts.PreserveNewLines || !opts.TableWrap {
		t.Error("expected emoji, newline preservation and table wrap enabled")
	}
}

func TestOptionsChaining(t *testing.T) {
	opts := DefaultOptions().WithWidth(100).WithStyle("light")

	if opts.Width != 100 || opts.Style != "light" || !opts.EnableEmoji {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "")

	cfg := config.DefaultConfig()
	cfg.Markdown.Style = "dracula"
	cfg.Markdown.EnableEmoji = false

	opts := OptionsFromConfig(cfg)
	if opts.Style != "dracula" {
		t.Errorf("Style = %s, want dracula", opts.Style)
	}
	if opts.EnableEmoji {
		t.Error("EnableEmoji should follow config")
	}
}

func TestOptionsFromConfig_EnvOverride(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "light")

	opts := OptionsFromConfig(config.DefaultConfig())
	if opts.Style != "light" {
		t.Errorf("expected Style='light' from env, got %s", opts.Style)
	}
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Report\n\nSaved **notes.txt**", DefaultOptions().WithStyle("notty"))
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}
	if !strings.Contains(out, "Report") || !strings.Contains(out, "notes.txt") {
		t.Errorf("Markdown() output missing content: %q", out)
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	SetDefaultOptions(DefaultOptions().WithStyle("notty"))
	defer SetDefaultOptions(DefaultOptions())

	out, err := MarkdownWithWidth("hello world", 40)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() error: %v", err)
	}
	if !strings.Contains(out, "hello world") {
		t.Errorf("output missing text: %q", out)
	}
}

func TestMarkdown_Memoized(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions().WithStyle("notty")
	first, err := Markdown("**saved** notes.txt", opts)
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}
	second, _ := Markdown("**saved** notes.txt", opts)
	if first != second {
		t.Error("memoized output differs")
	}
	if rendered.len() != 1 {
		t.Errorf("memo holds %d entries, want 1", rendered.len())
	}

	// A different width is a different rendering
	if _, err := Markdown("**saved** notes.txt", opts.WithWidth(40)); err != nil {
		t.Fatal(err)
	}
	if rendered.len() != 2 || CacheSize() != 2 {
		t.Errorf("memo = %d, renderers = %d, want 2 and 2", rendered.len(), CacheSize())
	}
}

func TestOutputCache_EvictsOldest(t *testing.T) {
	c := newOutputCache(2)
	opts := DefaultOptions()

	c.put(outputKey{opts, "a"}, "A")
	c.put(outputKey{opts, "b"}, "B")
	c.put(outputKey{opts, "a"}, "A2")
	c.put(outputKey{opts, "c"}, "C")

	if _, ok := c.get(outputKey{opts, "a"}); ok {
		t.Error("oldest entry should be evicted")
	}
	if out, ok := c.get(outputKey{opts, "b"}); !ok || out != "B" {
		t.Errorf("get(b) = %q, %v", out, ok)
	}
	if c.len() != 2 {
		t.Errorf("len = %d, want 2", c.len())
	}
}

func TestPool_ConcurrentRender(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions().WithStyle("notty")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Markdown("- a\n- b", opts); err != nil {
				t.Errorf("Markdown() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if CacheSize() != 1 {
		t.Errorf("expected 1 pool, got %d", CacheSize())
	}
}

func TestClearCache_DuringRender(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions().WithStyle("notty")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			out, err := Markdown("**bold**", opts)
			if err != nil {
				t.Errorf("Markdown() error: %v", err)
				return
			}
			if !strings.Contains(out, "bold") {
				t.Errorf("Markdown() = %q", out)
			}
		}()
		go func() {
			defer wg.Done()
			ClearCache()
		}()
	}
	wg.Wait()

	ClearCache()
	if CacheSize() != 0 || rendered.len() != 0 {
		t.Errorf("after ClearCache: pools = %d, memo = %d", CacheSize(), rendered.len())
	}
}

func TestTUIThemes(t *testing.T) {
	for _, theme := range AvailableTUIThemes() {
		if theme.Name == "" || theme.Description == "" {
			t.Errorf("theme %+v missing name or description", theme)
		}
		if string(theme.Primary) == "" || string(theme.Success) == "" || string(theme.Error) == "" {
			t.Errorf("theme %s missing colors", theme.Name)
		}
	}

	defer SetTUITheme("tokyonight")

	if !SetTUITheme("dracula") {
		t.Fatal("SetTUITheme(dracula) = false")
	}
	if GetTUITheme().Name != "dracula" {
		t.Errorf("GetTUITheme().Name = %s, want dracula", GetTUITheme().Name)
	}
	if SetTUITheme("no-such-theme") {
		t.Error("SetTUITheme() accepted an unknown theme")
	}
	if GetTUITheme().Name != "dracula" {
		t.Error("unknown theme should not replace the current one")
	}
	if len(TUIThemeNames()) != len(AvailableTUIThemes()) {
		t.Error("TUIThemeNames() length mismatch")
	}
}
