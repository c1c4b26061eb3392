package tui

import (
	"strings"
	"sync"
	"testing"

	"github.com/stardrift-dev/stardrift/internal/core"
)

func TestRenderScreenContent(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "hello")

	out := RenderScreen(s)
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("rendered output missing text: %q", out)
	}
}

func TestRenderScreenConcurrent(t *testing.T) {
	// The SSH server renders one session per goroutine; concurrent
	// renders with distinct colors share the style cache.
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := core.NewScreen(16, 4)
			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					s.SetCell(x, y, '*', core.RGB{
						R: uint8(n * 31),
						G: uint8(x * 16),
						B: uint8(y * 64),
					})
				}
			}
			for i := 0; i < 50; i++ {
				if RenderScreen(s) == "" {
					t.Error("concurrent render returned empty output")
				}
			}
		}(n)
	}
	wg.Wait()
}
