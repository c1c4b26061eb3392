package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}

	// Out of bounds set is ignored, get returns space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)

	red := RGB{R: 255}
	s.SetCell(1, 1, '*', red)

	cell := s.GetCell(1, 1)
	if cell.Rune != '*' {
		t.Errorf("cell rune = %q, want '*'", cell.Rune)
	}
	if cell.Fg != red {
		t.Errorf("cell color = %v, want %v", cell.Fg, red)
	}

	// Plain Set uses the default foreground
	s.Set(2, 2, 'x')
	if got := s.GetCell(2, 2).Fg; got != White {
		t.Errorf("default color = %v, want white", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(8, 3)
	s.SetCell(0, 0, '#', RGB{R: 9})
	s.Clear()

	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("after Clear, Get(0,0) = %q, want space", got)
	}
	if got := s.GetCell(0, 0).Fg; got != White {
		t.Errorf("after Clear, color = %v, want white", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')

	// Growing preserves content
	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("content lost on grow: Get(2,2) = %q", got)
	}

	// Shrinking clips
	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("content lost on shrink: Get(2,2) = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText failed: row = %q", s.Row(1))
	}

	// Clipping at the right edge must not panic
	s.DrawText(8, 0, "long text")
	if s.Get(9, 0) != 'o' {
		t.Errorf("clipped text: Get(9,0) = %q, want 'o'", s.Get(9, 0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("String() has %d lines, want 2", len(lines))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' {
		t.Errorf("top corners wrong: %q %q", s.Get(0, 0), s.Get(5, 0))
	}
	if s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("bottom corners wrong: %q %q", s.Get(0, 3), s.Get(5, 3))
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("edges wrong: %q %q", s.Get(2, 0), s.Get(0, 2))
	}
}
