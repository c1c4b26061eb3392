package tui

import "testing"

func TestTickCmdProducesTickMsg(t *testing.T) {
	cmd := tickCmd(60)
	if cmd == nil {
		t.Fatal("tickCmd returned nil")
	}
	if _, ok := cmd().(TickMsg); !ok {
		t.Fatal("tickCmd did not produce a TickMsg")
	}
}

func TestTickCmdNonPositiveRate(t *testing.T) {
	for _, rate := range []int{0, -5} {
		cmd := tickCmd(rate)
		if cmd == nil {
			t.Fatalf("tickCmd(%d) returned nil", rate)
		}
		if _, ok := cmd().(TickMsg); !ok {
			t.Fatalf("tickCmd(%d) did not produce a TickMsg", rate)
		}
	}
}
