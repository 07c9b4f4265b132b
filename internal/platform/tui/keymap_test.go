package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/strider/internal/core"
)

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w jumps", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionJump, false},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.want {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), action, tt.want)
			}
			if isQuit != tt.wantQuit {
				t.Errorf("MapKey(%q) isQuit = %v, want %v", tt.msg.String(), isQuit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame) {
		t.Error("jump key reported as quit")
	}
	if !frame.Has(core.ActionJump) {
		t.Error("jump key did not set ActionJump in the frame")
	}

	frame.Clear()
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, &frame) {
		t.Error("unbound key reported as quit")
	}
	if frame.Has(core.ActionJump) || frame.Has(core.ActionPause) {
		t.Error("unbound key set an action")
	}

	frame.Clear()
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c not reported as quit")
	}
}
