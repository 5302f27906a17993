package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-pop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		popID  int
	}{
		{"digit 0", runeKey('0'), core.ActionNone, 0},
		{"digit 7", runeKey('7'), core.ActionNone, 7},
		{"p pauses", runeKey('p'), core.ActionPause, -1},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, -1},
		{"r restarts", runeKey('r'), core.ActionRestart, -1},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores, -1},
		{"q quits", runeKey('q'), core.ActionQuit, -1},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, -1},
		{"unbound", runeKey('x'), core.ActionNone, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, popID := km.MapKey(tt.msg)
			if action != tt.action || popID != tt.popID {
				t.Errorf("MapKey(%q) = (%v, %d), expected (%v, %d)",
					tt.msg.String(), action, popID, tt.action, tt.popID)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('3'), &frame)
	km.MapKeyToFrame(runeKey('1'), &frame)
	km.MapKeyToFrame(runeKey('p'), &frame)

	if len(frame.PopIDs) != 2 || frame.PopIDs[0] != 3 || frame.PopIDs[1] != 1 {
		t.Errorf("PopIDs = %v, expected [3 1]", frame.PopIDs)
	}
	if !frame.Has(core.ActionPause) {
		t.Error("pause should be recorded in the frame")
	}

	// Restart and quit are handled by the model, not the game
	frame.Clear()
	if got := km.MapKeyToFrame(runeKey('r'), &frame); got != core.ActionRestart {
		t.Errorf("MapKeyToFrame(r) = %v, expected Restart", got)
	}
	if !frame.Empty() {
		t.Error("restart should not be recorded in the frame")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		tapped bool
	}{
		{"left press", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"motion", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if got := km.MapMouseToFrame(tt.msg, &frame); got != tt.tapped {
				t.Errorf("MapMouseToFrame() = %v, expected %v", got, tt.tapped)
			}
			if tt.tapped && (len(frame.Taps) != 1 || frame.Taps[0] != (core.Point{X: 4, Y: 9})) {
				t.Errorf("Taps = %v, expected [{4 9}]", frame.Taps)
			}
			if !tt.tapped && !frame.Empty() {
				t.Errorf("frame should stay empty, got %+v", frame)
			}
		})
	}
}

func TestIsScreenshot(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should take a screenshot")
	}
	if km.IsScreenshot(runeKey('s')) {
		t.Error("plain s should not take a screenshot")
	}
}
