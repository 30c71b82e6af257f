package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/pipeline"
)

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func newTestPick(t *testing.T) PickModel {
	t.Helper()
	opts := pipeline.Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	return NewPickModel(catalog.Fallback(), "", "", layout.SideBySide, "dark", opts)
}

func press(m PickModel, keys ...string) (PickModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(PickModel)
	}
	return m, cmd
}

func TestPickDefaults(t *testing.T) {
	m := newTestPick(t)
	left, right := m.Selection()
	if left != "explorer2-226570" || right != "speedy-pro" {
		t.Errorf("Selection() = %s|%s, want explorer2-226570|speedy-pro", left, right)
	}
	if m.preview.PxPerMm != 4 {
		t.Errorf("preview PxPerMm = %v, want 4", m.preview.PxPerMm)
	}
}

func TestPickInitialSelection(t *testing.T) {
	opts := pipeline.Options{}
	_ = opts.ValidateAndSetDefaults()
	m := NewPickModel(catalog.Fallback(), "santos-medium", "bb54", layout.Overlapped, "light", opts)
	left, right := m.Selection()
	if left != "santos-medium" || right != "bb54" {
		t.Errorf("Selection() = %s|%s, want santos-medium|bb54", left, right)
	}
	if m.preview.Mode != layout.Overlapped {
		t.Errorf("preview mode = %q, want overlapped", m.preview.Mode)
	}
}

func TestPickNavigation(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		wantLeft  string
		wantRight string
		wantMode  layout.Mode
	}{
		{"next left", []string{"right"}, "speedy-pro", "speedy-pro", layout.SideBySide},
		{"wrap left", []string{"left"}, "santos-medium", "speedy-pro", layout.SideBySide},
		{"next right", []string{"tab", "right"}, "explorer2-226570", "bb54", layout.SideBySide},
		{"mode field", []string{"tab", "tab", "right"}, "explorer2-226570", "speedy-pro", layout.Touching},
		{"mode field wraps back", []string{"tab", "tab", "left"}, "explorer2-226570", "speedy-pro", layout.Overlapped},
		{"mode key", []string{"m", "m"}, "explorer2-226570", "speedy-pro", layout.Overlapped},
		{"swap", []string{"s"}, "speedy-pro", "explorer2-226570", layout.SideBySide},
		{"focus wraps", []string{"tab", "tab", "tab", "right"}, "speedy-pro", "speedy-pro", layout.SideBySide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(newTestPick(t), tt.keys...)
			left, right := m.Selection()
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("Selection() = %s|%s, want %s|%s", left, right, tt.wantLeft, tt.wantRight)
			}
			if m.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", m.Mode, tt.wantMode)
			}
			if m.preview.Left.ItemID != left || m.preview.Mode != m.Mode {
				t.Errorf("preview not recomputed: %s/%s", m.preview.Left.ItemID, m.preview.Mode)
			}
		})
	}
}

func TestPickThemeDoesNotChangeGeometry(t *testing.T) {
	m := newTestPick(t)
	before := m.preview
	m, _ = press(m, "t")
	if m.Theme != "light" {
		t.Errorf("Theme = %q, want light", m.Theme)
	}
	if m.preview.PxPerMm != before.PxPerMm || m.preview.Left.BoxSize != before.Left.BoxSize {
		t.Error("theme toggle changed the geometry")
	}
}

func TestPickConfirmAndQuit(t *testing.T) {
	m, cmd := press(newTestPick(t), "enter")
	if !m.Confirmed {
		t.Error("Confirmed = false after enter")
	}
	if cmd == nil {
		t.Error("enter did not return a quit command")
	}

	m, cmd = press(newTestPick(t), "q")
	if m.Confirmed {
		t.Error("Confirmed = true after q")
	}
	if cmd == nil {
		t.Error("q did not return a quit command")
	}
}

func TestPickView(t *testing.T) {
	view := newTestPick(t).View()
	for _, want := range []string{"Compare Watches", "Explorer II (226570)", "side-by-side", "scale 4.00 px/mm", "Lug-to-Lug: 50mm"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
