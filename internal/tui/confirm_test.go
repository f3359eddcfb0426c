package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressKey(t *testing.T, m confirmModel, keyType tea.KeyType, runes ...rune) confirmModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: keyType, Runes: runes})
	next, ok := updated.(confirmModel)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next
}

func TestConfirmModel_Yes(t *testing.T) {
	m := newConfirmModel("Distribute 3 files?")
	m = pressKey(t, m, tea.KeyRunes, 'y')

	if !m.done || !m.confirmed {
		t.Errorf("after y: done=%v confirmed=%v", m.done, m.confirmed)
	}
}

func TestConfirmModel_EnterConfirms(t *testing.T) {
	m := newConfirmModel("Proceed?")
	m = pressKey(t, m, tea.KeyEnter)

	if !m.confirmed {
		t.Error("enter should confirm")
	}
}

func TestConfirmModel_Decline(t *testing.T) {
	for _, press := range []struct {
		name    string
		keyType tea.KeyType
		runes   []rune
	}{
		{"n", tea.KeyRunes, []rune{'n'}},
		{"esc", tea.KeyEsc, nil},
		{"ctrl+c", tea.KeyCtrlC, nil},
	} {
		t.Run(press.name, func(t *testing.T) {
			m := newConfirmModel("Proceed?")
			m = pressKey(t, m, press.keyType, press.runes...)
			if !m.done || m.confirmed {
				t.Errorf("after %s: done=%v confirmed=%v", press.name, m.done, m.confirmed)
			}
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	m := newConfirmModel("Proceed?")
	m = pressKey(t, m, tea.KeyRunes, 'x')

	if m.done {
		t.Error("unrelated key should not resolve the prompt")
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := newConfirmModel("Distribute?")
	if !strings.Contains(m.View(), "[y/N]") {
		t.Errorf("pending view missing hint: %q", m.View())
	}

	m = pressKey(t, m, tea.KeyRunes, 'y')
	if !strings.Contains(m.View(), "yes") {
		t.Errorf("resolved view missing answer: %q", m.View())
	}
}
