package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func TestSessionMenuGameMenu(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), log.New(io.Discard))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.screen != screenGame {
		t.Fatalf("enter should start a game, screen = %v", m.screen)
	}
	if m.game.recorder.rec != nil {
		t.Error("a nil store must not become a non-nil recorder")
	}

	// Pause, then leave.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	next, _ = m.Update(TickMsg{})
	m = next.(SessionModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)

	if m.screen != screenMenu {
		t.Errorf("esc while paused should return to the menu, screen = %v", m.screen)
	}
	if m.View() == "" {
		t.Error("menu should render")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), log.New(io.Discard))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	if m.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen = %v", m.screen)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.screen != screenMenu {
		t.Errorf("esc should return to the menu, screen = %v", m.screen)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
