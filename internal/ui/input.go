package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tiledeck/internal/dialog"
	"github.com/atomicstack/tiledeck/internal/engine"
	"github.com/atomicstack/tiledeck/internal/input"
	"github.com/atomicstack/tiledeck/internal/logging/events"
	uistate "github.com/atomicstack/tiledeck/internal/ui/state"
)

// holdElapsedMsg delivers a hold-timer expiry back to the engine.
type holdElapsedMsg struct {
	seq int
}

// watchdogMsg fires when accept-key auto-repeats have stopped, which is the
// closest a terminal gets to a key release.
type watchdogMsg struct {
	seq int
}

func (m *Model) handleHoldElapsedMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(holdElapsedMsg)
	if !ok {
		return nil
	}
	m.eng.HoldElapsed(tick.seq)
	return nil
}

// armWatchdog (re)starts the release watchdog. Every accept repeat extends
// it; expiry synthesizes the release.
func (m *Model) armWatchdog() tea.Cmd {
	m.watchSeq++
	seq := m.watchSeq
	events.Input.WatchdogArmed(seq)
	return tea.Tick(m.watchdogInterval, func(time.Time) tea.Msg {
		return watchdogMsg{seq: seq}
	})
}

func (m *Model) handleWatchdogMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(watchdogMsg)
	if !ok {
		return nil
	}
	if tick.seq != m.watchSeq || !m.acceptDown {
		return nil
	}
	m.acceptDown = false
	events.Input.WatchdogRelease(tick.seq)
	m.releaseAccept()
	return nil
}

// pressAccept routes an accept press: ignored inside a dialog (the release
// carries the meaning there), fed to the engine otherwise.
func (m *Model) pressAccept() {
	if m.dialogActive() {
		return
	}
	m.eng.PressAccept()
}

// releaseAccept routes an accept release. The first release after a guarded
// dialog opens settles the guard instead of being read as dialog input.
func (m *Model) releaseAccept() {
	if d := m.activeDialog(); d != nil {
		if !d.Ready() {
			d.Settle()
			events.Dialog.Settle()
			return
		}
		if d.Accept() {
			events.Dialog.Accept(d.Current().ID)
		}
		m.dlg = nil
		return
	}
	m.eng.ReleaseAccept()
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	if m.dialogActive() {
		return m.handleDialogKey(keyMsg)
	}
	switch keyMsg.String() {
	case "enter":
		if !m.acceptDown {
			m.acceptDown = true
			m.pressAccept()
		}
		if m.deviceInput {
			return nil
		}
		return m.armWatchdog()
	case "left", "h":
		m.eng.MoveLeft()
	case "right", "l":
		m.eng.MoveRight()
	case "up", "k":
		m.eng.MoveUp()
	case "down", "j":
		m.eng.MoveDown()
	case "/":
		return m.openSearch()
	case "?":
		m.showFooter = !m.showFooter
	case "esc", "q":
		if m.eng.State() == engine.Idle {
			return tea.Quit
		}
		events.Input.Dropped(keyMsg.String(), m.eng.State().String())
	default:
		events.Input.Dropped(keyMsg.String(), m.eng.State().String())
	}
	return nil
}

func (m *Model) dialogActive() bool {
	return m.activeDialog() != nil
}

func (m *Model) activeDialog() *dialog.Dialog {
	if m.dlg == nil {
		return nil
	}
	if m.dlg.Resolved() {
		m.dlg = nil
		return nil
	}
	return m.dlg
}

func (m *Model) handleDialogKey(keyMsg tea.KeyMsg) tea.Cmd {
	d := m.dlg
	switch keyMsg.String() {
	case "left", "h":
		if d.MoveLeft() {
			events.Dialog.Cycle(d.Index())
		}
	case "right", "l":
		if d.MoveRight() {
			events.Dialog.Cycle(d.Index())
		}
	case "enter":
		if !m.acceptDown {
			m.acceptDown = true
		}
		if m.deviceInput {
			return nil
		}
		return m.armWatchdog()
	case "esc", "q":
		d.Dismiss()
		events.Dialog.Dismiss()
		m.dlg = nil
	default:
		events.Input.Dropped(keyMsg.String(), "dialog")
	}
	return nil
}

func (m *Model) handleDeviceEventMsg(msg tea.Msg) tea.Cmd {
	evt, ok := msg.(input.Event)
	if !ok {
		return nil
	}
	if m.searching {
		// The search overlay is keyboard-driven through the terminal; raw
		// device events are dropped while it is open.
		return nil
	}
	if evt.Key == input.KeyAccept {
		if evt.Pressed {
			m.acceptDown = true
			m.pressAccept()
		} else {
			m.acceptDown = false
			m.releaseAccept()
		}
		return nil
	}
	if !evt.Pressed {
		return nil
	}
	if m.dialogActive() {
		d := m.dlg
		switch evt.Key {
		case input.KeyLeft:
			if d.MoveLeft() {
				events.Dialog.Cycle(d.Index())
			}
		case input.KeyRight:
			if d.MoveRight() {
				events.Dialog.Cycle(d.Index())
			}
		case input.KeyBack:
			d.Dismiss()
			events.Dialog.Dismiss()
			m.dlg = nil
		}
		return nil
	}
	switch evt.Key {
	case input.KeyLeft:
		m.eng.MoveLeft()
	case input.KeyRight:
		m.eng.MoveRight()
	case input.KeyUp:
		m.eng.MoveUp()
	case input.KeyDown:
		m.eng.MoveDown()
	case input.KeyBack:
		if m.eng.State() == engine.Idle {
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) openSearch() tea.Cmd {
	if m.eng.State() != engine.Idle || m.eng.Degenerate() {
		return nil
	}
	m.searching = true
	m.searchEntries = uistate.Entries(m.eng.Tree())
	m.searchInput.SetValue("")
	events.Search.Open()
	return m.searchInput.Focus()
}

func (m *Model) searchMatches() []uistate.Entry {
	return uistate.Matches(m.searchEntries, m.searchInput.Value())
}

func (m *Model) closeSearch() {
	m.searching = false
	m.searchInput.Blur()
	events.Search.Close()
}

func (m *Model) handleSearchKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "esc":
		m.closeSearch()
		return nil
	case "enter":
		query := m.searchInput.Value()
		if entry, ok := uistate.BestMatch(m.searchEntries, query); ok {
			if m.eng.JumpTo(entry.CatIdx, entry.TileIdx) {
				events.Search.Jump(entry.Category, entry.TileIdx)
			}
		}
		m.closeSearch()
		return nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(keyMsg)
	query := m.searchInput.Value()
	events.Search.Query(query, len(uistate.Matches(m.searchEntries, query)))
	return cmd
}
