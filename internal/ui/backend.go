package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tiledeck/internal/backend"
	"github.com/atomicstack/tiledeck/internal/engine"
	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/store"
	"github.com/atomicstack/tiledeck/internal/tiles"
	uistate "github.com/atomicstack/tiledeck/internal/ui/state"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForBackendEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyBackendEvent reloads the deck after an external edit. Reloads are
// only applied while the engine is idle; an event arriving mid-gesture is
// dropped, never queued.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.setToast("Watching deck failed: "+evt.Err.Error(), 0, true)
		return
	}
	if m.deck == nil {
		return
	}
	if m.eng.State() != engine.Idle {
		events.Store.ReloadSkipped(evt.Path, m.eng.State().String())
		return
	}
	persisted, err := m.deck.Load()
	if err != nil {
		if errors.Is(err, store.ErrNoDeck) {
			return
		}
		m.setToast("Reloading deck failed: "+err.Error(), 0, true)
		return
	}
	if !m.eng.Reload(tiles.Build(persisted)) {
		events.Store.ReloadSkipped(evt.Path, m.eng.State().String())
		return
	}
	if m.searching {
		m.searchEntries = uistate.Entries(m.eng.Tree())
	}
}
