// Package input reads true key press/release events from a Linux evdev
// device. Terminals cannot report key releases, so when a device is
// configured this source replaces the UI's release watchdog with the real
// transitions the hold gesture wants.
package input

import (
	"context"
	"errors"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/holoplot/go-evdev"

	"github.com/atomicstack/tiledeck/internal/logging/events"
)

// Key identifies the navigation keys the launcher reacts to.
type Key int

const (
	KeyAccept Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBack
)

// Event is one key transition from the device.
type Event struct {
	Key     Key
	Pressed bool
}

// Sender delivers messages into the running program. Satisfied by
// (*tea.Program).Send.
type Sender interface {
	Send(msg tea.Msg)
}

// Source streams key transitions from one evdev device.
type Source struct {
	dev  *evdev.InputDevice
	path string
}

// Open opens the keyboard event device at path.
func Open(path string) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return &Source{dev: dev, path: path}, nil
}

var keyCodes = map[evdev.EvCode]Key{
	evdev.KEY_ENTER:     KeyAccept,
	evdev.KEY_KPENTER:   KeyAccept,
	evdev.KEY_LEFT:      KeyLeft,
	evdev.KEY_RIGHT:     KeyRight,
	evdev.KEY_UP:        KeyUp,
	evdev.KEY_DOWN:      KeyDown,
	evdev.KEY_ESC:       KeyBack,
	evdev.KEY_BACKSPACE: KeyBack,
}

const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// Run reads device events until ctx is cancelled, sending an Event for
// every mapped press and release. Auto-repeats are dropped; the engine's
// hold timer owns repeat semantics.
func (s *Source) Run(ctx context.Context, send Sender) {
	go func() {
		<-ctx.Done()
		s.dev.Close()
	}()
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, fs.ErrClosed) {
				return
			}
			events.Input.DeviceError(err)
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Value == valueRepeat {
			continue
		}
		key, ok := keyCodes[ev.Code]
		if !ok {
			continue
		}
		pressed := ev.Value == valuePress
		events.Input.DeviceKey(evdev.CodeName(ev.Type, ev.Code), pressed)
		send.Send(Event{Key: key, Pressed: pressed})
	}
}
