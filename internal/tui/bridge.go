// Package tui renders run progress for the terminal using bubbletea. The
// engine stays UI-agnostic; its events cross into the bubbletea world through
// the EventBridge.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/sync-names/internal/namesync"
)

const eventBufferSize = 100

// EngineEventMsg wraps a namesync.Event for use as a tea.Msg.
type EngineEventMsg struct {
	Event namesync.Event
}

// EventBridge adapts namesync events to bubbletea messages. It implements
// namesync.EventEmitter and feeds a channel the model listens on.
type EventBridge struct {
	eventChan chan tea.Msg
	closed    bool
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		eventChan: make(chan tea.Msg, eventBufferSize),
	}
}

// Emit implements namesync.EventEmitter.
func (b *EventBridge) Emit(event namesync.Event) {
	if b.closed {
		return
	}

	// Non-blocking send; a full buffer drops the event rather than stalling
	// the engine behind the renderer
	select {
	case b.eventChan <- EngineEventMsg{Event: event}:
	default:
	}
}

// ListenCmd returns a tea.Cmd that blocks until the next event arrives.
// Re-issue it after handling each event to keep listening.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.eventChan
		if !ok {
			return nil
		}

		return msg
	}
}

// Close closes the event channel. Call when the run has finished.
func (b *EventBridge) Close() {
	if !b.closed {
		b.closed = true
		close(b.eventChan)
	}
}
