package overlay

import (
	"sync"

	"github.com/KirkDiggler/robuxroyale/internal/models"
)

// Command is what a key press means, independent of the keyboard
type Command string

const (
	CommandActivateBoost Command = "activate_boost"
	CommandToggleBoost   Command = "toggle_boost"
	CommandToggleMusic   Command = "toggle_music"
	CommandShowWarning   Command = "show_warning"
	CommandHideWarning   Command = "hide_warning"
	CommandToggleAlert   Command = "toggle_alert"
)

// TargetsBoost reports whether the command is for the boost modifier rather than the panel
func (c Command) TargetsBoost() bool {
	return c == CommandActivateBoost || c == CommandToggleBoost
}

// Commands maps a key event to commands. The number keys only act while the warning panel is open.
func Commands(ev models.KeyEvent, warningVisible bool) []Command {
	if ev.Up {
		if ev.Key == "Control" {
			return []Command{CommandHideWarning}
		}
		return nil
	}

	switch {
	case ev.Ctrl && ev.Key == "F1":
		return []Command{CommandActivateBoost}
	case ev.Ctrl && ev.Key == "F2":
		return []Command{CommandToggleMusic}
	case ev.Key == "Control" && !ev.Alt && !ev.Shift:
		return []Command{CommandShowWarning}
	case ev.Key == "1" && warningVisible:
		return []Command{CommandToggleBoost}
	case ev.Key == "2" && warningVisible:
		return []Command{CommandToggleAlert}
	}
	return nil
}

// Panel holds the hidden panel state of one session
type Panel struct {
	mu    sync.Mutex
	state models.OverlayState
}

// NewPanel returns a closed panel with music off
func NewPanel() *Panel {
	return &Panel{}
}

// State returns a snapshot
func (p *Panel) State() models.OverlayState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// WarningVisible reports whether the number keys are live
func (p *Panel) WarningVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state.WarningVisible
}

// Apply executes a panel command. Boost commands are left to the caller.
func (p *Panel) Apply(cmd Command) models.OverlayState {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch cmd {
	case CommandShowWarning:
		p.state.WarningVisible = true
	case CommandHideWarning:
		p.state.WarningVisible = false
	case CommandToggleAlert:
		p.state.AlertMode = !p.state.AlertMode
	case CommandToggleMusic:
		p.state.MusicPlaying = !p.state.MusicPlaying
	}
	return p.state
}
