package overlay

import (
	"testing"

	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		name           string
		event          models.KeyEvent
		warningVisible bool
		want           []Command
	}{
		{"ctrl f1 activates boost", models.KeyEvent{Key: "F1", Ctrl: true}, false, []Command{CommandActivateBoost}},
		{"f1 alone does nothing", models.KeyEvent{Key: "F1"}, false, nil},
		{"ctrl f2 toggles music", models.KeyEvent{Key: "F2", Ctrl: true}, false, []Command{CommandToggleMusic}},
		{"control shows warning", models.KeyEvent{Key: "Control", Ctrl: true}, false, []Command{CommandShowWarning}},
		{"control with shift is ignored", models.KeyEvent{Key: "Control", Ctrl: true, Shift: true}, false, nil},
		{"control with alt is ignored", models.KeyEvent{Key: "Control", Ctrl: true, Alt: true}, false, nil},
		{"control release hides warning", models.KeyEvent{Key: "Control", Up: true}, true, []Command{CommandHideWarning}},
		{"other release is ignored", models.KeyEvent{Key: "1", Up: true}, true, nil},
		{"1 with warning toggles boost", models.KeyEvent{Key: "1"}, true, []Command{CommandToggleBoost}},
		{"1 without warning is ignored", models.KeyEvent{Key: "1"}, false, nil},
		{"2 with warning toggles alert", models.KeyEvent{Key: "2"}, true, []Command{CommandToggleAlert}},
		{"2 without warning is ignored", models.KeyEvent{Key: "2"}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Commands(tt.event, tt.warningVisible))
		})
	}
}

func TestCommand_TargetsBoost(t *testing.T) {
	assert.True(t, CommandActivateBoost.TargetsBoost())
	assert.True(t, CommandToggleBoost.TargetsBoost())
	assert.False(t, CommandToggleMusic.TargetsBoost())
	assert.False(t, CommandShowWarning.TargetsBoost())
}

func TestPanel_Apply(t *testing.T) {
	panel := NewPanel()
	assert.Equal(t, models.OverlayState{}, panel.State())

	panel.Apply(CommandShowWarning)
	assert.True(t, panel.WarningVisible())

	state := panel.Apply(CommandToggleAlert)
	assert.True(t, state.AlertMode)

	state = panel.Apply(CommandToggleMusic)
	assert.True(t, state.MusicPlaying)

	state = panel.Apply(CommandHideWarning)
	assert.Equal(t, models.OverlayState{AlertMode: true, MusicPlaying: true}, state)

	// boost commands do not touch the panel
	assert.Equal(t, state, panel.Apply(CommandToggleBoost))
}
