package casino

import (
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/overlay"
)

func overlayCommands(ev models.KeyEvent, sess *session) []overlay.Command {
	return overlay.Commands(ev, sess.panel.WarningVisible())
}

// applyCommand routes a command to the modifier or the panel
func applyCommand(sess *session, cmd overlay.Command) {
	if !cmd.TargetsBoost() {
		sess.panel.Apply(cmd)
		return
	}

	if cmd == overlay.CommandActivateBoost {
		sess.boost.Activate()
	} else {
		sess.boost.Toggle()
	}
}
