package models

// KeyEvent is a raw keyboard event forwarded by the page
type KeyEvent struct {
	// Key is the DOM key name ("F1", "Control", "1")
	Key string

	// Ctrl, Alt and Shift are the modifier flags at the time of the event
	Ctrl  bool
	Alt   bool
	Shift bool

	// Up is true for keyup events
	Up bool
}

// OverlayState is what the hidden panels currently show
type OverlayState struct {
	// WarningVisible is true while the warning panel is held open
	WarningVisible bool

	// AlertMode is toggled from the warning panel
	AlertMode bool

	// MusicPlaying is the background music flag
	MusicPlaying bool
}
