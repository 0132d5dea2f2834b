package home

// confirmResetMsg switches the menu into the reset confirmation state.
type confirmResetMsg struct{}

// resetDoneMsg is sent when the progress wipe finishes.
type resetDoneMsg struct {
	Err error
}
