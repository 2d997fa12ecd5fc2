//go:build !windows

package notify

// detectMode always reports console mode; drag-and-drop launch without a
// console is a Windows behaviour
func detectMode() Mode {
	return ModeConsole
}

// showMessageBox reports false so messages fall back to the console
func showMessageBox(title, text string, isError bool) bool {
	return false
}
