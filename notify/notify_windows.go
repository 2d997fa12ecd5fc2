//go:build windows

package notify

import (
	"syscall"
	"unsafe"
)

const (
	mbIconError       = 0x10
	mbIconInformation = 0x40
)

var (
	user32          = syscall.NewLazyDLL("user32.dll")
	kernel32        = syscall.NewLazyDLL("kernel32.dll")
	procMessageBoxW = user32.NewProc("MessageBoxW")
	procGetConsole  = kernel32.NewProc("GetConsoleWindow")
)

// detectMode reports ModeWindowed when the process has no console attached,
// which is the case when a file is dropped onto the executable
func detectMode() Mode {
	handle, _, _ := procGetConsole.Call()
	if handle == 0 {
		return ModeWindowed
	}
	return ModeConsole
}

// showMessageBox displays a native message box; reports false if the call
// could not be made so the caller can fall back to the console
func showMessageBox(title, text string, isError bool) bool {
	textPtr, err := syscall.UTF16PtrFromString(text)
	if err != nil {
		return false
	}
	titlePtr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return false
	}

	icon := uintptr(mbIconInformation)
	if isError {
		icon = mbIconError
	}

	ret, _, _ := procMessageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(textPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		icon,
	)
	return ret != 0
}
