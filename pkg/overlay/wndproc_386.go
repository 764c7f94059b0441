//go:build windows && 386

package overlay

const setWindowLongProc = "SetWindowLongW"
