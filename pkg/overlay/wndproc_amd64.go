//go:build windows && amd64

package overlay

const setWindowLongProc = "SetWindowLongPtrW"
