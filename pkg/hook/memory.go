package hook

import "unsafe"

// byteSlice aliases n bytes of raw process memory at addr.
func byteSlice(addr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

// readMemory copies n bytes out of a live code address.
func readMemory(addr uintptr, n int) []byte {
	out := make([]byte, n)
	copy(out, byteSlice(addr, n))
	return out
}
