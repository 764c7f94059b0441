//go:build 386

package hook

// disasmMode selects the x86asm decoder bitness.
const disasmMode = 32

// farJumpTo encodes an absolute jump that does not rely on a relative
// displacement: push the destination, then return into it.
func farJumpTo(dest uintptr) []byte {
	return []byte{
		0x68, // push imm32
		byte(dest), byte(dest >> 8), byte(dest >> 16), byte(dest >> 24),
		0xC3, // ret
	}
}
