//go:build amd64

package hook

import "encoding/binary"

// disasmMode selects the x86asm decoder bitness.
const disasmMode = 64

// farJumpTo encodes an absolute jump without clobbering a register.
// push takes only a sign-extended imm32, so the low dword is pushed
// first and the high dword patched into the upper half of the pushed
// slot before returning into it.
func farJumpTo(dest uintptr) []byte {
	buf := make([]byte, 14)
	buf[0] = 0x68 // push imm32
	binary.LittleEndian.PutUint32(buf[1:], uint32(dest))
	buf[5] = 0xC7 // mov dword [rsp+4], imm32
	buf[6] = 0x44
	buf[7] = 0x24
	buf[8] = 0x04
	binary.LittleEndian.PutUint32(buf[9:], uint32(uint64(dest)>>32))
	buf[13] = 0xC3 // ret
	return buf
}
