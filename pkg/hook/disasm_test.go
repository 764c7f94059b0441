package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePatchRegion(t *testing.T) {
	cases := []struct {
		name string
		code []byte
		mode int
		ok   bool
	}{
		{
			// mov edi, edi; push ebp; mov ebp, esp
			name: "hot-patch prologue",
			code: []byte{0x8B, 0xFF, 0x55, 0x8B, 0xEC, 0xCC, 0xCC, 0xCC},
			mode: 32,
			ok:   true,
		},
		{
			// mov eax, 42
			name: "single five-byte instruction",
			code: []byte{0xB8, 0x2A, 0x00, 0x00, 0x00, 0xC3},
			mode: 64,
			ok:   true,
		},
		{
			name: "jmp rel32 at entry",
			code: []byte{0xE9, 0x00, 0x10, 0x00, 0x00, 0x90},
			mode: 32,
			ok:   false,
		},
		{
			name: "ret at entry",
			code: []byte{0xC3, 0x90, 0x90, 0x90, 0x90},
			mode: 32,
			ok:   false,
		},
		{
			// je +5
			name: "conditional branch",
			code: []byte{0x74, 0x05, 0x90, 0x90, 0x90},
			mode: 32,
			ok:   false,
		},
		{
			// call rel32
			name: "call at entry",
			code: []byte{0xE8, 0x00, 0x00, 0x00, 0x00, 0x90},
			mode: 64,
			ok:   false,
		},
		{
			// mov eax, [rip+0x10]
			name: "rip-relative load",
			code: []byte{0x8B, 0x05, 0x10, 0x00, 0x00, 0x00, 0x90},
			mode: 64,
			ok:   false,
		},
		{
			// four nops, then xchg ax, ax straddling byte five
			name: "instruction spans patch boundary",
			code: []byte{0x90, 0x90, 0x90, 0x90, 0x66, 0x90, 0x90},
			mode: 32,
			ok:   false,
		},
		{
			name: "garbage bytes",
			code: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			mode: 32,
			ok:   false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validatePatchRegion(c.code, c.mode)
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrBadPrologue)
			}
		})
	}
}
