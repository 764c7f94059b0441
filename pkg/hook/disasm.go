package hook

import (
	"github.com/pkg/errors"
	"golang.org/x/arch/x86/x86asm"
)

// prologueScan is how many bytes are read from the target entry when
// sizing up the patch region; an instruction takes at most 16 bytes.
const prologueScan = 16

// validatePatchRegion checks that the first PatchSize bytes of code can
// be relocated into the trampoline: they must end exactly on an
// instruction boundary and contain nothing that references the
// instruction pointer, so the copied bytes behave identically at the new
// address.
func validatePatchRegion(code []byte, mode int) error {
	n := 0
	for n < PatchSize {
		inst, err := x86asm.Decode(code[n:], mode)
		if err != nil {
			return errors.Wrapf(ErrBadPrologue, "undecodable instruction at entry+%d", n)
		}
		if err := checkRelocatable(inst); err != nil {
			return errors.Wrapf(err, "instruction at entry+%d", n)
		}
		n += inst.Len
	}
	if n != PatchSize {
		return errors.Wrapf(ErrBadPrologue, "instruction spans the %d-byte patch boundary", PatchSize)
	}
	return nil
}

func checkRelocatable(inst x86asm.Inst) error {
	switch inst.Op {
	case x86asm.RET, x86asm.LRET:
		return errors.Wrap(ErrBadPrologue, "ret inside patch region")
	case x86asm.CALL, x86asm.JMP, x86asm.LCALL, x86asm.LJMP:
		return errors.Wrap(ErrBadPrologue, "control transfer inside patch region")
	}
	for _, arg := range inst.Args {
		if arg == nil {
			break
		}
		if _, ok := arg.(x86asm.Rel); ok {
			return errors.Wrap(ErrBadPrologue, "relative operand inside patch region")
		}
		if m, ok := arg.(x86asm.Mem); ok && m.Base == x86asm.RIP {
			return errors.Wrap(ErrBadPrologue, "rip-relative operand inside patch region")
		}
	}
	return nil
}
