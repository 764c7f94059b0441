package hook

import "github.com/pkg/errors"

// trampolineSize covers the five relocated prologue bytes, the five-byte
// return jump, and int3 padding up to one 16-byte block.
const trampolineSize = 16

// Trampoline is a relocated copy of a hooked function's first five bytes
// followed by a jump back to the sixth. Calling its address behaves like
// calling the unpatched original. It must never be released while the
// patch that routes through it is still live.
type Trampoline struct {
	blk *execBlock
}

// newTrampoline builds the trampoline for a patch at site. The block is
// placed within rel32 range of the site so the return jump encodes.
func newTrampoline(site uintptr, prologue [PatchSize]byte) (*Trampoline, error) {
	blk, err := allocExec(site, trampolineSize)
	if err != nil {
		return nil, errors.Wrap(err, "trampoline")
	}
	back, err := jumpTo(blk.Addr()+PatchSize, site+PatchSize)
	if err != nil {
		blk.release()
		return nil, errors.Wrap(err, "trampoline return jump")
	}
	blk.write(0, prologue[:])
	blk.write(PatchSize, back[:])
	blk.fill(2*PatchSize, 0xCC)
	blk.seal()
	return &Trampoline{blk: blk}, nil
}

// Addr is the callable entry of the trampoline.
func (t *Trampoline) Addr() uintptr {
	return t.blk.Addr()
}

// Release frees the executable block, exactly once.
func (t *Trampoline) Release() {
	t.blk.release()
}
