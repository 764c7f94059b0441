package hook

import "log"

// execBlock owns a small executable allocation. Only the entry address
// and release are exposed; raw pointer arithmetic stays inside this
// package.
type execBlock struct {
	addr     uintptr
	size     int
	released bool
}

// allocExec allocates an executable block, preferring addresses within
// rel32 range of near when near is non-zero.
func allocExec(near uintptr, size int) (*execBlock, error) {
	addr, err := osAllocExec(near, size)
	if err != nil {
		return nil, err
	}
	return &execBlock{addr: addr, size: size}, nil
}

// Addr is the callable entry of the block.
func (b *execBlock) Addr() uintptr {
	if b == nil {
		return 0
	}
	return b.addr
}

// write copies data into the block at off. Valid only while the block is
// still writable, before seal.
func (b *execBlock) write(off int, data []byte) {
	copy(byteSlice(b.addr+uintptr(off), len(data)), data)
}

// fill pads [off, size) with v; int3 padding makes a stray jump into the
// block trap instead of running leftover bytes.
func (b *execBlock) fill(off int, v byte) {
	s := byteSlice(b.addr+uintptr(off), b.size-off)
	for i := range s {
		s[i] = v
	}
}

// seal drops write permission once the block is populated. Failure
// leaves the block rwx, which still executes fine.
func (b *execBlock) seal() {
	if err := osProtectExecRead(b.addr, b.size); err != nil {
		log.Printf("[WARNING] sealing executable block at %#x: %v", b.addr, err)
	}
}

// release frees the block exactly once; later calls are no-ops so an
// ownership bug cannot double-free executable memory.
func (b *execBlock) release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	if err := osFreeExec(b.addr, b.size); err != nil {
		log.Printf("[WARNING] freeing executable block at %#x: %v", b.addr, err)
	}
	b.addr = 0
}
