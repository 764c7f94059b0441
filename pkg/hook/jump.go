package hook

import (
	"encoding/binary"
	"math"
)

// PatchSize is the number of bytes replaced at the target entry point:
// one jump opcode plus a signed 32-bit displacement.
const PatchSize = 5

const opJmpRel32 = 0xE9

// rel32 computes the displacement for a near jump written at site and
// landing on dest. ok is false when the distance does not fit in 32 bits.
func rel32(site, dest uintptr) (int32, bool) {
	d := int64(dest) - int64(site) - PatchSize
	if d < math.MinInt32 || d > math.MaxInt32 {
		return 0, false
	}
	return int32(d), true
}

// reachable reports whether a near jump at site can land on dest.
func reachable(site, dest uintptr) bool {
	_, ok := rel32(site, dest)
	return ok
}

// jumpTo encodes the five-byte near jump from site to dest.
func jumpTo(site, dest uintptr) ([PatchSize]byte, error) {
	var buf [PatchSize]byte
	d, ok := rel32(site, dest)
	if !ok {
		return buf, ErrDisplacement
	}
	buf[0] = opJmpRel32
	binary.LittleEndian.PutUint32(buf[1:], uint32(d))
	return buf, nil
}
