package hook

import "github.com/pkg/errors"

// relaySize rounds the absolute-jump stub up to one 16-byte block.
const relaySize = 16

// newRelay places an absolute jump to dest in a block allocated near
// site. It bridges the gap when the interceptor sits outside rel32
// range of the patch site: the patch near-jumps to the relay and the
// relay far-jumps to the interceptor.
func newRelay(site, dest uintptr) (*execBlock, error) {
	blk, err := allocExec(site, relaySize)
	if err != nil {
		return nil, errors.Wrap(err, "relay")
	}
	code := farJumpTo(dest)
	blk.write(0, code)
	blk.fill(len(code), 0xCC)
	blk.seal()
	return blk, nil
}
