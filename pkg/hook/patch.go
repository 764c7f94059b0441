package hook

// applyPatch replaces the first len(patch) bytes at the target entry
// point. The enclosing pages are made writable for the duration of the
// copy and their previous protection restored afterwards; the copy never
// runs if write permission could not be obtained.
func applyPatch(site uintptr, patch []byte) error {
	return writeCode(site, patch)
}

// revertPatch writes the saved original bytes back over the patch site.
func revertPatch(site uintptr, original []byte) error {
	return writeCode(site, original)
}

func writeCode(addr uintptr, data []byte) error {
	dst := byteSlice(addr, len(data))
	return withPatchable(addr, len(data), func() {
		copy(dst, data)
	})
}
