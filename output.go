package blake3

// output bundles everything needed to either compress once more into a
// chaining value, or stream arbitrarily many root output bytes. It is
// produced and consumed within a single call; nothing mutates it.
type output struct {
	inputCV    [8]uint32
	blockWords [16]uint32
	offset     uint64
	blockLen   uint32
	flags      uint32
}

// chainingValue compresses once and returns the resulting 8-word CV. The
// ROOT flag must never be set here: it is reserved for rootOutput.
func (o output) chainingValue() [8]uint32 {
	cv := o.inputCV
	return compress(&cv, &o.blockWords, o.offset, o.blockLen, o.flags)
}

// rootOutput writes len(out) bytes of extendable output, starting at
// o.offset and incrementing by 2*OutLen (one compression's worth) per
// iteration. The final iteration may be truncated to the tail length.
func (o *output) rootOutput(out []byte) {
	offset := o.offset
	for len(out) > 0 {
		words := compressExtended(&o.inputCV, &o.blockWords, offset, o.blockLen, o.flags|flagRoot)
		n := len(out)
		if n > 2*OutLen {
			n = 2 * OutLen
		}
		var block [2 * OutLen]byte
		bytesFromLE(words[:], block[:])
		copy(out[:n], block[:n])
		out = out[n:]
		offset += 2 * OutLen
	}
}
