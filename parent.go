package blake3

// parentOutput builds the output record for an internal tree node whose
// two message halves are its children's chaining values. The offset is
// always 0 and the block is always full (BlockLen) for parent nodes.
func parentOutput(leftCV, rightCV, key [8]uint32, flags uint32) output {
	var blockWords [16]uint32
	copy(blockWords[0:8], leftCV[:])
	copy(blockWords[8:16], rightCV[:])
	return output{
		inputCV:    key,
		blockWords: blockWords,
		offset:     0,
		blockLen:   BlockLen,
		flags:      flagParent | flags,
	}
}
