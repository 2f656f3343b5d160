package blake3

// chunkState streams bytes into BlockLen-sized blocks, compressing each
// completed block in place and carrying the chunk's running chaining
// value. It is replaced wholesale by the Hasher every ChunkLen bytes.
type chunkState struct {
	cv               [8]uint32
	offset           uint64
	block            [BlockLen]byte
	blockLen         int // bytes currently buffered, 0..BlockLen
	blocksCompressed int // 0..ChunkLen/BlockLen-1 while streaming
	flags            uint32
}

func newChunkState(key [8]uint32, offset uint64, flags uint32) *chunkState {
	return &chunkState{cv: key, offset: offset, flags: flags}
}

// length returns the total number of input bytes absorbed by this chunk so far.
func (c *chunkState) length() int {
	return BlockLen*c.blocksCompressed + c.blockLen
}

// startFlag returns CHUNK_START if no block of this chunk has yet been
// compressed, else 0.
func (c *chunkState) startFlag() uint32 {
	if c.blocksCompressed == 0 {
		return flagChunkStart
	}
	return 0
}

// update absorbs input, compressing completed blocks as they fill. A full
// buffer is only compressed once more input arrives behind it: the final
// block of a chunk is always left pending for output() to finalize, since
// only it knows whether CHUNK_END applies.
func (c *chunkState) update(input []byte) {
	for len(input) > 0 {
		if c.blockLen == BlockLen {
			var blockWords [16]uint32
			wordsFromLE(c.block[:], blockWords[:])
			c.cv = compress(&c.cv, &blockWords, c.offset, BlockLen, c.flags|c.startFlag())
			c.blocksCompressed++
			c.block = [BlockLen]byte{}
			c.blockLen = 0
		}

		want := BlockLen - c.blockLen
		take := want
		if take > len(input) {
			take = len(input)
		}
		copy(c.block[c.blockLen:], input[:take])
		c.blockLen += take
		input = input[take:]
	}
}

// output finalizes this chunk's pending block into an output record. Only
// valid once the chunk has received between 1 and ChunkLen input bytes.
func (c *chunkState) output() output {
	var blockWords [16]uint32
	wordsFromLE(c.block[:], blockWords[:])
	return output{
		inputCV:    c.cv,
		blockWords: blockWords,
		offset:     c.offset,
		blockLen:   uint32(c.blockLen),
		flags:      c.flags | c.startFlag() | flagChunkEnd,
	}
}
