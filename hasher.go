package blake3

import "math/bits"

// Hasher is an incremental, tree-structured hasher. It is a fixed-size
// value: all state is held inline (no heap allocation beyond the current
// chunkState, which is itself small and short-lived), and a zero Hasher is
// not valid. Construct one with New, NewKeyed, or NewDeriveKey.
//
// A Hasher is not safe for concurrent mutation. Clone it to obtain an
// independent continuation that shares no mutable state.
type Hasher struct {
	chunkState   *chunkState
	key          [8]uint32
	subtreeStack [maxSubtrees][8]uint32
	numSubtrees  int
}

func newHasher(key [8]uint32, flags uint32) *Hasher {
	return &Hasher{
		chunkState: newChunkState(key, 0, flags),
		key:        key,
	}
}

// New constructs a Hasher in the default, unkeyed hashing mode.
func New() *Hasher {
	return newHasher(iv, 0)
}

// NewKeyed constructs a Hasher in keyed-hash mode. key must be exactly
// KeyLen bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	if len(key) != KeyLen {
		return nil, ErrInvalidKeyLength
	}
	var keyWords [8]uint32
	wordsFromLE(key, keyWords[:])
	return newHasher(keyWords, flagKeyedHash), nil
}

// NewDeriveKey constructs a Hasher in derive-key material mode, given a
// 32-byte context key (typically produced by DeriveKeyContext). contextKey
// must be exactly KeyLen bytes.
func NewDeriveKey(contextKey []byte) (*Hasher, error) {
	if len(contextKey) != KeyLen {
		return nil, ErrInvalidKeyLength
	}
	var keyWords [8]uint32
	wordsFromLE(contextKey, keyWords[:])
	return newHasher(keyWords, flagDeriveKey), nil
}

// mergeTwoSubtrees pops the top two subtree chaining values, compresses
// them into a parent CV, and pushes that CV back as the new top.
func (h *Hasher) mergeTwoSubtrees() {
	left := h.subtreeStack[h.numSubtrees-2]
	right := h.subtreeStack[h.numSubtrees-1]
	parent := parentOutput(left, right, h.key, h.chunkState.flags)
	h.subtreeStack[h.numSubtrees-2] = parent.chainingValue()
	h.numSubtrees--
}

// pushChunkChainingValue pushes a completed chunk's CV onto the subtree
// stack, then merges pairs until the occupancy matches popcount(total
// complete chunks). This keeps the stack shaped like the binary
// representation of the chunk count at all times.
func (h *Hasher) pushChunkChainingValue(cv [8]uint32, totalBytes uint64) error {
	if h.numSubtrees == maxSubtrees {
		return ErrInputTooLong
	}
	h.subtreeStack[h.numSubtrees] = cv
	h.numSubtrees++

	totalChunks := totalBytes / ChunkLen
	for h.numSubtrees > bits.OnesCount64(totalChunks) {
		h.mergeTwoSubtrees()
	}
	return nil
}

// Update absorbs more input into the hash state. It may be called any
// number of times; bytes are concatenated in call order with no
// reordering. Update never modifies input.
func (h *Hasher) Update(input []byte) error {
	for len(input) > 0 {
		if h.chunkState.length() == ChunkLen {
			chunkCV := h.chunkState.output().chainingValue()
			newOffset := h.chunkState.offset + ChunkLen
			if err := h.pushChunkChainingValue(chunkCV, newOffset); err != nil {
				return err
			}
			h.chunkState = newChunkState(h.key, newOffset, h.chunkState.flags)
		}

		want := ChunkLen - h.chunkState.length()
		take := want
		if take > len(input) {
			take = len(input)
		}
		h.chunkState.update(input[:take])
		input = input[take:]
	}
	return nil
}

// Write implements io.Writer (and hash.Hash). It never returns an error
// for inputs within the supported length; ErrInputTooLong surfaces only
// once a Hasher's lifetime input would exceed 2^64 bytes.
func (h *Hasher) Write(input []byte) (int, error) {
	if err := h.Update(input); err != nil {
		return 0, err
	}
	return len(input), nil
}

// finalizeExtended reconstructs the root output record and writes
// len(out) bytes of extendable output. It does not mutate the Hasher:
// repeated calls (with or without intervening Sum/Finalize calls, so long
// as there is no intervening Update) yield identical bytes.
func (h *Hasher) finalizeExtended(out []byte) {
	if h.numSubtrees == 0 {
		// The lone chunk is the root.
		o := h.chunkState.output()
		o.rootOutput(out)
		return
	}

	rightChild := h.chunkState.output().chainingValue()
	remaining := h.numSubtrees
	for {
		left := h.subtreeStack[remaining-1]
		o := parentOutput(left, rightChild, h.key, h.chunkState.flags)
		if remaining == 1 {
			o.rootOutput(out)
			return
		}
		rightChild = o.chainingValue()
		remaining--
	}
}

// Finalize returns the default OutLen-byte output. It does not mutate the
// Hasher.
func (h *Hasher) Finalize() [OutLen]byte {
	var out [OutLen]byte
	h.finalizeExtended(out[:])
	return out
}

// FinalizeExtended writes len(out) bytes of extendable output into out. It
// does not mutate the Hasher. For all L >= OutLen, the first OutLen bytes
// equal Finalize().
func (h *Hasher) FinalizeExtended(out []byte) {
	h.finalizeExtended(out)
}

// Sum appends the default output to b and returns the resulting slice, in
// the style of hash.Hash. It does not mutate the Hasher.
func (h *Hasher) Sum(b []byte) []byte {
	out := h.Finalize()
	return append(b, out[:]...)
}

// Reset restores the Hasher to its just-constructed state, ready to
// absorb a fresh input under the same key and mode. Unlike BLAKE2 (whose
// key material is consumed into the first block and cannot be
// recovered), BLAKE3 keeps the key as standalone words for the Hasher's
// lifetime, so this is always safe.
func (h *Hasher) Reset() {
	h.chunkState = newChunkState(h.key, 0, h.chunkState.flags)
	h.numSubtrees = 0
}

// Size returns the default output size in bytes, to satisfy hash.Hash.
func (h *Hasher) Size() int { return OutLen }

// BlockSize returns the compression block size in bytes, to satisfy
// hash.Hash.
func (h *Hasher) BlockSize() int { return BlockLen }

// Clone returns an independent Hasher continuing from the same state.
// The clone shares no mutable state with h.
func (h *Hasher) Clone() *Hasher {
	clone := *h
	chunkCopy := *h.chunkState
	clone.chunkState = &chunkCopy
	return &clone
}
