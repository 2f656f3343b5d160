package blake3

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// After absorbing exactly N*ChunkLen bytes, the subtree stack holds the
// chaining values of the N-1 chunks that have actually been pushed. The
// Nth chunk, having landed exactly on the boundary, is held lazily in
// chunkState until a byte arrives behind it (see TestFourChunksHoldLastChunkLazily
// for a worked example). Occupancy is therefore popcount(N-1), not
// popcount(N).
func TestSubtreeStackOccupancyMatchesPopcount(t *testing.T) {
	for n := 1; n <= 20; n++ {
		h := New()
		require.NoError(t, h.Update(sequentialPattern(n*ChunkLen)))
		want := bits.OnesCount(uint(n - 1))
		assert.Equal(t, want, h.numSubtrees, "n=%d chunks", n)
		assert.Equal(t, ChunkLen, h.chunkState.length(), "n=%d: final chunk held lazily", n)
	}
}

// The stack shape must also be independent of how the N*ChunkLen bytes
// were split across Update calls.
func TestSubtreeStackShapeIndependentOfSplitting(t *testing.T) {
	const n = 11 // popcount(n-1) = popcount(10) = 2: subtree sizes 8,2 chunks, plus the lazily-held 11th
	input := sequentialPattern(n * ChunkLen)

	whole := New()
	require.NoError(t, whole.Update(input))

	piecewise := New()
	step := 777
	for i := 0; i < len(input); i += step {
		end := i + step
		if end > len(input) {
			end = len(input)
		}
		require.NoError(t, piecewise.Update(input[i:end]))
	}

	assert.Equal(t, whole.numSubtrees, piecewise.numSubtrees)
	assert.Equal(t, whole.subtreeStack, piecewise.subtreeStack)
	assert.Equal(t, whole.Finalize(), piecewise.Finalize())
}

// Pushing a chunk CV when the stack is already at capacity must fail
// rather than corrupt state.
func TestPushChunkChainingValueRejectsOverflow(t *testing.T) {
	h := New()
	h.numSubtrees = maxSubtrees
	err := h.pushChunkChainingValue([8]uint32{1, 2, 3, 4, 5, 6, 7, 8}, ChunkLen)
	assert.ErrorIs(t, err, ErrInputTooLong)
	assert.Equal(t, maxSubtrees, h.numSubtrees, "failed push must not mutate occupancy")
}
