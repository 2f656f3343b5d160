package blake3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DeriveKey must be equivalent to its two manual steps: DeriveKeyContext
// followed by NewDeriveKey plus an Update/FinalizeExtended.
func TestDeriveKeyMatchesManualSteps(t *testing.T) {
	context := "blake3 core test vectors 2026-07-30 context"
	keyMaterial := []byte("some key material, arbitrary length")

	got, err := DeriveKey(context, keyMaterial, 48)
	require.NoError(t, err)
	assert.Len(t, got, 48)

	contextKey := DeriveKeyContext(context)
	h, err := NewDeriveKey(contextKey[:])
	require.NoError(t, err)
	require.NoError(t, h.Update(keyMaterial))
	want := make([]byte, 48)
	h.FinalizeExtended(want)

	assert.Equal(t, want, got)
}

// Different contexts must derive different keys from the same material,
// and different material must derive different keys from the same context.
func TestDeriveKeyIsContextAndMaterialSensitive(t *testing.T) {
	material := []byte("shared material")

	a, err := DeriveKey("context A", material, OutLen)
	require.NoError(t, err)
	b, err := DeriveKey("context B", material, OutLen)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c, err := DeriveKey("context A", []byte("other material"), OutLen)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// NewDeriveKeyContext is itself a plain derive-key-flagged Hasher; hashing
// the same context string through it twice must agree with DeriveKeyContext.
func TestDeriveKeyContextIsDeterministic(t *testing.T) {
	const context = "repeatable context string"
	first := DeriveKeyContext(context)
	second := DeriveKeyContext(context)
	assert.Equal(t, first, second)

	h := NewDeriveKeyContext()
	require.NoError(t, h.Update([]byte(context)))
	assert.Equal(t, first, h.Finalize())
}
