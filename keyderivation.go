package blake3

// NewDeriveKeyContext constructs a Hasher for the first step of key
// derivation: hashing a globally unique context string. Its output, fed
// into NewDeriveKey, becomes the key for the second step (hashing key
// material). Both steps use the DERIVE_KEY flag; only the key differs.
func NewDeriveKeyContext() *Hasher {
	return newHasher(iv, flagDeriveKey)
}

// DeriveKeyContext hashes context (which should be a hardcoded,
// globally-unique, application-specific string, not attacker-controlled
// input) and returns the resulting context key, ready to pass to
// NewDeriveKey.
func DeriveKeyContext(context string) [KeyLen]byte {
	h := NewDeriveKeyContext()
	// Update on a *Hasher never fails for an input this short.
	_ = h.Update([]byte(context))
	return h.Finalize()
}

// DeriveKey is a convenience wrapper around the two-step key-derivation
// dance: it hashes context to obtain a context key, constructs a
// derive-key Hasher from it, absorbs keyMaterial, and returns outLen bytes
// of derived output.
func DeriveKey(context string, keyMaterial []byte, outLen int) ([]byte, error) {
	contextKey := DeriveKeyContext(context)
	h, err := NewDeriveKey(contextKey[:])
	if err != nil {
		return nil, err
	}
	if err := h.Update(keyMaterial); err != nil {
		return nil, err
	}
	out := make([]byte, outLen)
	h.FinalizeExtended(out)
	return out, nil
}
