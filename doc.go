// Package blake3 implements the core of a BLAKE3-family hash function: an
// incremental, tree-structured, keyed-and-derivable hash that maps an
// arbitrary-length input to an extendable output of arbitrary length. It
// supports three modes: default hashing, keyed hashing, and key derivation.
package blake3
