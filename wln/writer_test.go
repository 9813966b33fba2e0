package wln

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicaliseWLN_Idempotent exercises the round-trip invariant
// write(read(w)) == canonical(w). Since WriteWLN's exact token choices
// are canonical already, canonicalising twice must be a fixed point.
func TestCanonicaliseWLN_Idempotent(t *testing.T) {
	inputs := []string{
		"QY",
		"L6TJ",
		"L6J",
		"T6OJ",
		"WNR",
		"L66J",
		"1",
		"12",
		"R",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			m, err := Parse(in, false)
			require.NoError(t, err)

			once, err := CanonicaliseWLN(m, false)
			require.NoError(t, err)

			m2, err := Parse(once, false)
			require.NoError(t, err)
			twice, err := CanonicaliseWLN(m2, false)
			require.NoError(t, err)

			assert.Equal(t, once, twice, "canonicalising an already-canonical string must be a fixed point")
		})
	}
}

// TestWriteWLN_PreservesTopology checks that round-tripping through the
// writer and back through the reader preserves the molecule's structural
// fingerprint: atomic-number multiset, aromatic-atom count, and ring-size
// set.
func TestWriteWLN_PreservesTopology(t *testing.T) {
	inputs := []string{"QY", "L6TJ", "L6J", "T6OJ", "WNR", "L66J"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			m, err := Parse(in, false)
			require.NoError(t, err)

			out, err := WriteWLN(m, false)
			require.NoError(t, err)
			require.NotEmpty(t, out)

			m2, err := Parse(out, false)
			require.NoError(t, err)

			assert.Equal(t, atomicNumberMultiset(m), atomicNumberMultiset(m2))
			assert.Equal(t, aromaticAtomCount(m), aromaticAtomCount(m2))
			assert.Equal(t, ringSizes(t, m), ringSizes(t, m2))
		})
	}
}

// TestWriteWLN_RingBlockTToggleDirection exercises the fix where the
// writer can only emit 'T' to force a subring to non-aromatic inside an
// aromatic-default (L) block, never the reverse inside a hetero-default
// (T) block — stepRingBlock in the reader has no inverse toggle.
func TestWriteWLN_RingBlockTToggleDirection(t *testing.T) {
	m, err := Parse("L6TJ", false)
	require.NoError(t, err)
	assert.Equal(t, 0, aromaticAtomCount(m), "L6TJ's T toggle forces the subring non-aromatic")

	out, err := WriteWLN(m, false)
	require.NoError(t, err)

	m2, err := Parse(out, false)
	require.NoError(t, err)
	assert.Equal(t, 0, aromaticAtomCount(m2), "round-trip must preserve the non-aromatic ring")
}
