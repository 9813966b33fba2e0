package chem

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexagon(m *Molecule) []int {
	atoms := make([]int, 6)
	for i := range atoms {
		atoms[i] = m.AddAtom(6)
	}
	for i := 0; i < 6; i++ {
		m.AddBond(atoms[i], atoms[(i+1)%6], BondSingle)
	}
	return atoms
}

func TestPerceiveSSSR_NoRingInAcyclicChain(t *testing.T) {
	m := NewMolecule()
	a := m.AddAtom(6)
	b := m.AddAtom(6)
	c := m.AddAtom(6)
	m.AddBond(a, b, BondSingle)
	m.AddBond(b, c, BondSingle)

	assert.Empty(t, PerceiveSSSR(m))
}

func TestPerceiveSSSR_SingleHexagon(t *testing.T) {
	m := NewMolecule()
	hexagon(m)

	rings := PerceiveSSSR(m)
	require.Len(t, rings, 1)
	assert.Len(t, rings[0].Atoms, 6)
	assert.Len(t, rings[0].Bonds(m), 6)
}

// TestPerceiveSSSR_FusedBicyclic builds a naphthalene-like fused pair of
// hexagons sharing one edge, and checks SSSR returns exactly the two
// smallest rings (not the 10-membered perimeter).
func TestPerceiveSSSR_FusedBicyclic(t *testing.T) {
	m := NewMolecule()
	atoms := make([]int, 10)
	for i := range atoms {
		atoms[i] = m.AddAtom(6)
	}
	// Ring 1: 0-1-2-3-4-5-0 (shared edge 0-5 with ring 2).
	ring1 := []int{0, 1, 2, 3, 4, 5}
	for i := 0; i < len(ring1); i++ {
		m.AddBond(atoms[ring1[i]], atoms[ring1[(i+1)%len(ring1)]], BondSingle)
	}
	// Ring 2 reuses the 0-5 edge and adds four new atoms 6,7,8,9.
	ring2 := []int{5, 6, 7, 8, 9, 0}
	for i := 0; i < len(ring2)-1; i++ {
		m.AddBond(atoms[ring2[i]], atoms[ring2[i+1]], BondSingle)
	}

	rings := PerceiveSSSR(m)
	require.Len(t, rings, 2)
	sizes := []int{len(rings[0].Atoms), len(rings[1].Atoms)}
	sort.Ints(sizes)
	assert.Equal(t, []int{6, 6}, sizes)
}

func TestRing_BondsIncludesWrapAroundEdge(t *testing.T) {
	m := NewMolecule()
	atoms := hexagon(m)
	r := Ring{Atoms: atoms}
	bonds := r.Bonds(m)
	require.Len(t, bonds, 6)
	for _, bi := range bonds {
		assert.GreaterOrEqual(t, bi, 0)
	}
}
