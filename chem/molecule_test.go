package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMolecule_AddAtomAddBond(t *testing.T) {
	m := NewMolecule()
	a := m.AddAtom(6)
	b := m.AddAtom(8)
	bi := m.AddBond(a, b, BondDouble)

	assert.Equal(t, 2, m.AtomCount())
	assert.Equal(t, 1, m.BondCount())
	assert.Equal(t, b, m.Bonds[bi].Other(a))
	assert.Equal(t, a, m.Bonds[bi].Other(b))
	assert.Equal(t, bi, m.BondBetween(a, b))
	assert.Equal(t, bi, m.BondBetween(b, a))
	assert.Equal(t, -1, m.BondBetween(a, a))
}

func TestMolecule_AddBondPanicsOnBadIndex(t *testing.T) {
	m := NewMolecule()
	m.AddAtom(6)
	assert.Panics(t, func() {
		m.AddBond(0, 5, BondSingle)
	})
}

func TestMolecule_NeighborsAndDegree(t *testing.T) {
	m := NewMolecule()
	c := m.AddAtom(6)
	o1 := m.AddAtom(8)
	o2 := m.AddAtom(8)
	m.AddBond(c, o1, BondSingle)
	m.AddBond(c, o2, BondDouble)

	assert.Equal(t, 2, m.Degree(c))
	assert.ElementsMatch(t, []int{o1, o2}, m.Neighbors(c))
	assert.Equal(t, BondSingle+BondDouble, m.BondOrderSum(c))
}

func TestMolecule_EditRevisionIncrements(t *testing.T) {
	m := NewMolecule()
	before := m.EditRevision()
	a := m.AddAtom(6)
	b := m.AddAtom(6)
	m.AddBond(a, b, BondSingle)
	assert.Greater(t, m.EditRevision(), before)
}

func TestPermittedValence(t *testing.T) {
	tests := []struct {
		number, charge, want int
	}{
		{6, 0, 4},  // carbon
		{7, 0, 3},  // nitrogen
		{7, 1, 4},  // N+ (e.g. K letter)
		{8, 0, 2},  // oxygen
		{8, -1, 1}, // O-
		{16, 0, 2}, // sulfur
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, PermittedValence(tc.number, tc.charge))
	}
}

// TestValenceInvariant checks that bond order sum plus hydrogens must not
// exceed the permitted valence, for a handful of hand-built molecules.
func TestValenceInvariant(t *testing.T) {
	m := NewMolecule()
	c := m.AddAtom(6)
	h1 := m.AddAtom(1)
	h2 := m.AddAtom(1)
	h3 := m.AddAtom(1)
	h4 := m.AddAtom(1)
	m.AddBond(c, h1, BondSingle)
	m.AddBond(c, h2, BondSingle)
	m.AddBond(c, h3, BondSingle)
	m.AddBond(c, h4, BondSingle)

	require.Equal(t, 4, m.BondOrderSum(c))
	assert.Equal(t, PermittedValence(6, 0), m.BondOrderSum(c))
}
