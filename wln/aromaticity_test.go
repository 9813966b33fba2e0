package wln

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-luo/wlnchem/chem"
)

func buildAromaticHexagon(m *chem.Molecule) []int {
	atoms := make([]int, 6)
	for i := range atoms {
		atoms[i] = m.AddAtom(6)
		m.Atoms[atoms[i]].Aromatic = true
	}
	for i := 0; i < 6; i++ {
		bi := m.AddBond(atoms[i], atoms[(i+1)%6], chem.BondAromatic)
		m.Bonds[bi].Aromatic = true
	}
	return atoms
}

func TestKekulize_BenzeneAlternates(t *testing.T) {
	m := chem.NewMolecule()
	buildAromaticHexagon(m)

	err := AromaticityResolver{}.Kekulize(m)
	require.NoError(t, err)

	doubles, singles := 0, 0
	for _, b := range m.Bonds {
		switch b.Order {
		case chem.BondDouble:
			doubles++
		case chem.BondSingle:
			singles++
		}
	}
	assert.Equal(t, 3, doubles)
	assert.Equal(t, 3, singles)
}

func TestKekulize_EveryAtomCoveredExactlyOnce(t *testing.T) {
	m := chem.NewMolecule()
	atoms := buildAromaticHexagon(m)

	require.NoError(t, AromaticityResolver{}.Kekulize(m))

	for _, a := range atoms {
		doubleCount := 0
		for _, e := range m.Vertices[a].Edges {
			if m.Bonds[e].Order == chem.BondDouble {
				doubleCount++
			}
		}
		assert.Equal(t, 1, doubleCount, "every aromatic ring atom must get exactly one double bond")
	}
}

func TestKekulize_NoAromaticAtomsIsNoOp(t *testing.T) {
	m := chem.NewMolecule()
	a := m.AddAtom(6)
	b := m.AddAtom(6)
	m.AddBond(a, b, chem.BondSingle)

	assert.NoError(t, AromaticityResolver{}.Kekulize(m))
	assert.Equal(t, chem.BondSingle, m.Bonds[0].Order)
}

// TestKekulize_OddAromaticCycleFails exercises the non-fatal
// KekulizationFailure path: an odd-membered fully aromatic ring has no
// perfect matching.
func TestKekulize_OddAromaticCycleFails(t *testing.T) {
	m := chem.NewMolecule()
	atoms := make([]int, 5)
	for i := range atoms {
		atoms[i] = m.AddAtom(6)
		m.Atoms[atoms[i]].Aromatic = true
	}
	for i := 0; i < 5; i++ {
		bi := m.AddBond(atoms[i], atoms[(i+1)%5], chem.BondAromatic)
		m.Bonds[bi].Aromatic = true
	}

	err := AromaticityResolver{}.Kekulize(m)
	assert.Error(t, err)
}
