package wln

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-luo/wlnchem/chem"
)

func TestFindRingSystems_SingleHexagonIsOneSystem(t *testing.T) {
	m := chem.NewMolecule()
	hexagon(m)
	systems := findRingSystems(m)
	require.Len(t, systems, 1)
	assert.Len(t, systems[0].rings, 1)
}

func TestFindRingSystems_DisjointRingsAreSeparateSystems(t *testing.T) {
	m := chem.NewMolecule()
	hexagon(m)
	hexagon(m)
	systems := findRingSystems(m)
	assert.Len(t, systems, 2)
}

func hexagon(m *chem.Molecule) []int {
	atoms := make([]int, 6)
	for i := range atoms {
		atoms[i] = m.AddAtom(6)
	}
	for i := 0; i < 6; i++ {
		m.AddBond(atoms[i], atoms[(i+1)%6], chem.BondSingle)
	}
	return atoms
}

func TestRingSystem_ClassifyMonocyclic(t *testing.T) {
	m := chem.NewMolecule()
	hexagon(m)
	systems := findRingSystems(m)
	require.Len(t, systems, 1)
	assert.Equal(t, kindMonocyclic, systems[0].classify())
}

func TestRingSystem_ClassifyPolycyclic(t *testing.T) {
	m := chem.NewMolecule()
	_, err := BuildRing(m, RingSpec{
		TotalSize: 10,
		Subrings: []SubringDesc{
			{Size: 6, StartLocant: 1, Aromatic: false},
			{Size: 6, StartLocant: 1, Aromatic: false},
		},
	})
	require.NoError(t, err)
	systems := findRingSystems(m)
	require.Len(t, systems, 1)
	assert.NotEqual(t, kindMonocyclic, systems[0].classify())
}

func TestSolveRingSystem_MonocyclicProducesFullPath(t *testing.T) {
	m := chem.NewMolecule()
	atoms := hexagon(m)
	systems := findRingSystems(m)
	require.Len(t, systems, 1)

	result, ok := solveRingSystem(m, &systems[0])
	require.True(t, ok)
	assert.Len(t, result.order, len(atoms))
}
