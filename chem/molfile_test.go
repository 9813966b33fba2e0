package chem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ethanolMolfile = `ethanol
  wlnchem01010000002D

  3  2  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C  0  0  0  0  0  0  0  0  0  0  0  0
    0.0000    0.0000    0.0000 C  0  0  0  0  0  0  0  0  0  0  0  0
    0.0000    0.0000    0.0000 O  0  0  0  0  0  0  0  0  0  0  0  0
  1  2  1  0  0  0  0
  2  3  1  0  0  0  0
M  END
`

func TestMolfileLoader_LoadMolecule_Basic(t *testing.T) {
	l := NewMolfileLoader(strings.NewReader(ethanolMolfile))
	m, err := l.LoadMolecule()
	require.NoError(t, err)

	require.Equal(t, 3, m.AtomCount())
	assert.Equal(t, 6, m.Atoms[0].Number)
	assert.Equal(t, 6, m.Atoms[1].Number)
	assert.Equal(t, 8, m.Atoms[2].Number)
	require.Equal(t, 2, m.BondCount())
	assert.Equal(t, BondSingle, m.Bonds[0].Order)
	assert.Equal(t, "ethanol", m.Name)
}

func TestMolfileLoader_ChargeAndIsotopeProperties(t *testing.T) {
	src := `charged
  wlnchem01010000002D

  1  0  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 N  0  0  0  0  0  0  0  0  0  0  0  0
M  CHG  1   1   1
M  ISO  1   1  15
M  END
`
	l := NewMolfileLoader(strings.NewReader(src))
	m, err := l.LoadMolecule()
	require.NoError(t, err)
	require.Equal(t, 1, m.AtomCount())
	assert.Equal(t, 1, m.Atoms[0].Charge)
	assert.Equal(t, 15, m.Atoms[0].Isotope)
}

func TestMolfileLoader_TruncatedFileIsError(t *testing.T) {
	src := "only one line\n"
	l := NewMolfileLoader(strings.NewReader(src))
	_, err := l.LoadMolecule()
	assert.Error(t, err)
}

func TestMolfileSaver_RoundTripsThroughLoader(t *testing.T) {
	m := NewMolecule()
	c := m.AddAtom(6)
	o := m.AddAtom(8)
	m.AddBond(c, o, BondDouble)
	m.Atoms[o].Charge = -1

	var buf strings.Builder
	require.NoError(t, NewMolfileSaver(&buf).SaveMolecule(m))

	m2, err := NewMolfileLoader(strings.NewReader(buf.String())).LoadMolecule()
	require.NoError(t, err)

	require.Equal(t, m.AtomCount(), m2.AtomCount())
	require.Equal(t, m.BondCount(), m2.BondCount())
	assert.Equal(t, m.Atoms[0].Number, m2.Atoms[0].Number)
	assert.Equal(t, m.Atoms[1].Number, m2.Atoms[1].Number)
	assert.Equal(t, m.Bonds[0].Order, m2.Bonds[0].Order)
	assert.Equal(t, -1, m2.Atoms[1].Charge)
}
