package chem

import "fmt"

// elementInfo holds the periodic-table facts the rest of the package needs.
type elementInfo struct {
	Symbol        string
	Group         int
	Period        int
	CanBeAromatic bool
}

// elementData is indexed by atomic number; index 0 is unused.
var elementData = []elementInfo{
	{},
	{"H", 1, 1, false},
	{"He", 8, 1, false},
	{"Li", 1, 2, false},
	{"Be", 2, 2, false},
	{"B", 3, 2, true},
	{"C", 4, 2, true},
	{"N", 5, 2, true},
	{"O", 6, 2, false},
	{"F", 7, 2, true},
	{"Ne", 8, 2, false},
	{"Na", 1, 3, false},
	{"Mg", 2, 3, false},
	{"Al", 3, 3, true},
	{"Si", 4, 3, false},
	{"P", 5, 3, true},
	{"S", 6, 3, false},
	{"Cl", 7, 3, true},
	{"Ar", 8, 3, false},
	{"K", 1, 4, false},
	{"Ca", 2, 4, false},
	{"Sc", 3, 4, false},
	{"Ti", 4, 4, false},
	{"V", 5, 4, false},
	{"Cr", 6, 4, false},
	{"Mn", 7, 4, false},
	{"Fe", 8, 4, false},
	{"Co", 8, 4, false},
	{"Ni", 8, 4, false},
	{"Cu", 1, 4, false},
	{"Zn", 2, 4, false},
	{"Ga", 3, 4, true},
	{"Ge", 4, 4, false},
	{"As", 5, 4, true},
	{"Se", 6, 4, false},
	{"Br", 7, 4, true},
	{"Kr", 8, 4, false},
	{"Rb", 1, 5, false},
	{"Sr", 2, 5, false},
	{"Y", 3, 5, false},
	{"Zr", 4, 5, false},
	{"Nb", 5, 5, false},
	{"Mo", 6, 5, false},
	{"Tc", 7, 5, false},
	{"Ru", 8, 5, false},
	{"Rh", 8, 5, false},
	{"Pd", 8, 5, false},
	{"Ag", 1, 5, false},
	{"Cd", 2, 5, false},
	{"In", 3, 5, false},
	{"Sn", 4, 5, false},
	{"Sb", 5, 5, false},
	{"Te", 6, 5, false},
	{"I", 7, 5, true},
	{"Xe", 8, 5, false},
	{"Cs", 1, 6, false},
	{"Ba", 2, 6, false},
	{"La", 3, 6, false},
	{"Ce", 3, 6, false},
	{"Pr", 3, 6, false},
	{"Nd", 3, 6, false},
	{"Pm", 3, 6, false},
	{"Sm", 3, 6, false},
	{"Eu", 3, 6, false},
	{"Gd", 3, 6, false},
	{"Tb", 3, 6, false},
	{"Dy", 3, 6, false},
	{"Ho", 3, 6, false},
	{"Er", 3, 6, false},
	{"Tm", 3, 6, false},
	{"Yb", 3, 6, false},
	{"Lu", 3, 6, false},
	{"Hf", 4, 6, false},
	{"Ta", 5, 6, false},
	{"W", 6, 6, false},
	{"Re", 7, 6, false},
	{"Os", 8, 6, false},
	{"Ir", 8, 6, false},
	{"Pt", 8, 6, false},
	{"Au", 1, 6, false},
	{"Hg", 2, 6, false},
	{"Tl", 3, 6, false},
	{"Pb", 4, 6, false},
	{"Bi", 5, 6, false},
	{"Po", 6, 6, false},
	{"At", 7, 6, true},
	{"Rn", 8, 6, false},
	{"Fr", 1, 7, false},
	{"Ra", 2, 7, false},
	{"Ac", 3, 7, false},
	{"Th", 3, 7, false},
	{"Pa", 3, 7, false},
	{"U", 3, 7, false},
	{"Np", 3, 7, false},
	{"Pu", 3, 7, false},
	{"Am", 3, 7, false},
	{"Cm", 3, 7, false},
	{"Bk", 3, 7, false},
	{"Cf", 3, 7, false},
	{"Es", 3, 7, false},
	{"Fm", 3, 7, false},
	{"Md", 3, 7, false},
	{"No", 3, 7, false},
	{"Lr", 3, 7, false},
	{"Rf", 4, 7, false},
	{"Db", 5, 7, false},
	{"Sg", 6, 7, false},
	{"Bh", 7, 7, false},
	{"Hs", 8, 7, false},
	{"Mt", 8, 7, false},
	{"Ds", 8, 7, false},
	{"Rg", 1, 7, false},
	{"Cn", 2, 7, false},
	{"Nh", 3, 7, false},
	{"Fl", 4, 7, false},
	{"Mc", 5, 7, false},
	{"Lv", 6, 7, false},
	{"Ts", 7, 7, false},
	{"Og", 8, 7, false},
}

var symbolToNumber = func() map[string]int {
	m := make(map[string]int, len(elementData))
	for i := 1; i < len(elementData); i++ {
		m[elementData[i].Symbol] = i
	}
	return m
}()

// ElementFromSymbol returns the atomic number for a 1- or 2-character
// periodic symbol, backing wln's "-XX-" dash-block element notation.
func ElementFromSymbol(symbol string) (int, error) {
	if n, ok := symbolToNumber[symbol]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("chem: unknown element symbol %q", symbol)
}

// ElementSymbol returns the periodic symbol for an atomic number, the
// inverse used by the writer's dash-block emission.
func ElementSymbol(number int) string {
	if number > 0 && number < len(elementData) {
		return elementData[number].Symbol
	}
	return fmt.Sprintf("E%d", number)
}

// ElementCanBeAromatic reports the element table's CanBeAromatic flag for
// the given atomic number, and false for numbers outside the table.
func ElementCanBeAromatic(number int) bool {
	if number > 0 && number < len(elementData) {
		return elementData[number].CanBeAromatic
	}
	return false
}
