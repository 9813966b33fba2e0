// Package wln implements the Wiswesser Line Notation reader and writer:
// the ring builder (PathSolver III), the byte-driven reader state machine,
// the path-finding writer (PathFinderIIIa/b), and the aromaticity
// resolver. It is a consumer of chem.Molecule, never the other way
// around.
package wln

import "github.com/cx-luo/wlnchem/chem"

// LetterAtom describes how a single WLN letter expands into chemistry:
// the atomic number it introduces, its assumed valence, and how many
// further substituents it accepts before auto-closing.
type LetterAtom struct {
	Number      int
	Valence     int
	Branching   int  // further substituents accepted; 0 = terminator
	ImpliedH    int  // hydrogens implied when no substituents follow
	DoubleBondO bool // V: emit an attached =O
	IsRingMacro bool // R: inline benzene
	IsDioxo     bool // W: dioxo modifier on the previous atom
}

// letterTable is the closed set of 20 single-letter atom codes. Digits
// are handled separately (see ChainLength).
var letterTable = map[byte]LetterAtom{
	'B': {Number: 5, Valence: 3, Branching: 2},
	'C': {Number: 6, Valence: 4, Branching: 2},
	'E': {Number: 35, Valence: 1, Branching: 0},
	'F': {Number: 9, Valence: 1, Branching: 0},
	'G': {Number: 17, Valence: 1, Branching: 0},
	'H': {Number: 1, Valence: 1, Branching: 0},
	'I': {Number: 53, Valence: 1, Branching: 0},
	'K': {Number: 7, Valence: 4, Branching: 3, ImpliedH: 0}, // N+
	'M': {Number: 7, Valence: 3, Branching: 1, ImpliedH: 1},
	'N': {Number: 7, Valence: 3, Branching: 2},
	'O': {Number: 8, Valence: 2, Branching: 0},
	'P': {Number: 15, Valence: 5, Branching: 3},
	'Q': {Number: 8, Valence: 2, Branching: 0, ImpliedH: 1},
	'R': {Number: 6, IsRingMacro: true},
	'S': {Number: 16, Valence: 6, Branching: 2},
	'V': {Number: 6, Valence: 4, Branching: 0, DoubleBondO: true},
	'W': {IsDioxo: true},
	'X': {Number: 6, Valence: 4, Branching: 4},
	'Y': {Number: 6, Valence: 4, Branching: 3},
	'Z': {Number: 7, Valence: 3, Branching: 0, ImpliedH: 2},
}

// LetterToAtom looks up a single WLN letter. ok is false for letters
// outside the 20-entry table (U, J, L, T, A, D are structural
// operators/ring keywords handled directly by the reader state machine,
// not atoms).
func LetterToAtom(ch byte) (LetterAtom, bool) {
	la, ok := letterTable[ch]
	return la, ok
}

// IsBranchingLetter reports whether ch opens a dependency-stack branch
// entry: Y, X, K, N, P, S, B each push onto the branch stack.
func IsBranchingLetter(ch byte) bool {
	switch ch {
	case 'Y', 'X', 'K', 'N', 'P', 'S', 'B':
		return true
	}
	return false
}

// IsTerminatingLetter reports whether ch closes back to the last open
// branch: Q, E, F, G, I, Z are the terminating letters.
func IsTerminatingLetter(ch byte) bool {
	switch ch {
	case 'Q', 'E', 'F', 'G', 'I', 'Z':
		return true
	}
	return false
}

// TwoLetterToAtom resolves an element symbol found inside a "-XX-" dash
// block to its atomic number. It simply delegates to the
// general periodic table so the reader and the rest of the chemistry
// toolkit can never disagree on atomic numbers.
func TwoLetterToAtom(symbol string) (int, bool) {
	n, err := chem.ElementFromSymbol(symbol)
	if err != nil {
		return 0, false
	}
	return n, true
}

// letterForElement is the writer's reverse of letterTable: the small set
// of heteroatom letters that stand for a bare element with no extra
// branching/charge decoration (O, N, S, P, B), used to render ring
// heteroatom substitutions and simple acyclic terminal atoms. Elements
// outside this set (halogens, anything two-letter) are written via a
// dash-element block instead.
var letterForElement = map[int]byte{
	8:  'O',
	7:  'N',
	16: 'S',
	15: 'P',
	5:  'B',
}

// LetterForElement returns the single WLN letter for a bare, uncharged
// occurrence of the given atomic number, if one exists in the closed
// 20-letter table.
func LetterForElement(number int) (byte, bool) {
	ch, ok := letterForElement[number]
	return ch, ok
}

// ChainLength parses a run of decimal digits into a straight carbon-chain
// length. The reader does not reject a leading '0'; it reaches this
// function, where it adds nothing to the value. This function only
// concatenates decimal digits.
func ChainLength(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}

// ExpandChain appends n sp3 carbons to molecule m, bonding them head to
// tail and to the given anchor atom (or leaving them free-standing if
// anchor < 0), returning the index of the last carbon in the chain (the
// new attachment point) and the full chain's atom indices.
func ExpandChain(m *chem.Molecule, anchor, n, firstBondOrder int) (last int, chain []int) {
	prev := anchor
	order := firstBondOrder
	for i := 0; i < n; i++ {
		idx := m.AddAtom(6)
		chain = append(chain, idx)
		if prev >= 0 {
			m.AddBond(prev, idx, order)
		}
		prev = idx
		order = chem.BondSingle
	}
	return prev, chain
}
