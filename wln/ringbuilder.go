package wln

import (
	"github.com/cx-luo/wlnchem/chem"
	"github.com/cx-luo/wlnchem/internal/wlnerr"
)

// SubringDesc is one contributing cycle to a fused polycyclic system:
// (size, start-locant, aromatic).
type SubringDesc struct {
	Size        int
	StartLocant int // 1-based locant, decoded from the WLN letter already
	Aromatic    bool
}

// BrokenLocantDesc synthesizes an off-path atom hung from Parent under
// the fixed 6-way tree; Child is 0..5 selecting the
// "-", "-&", "--", "--&", "-&-", "-&&" suffix.
type BrokenLocantDesc struct {
	Parent int
	Child  int
}

// RingSpec is the ring builder's input contract.
type RingSpec struct {
	TotalSize          int
	Subrings           []SubringDesc
	MulticyclicLocants []int
	BridgeLocants      []int
	PseudoPairs        [][2]int
	BrokenLocants      []BrokenLocantDesc
}

// RingResult is the ring builder's output contract: a skeleton labeled by
// locant, atom indices into the caller's molecule.
type RingResult struct {
	AtomByLocant map[int]int
	LocantByAtom map[int]int
}

// BuildRing executes PathSolver III: it allocates TotalSize sp3/aromatic
// carbon atoms into m, wires the backbone and every subring's closing
// bond, and returns the locant<->atom-index mapping the reader and
// writer both key off of.
func BuildRing(m *chem.Molecule, spec RingSpec) (*RingResult, error) {
	n := spec.TotalSize
	if n <= 0 {
		return nil, wlnerr.New(wlnerr.RingBuilder, -1, "ring size must be positive, got %d", n)
	}
	if m.AtomCount()+n > 1024 {
		return nil, wlnerr.New(wlnerr.CapacityExceeded, -1, "ring build would exceed 1024-atom cap")
	}

	atoms := make([]int, n)
	for i := 0; i < n; i++ {
		atoms[i] = m.AddAtom(6)
	}
	for i := 0; i < n-1; i++ {
		m.AddBond(atoms[i], atoms[i+1], chem.BondSingle)
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = 1
	}
	if n > 1 {
		remaining[0] = 2
		remaining[n-1] = 2
	}
	for _, loc := range spec.BridgeLocants {
		if idx := loc - 1; idx >= 0 && idx < n {
			remaining[idx]--
		}
	}
	for _, loc := range spec.MulticyclicLocants {
		if idx := loc - 1; idx >= 0 && idx < n {
			remaining[idx]++
		}
	}

	// next[i] is the 0-based index that closes a path started at i; it is
	// rewritten every time a ring closes starting at i, forming the
	// singly-linked "rewiring" PathSolver III relies on to walk fused
	// rings.
	next := make([]int, n)
	for i := 0; i < n-1; i++ {
		next[i] = i + 1
	}
	next[n-1] = -1

	aromaticAtom := make([]bool, n)

	for _, sr := range spec.Subrings {
		start := sr.StartLocant - 1
		if start < 0 || start >= n {
			return nil, wlnerr.New(wlnerr.Semantic, -1, "locant %d out of range for ring of size %d", sr.StartLocant, n)
		}
		for start < n && remaining[start] == 0 {
			start++
		}
		if start >= n {
			return nil, wlnerr.New(wlnerr.RingBuilder, -1, "impossible-fusion: no bind site for subring of size %d", sr.Size)
		}

		end, path, ok := walkFastPath(next, start, sr.Size)
		if !ok {
			end, path, ok = floodFillPath(m, atoms, remaining, start, sr.Size)
			if !ok {
				return nil, wlnerr.New(wlnerr.RingBuilder, -1, "ring-under-specified: cannot complete %d-membered subring from locant %s", sr.Size, EncodeLocant(sr.StartLocant))
			}
		}
		if remaining[start] <= 0 {
			return nil, wlnerr.New(wlnerr.RingBuilder, -1, "impossible-fusion: locant %s has no remaining ring-share", EncodeLocant(sr.StartLocant))
		}

		m.AddBond(atoms[start], atoms[end], chem.BondSingle)
		if sr.Aromatic {
			markAromaticPath(m, atoms, aromaticAtom, path)
		}
		remaining[start]--
		next[start] = end
	}

	result := &RingResult{
		AtomByLocant: make(map[int]int, n),
		LocantByAtom: make(map[int]int, n),
	}
	for i := 0; i < n; i++ {
		m.Atoms[atoms[i]].RingMember = true
		m.Atoms[atoms[i]].Locant = i + 1
		m.Atoms[atoms[i]].Aromatic = aromaticAtom[i]
		result.AtomByLocant[i+1] = atoms[i]
		result.LocantByAtom[atoms[i]] = i + 1
	}

	if err := applyBrokenLocants(m, result, spec.BrokenLocants); err != nil {
		return nil, err
	}
	if err := applyPseudoPairs(m, atoms, result, spec.PseudoPairs); err != nil {
		return nil, err
	}

	return result, nil
}

// walkFastPath advances a pointer from start through (size-1) steps via
// next[]. It returns the path walked
// (inclusive of start and the terminal atom) so aromaticity tagging can
// cover every atom on it.
func walkFastPath(next []int, start, size int) (end int, path []int, ok bool) {
	path = []int{start}
	cur := start
	for step := 0; step < size-1; step++ {
		nxt := next[cur]
		if nxt == -1 {
			return 0, nil, false
		}
		cur = nxt
		path = append(path, cur)
	}
	return cur, path, true
}

// floodFillPath is PathSolver III's recursive fallback for pseudo-locant
// or dead-ended fast-walk cases: a DFS over the ring graph
// built so far, finding the lexicographically-maximal path of the
// required length that returns to the starting component, preferring
// (among ties) the path reaching the highest terminal locant.
func floodFillPath(m *chem.Molecule, atoms []int, remaining []int, start, size int) (end int, path []int, ok bool) {
	n := len(atoms)
	locantOf := make(map[int]int, n)
	for i, a := range atoms {
		locantOf[a] = i
	}

	var best []int
	bestFound := false

	visited := make([]bool, n)
	var cur []int
	var dfs func(atomIdx, depth int)
	dfs = func(atomIdx, depth int) {
		loc := locantOf[atomIdx]
		visited[loc] = true
		cur = append(cur, loc)
		if depth == size-1 {
			if loc != start {
				candidate := append([]int(nil), cur...)
				if !bestFound || lexGreater(candidate, best) {
					best = candidate
					bestFound = true
				}
			}
		} else {
			for _, nb := range m.Neighbors(atomIdx) {
				nloc, isRingAtom := locantOf[nb]
				if !isRingAtom || visited[nloc] {
					continue
				}
				dfs(nb, depth+1)
			}
		}
		cur = cur[:len(cur)-1]
		visited[loc] = false
	}
	dfs(atoms[start], 0)

	if !bestFound {
		return 0, nil, false
	}
	terminal := best[len(best)-1]
	if remaining[terminal] <= 0 {
		return 0, nil, false
	}
	return terminal, best, true
}

// lexGreater reports whether a is lexicographically greater than b by
// locant value, comparing element-by-element; ties go to the longer (or,
// failing that, the one reaching the higher terminal locant) sequence.
func lexGreater(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a[len(a)-1] > b[len(b)-1]
}

func markAromaticPath(m *chem.Molecule, atoms []int, aromaticAtom []bool, path []int) {
	for i, loc := range path {
		aromaticAtom[loc] = true
		if i > 0 {
			prev := atoms[path[i-1]]
			cur := atoms[loc]
			if bi := m.BondBetween(prev, cur); bi >= 0 {
				m.Bonds[bi].Aromatic = true
			}
		}
	}
}

// applyBrokenLocants synthesizes off-path atoms under the 6-child tree,
// bonding each to its parent locant.
func applyBrokenLocants(m *chem.Molecule, result *RingResult, broken []BrokenLocantDesc) error {
	for _, b := range broken {
		parentAtom, ok := result.AtomByLocant[b.Parent]
		if !ok {
			return wlnerr.New(wlnerr.Semantic, -1, "broken locant parent %s not found in ring", EncodeLocant(b.Parent))
		}
		childAtom := m.AddAtom(6)
		m.AddBond(parentAtom, childAtom, chem.BondSingle)
		loc := BrokenLocantChild(b.Parent, b.Child)
		m.Atoms[childAtom].Locant = loc
		result.AtomByLocant[loc] = childAtom
		result.LocantByAtom[childAtom] = loc
	}
	return nil
}

// applyPseudoPairs binds each declared pseudo-locant pair directly,
// independent of the sequential walk.
func applyPseudoPairs(m *chem.Molecule, atoms []int, result *RingResult, pairs [][2]int) error {
	for _, p := range pairs {
		a, ok1 := result.AtomByLocant[p[0]]
		b, ok2 := result.AtomByLocant[p[1]]
		if !ok1 || !ok2 {
			return wlnerr.New(wlnerr.Semantic, -1, "pseudo-locant pair (%s,%s) references unknown locant", EncodeLocant(p[0]), EncodeLocant(p[1]))
		}
		if m.BondBetween(a, b) == -1 {
			m.AddBond(a, b, chem.BondSingle)
		}
	}
	return nil
}

// BenzeneRing is the R-letter shortcut: a 6-membered aromatic carbon ring
// with an inline locant-A-bound entry point.
func BenzeneRing(m *chem.Molecule) (*RingResult, error) {
	return BuildRing(m, RingSpec{
		TotalSize: 6,
		Subrings:  []SubringDesc{{Size: 6, StartLocant: 1, Aromatic: true}},
	})
}
