package wln

import "github.com/cx-luo/wlnchem/chem"

// ringSystem is one maximal set of SSSR rings connected by shared atoms.
type ringSystem struct {
	atoms []int       // every atom belonging to this system, arbitrary order
	rings []chem.Ring // the member SSSR rings
}

type ringSystemKind int

const (
	kindMonocyclic ringSystemKind = iota
	kindPolycyclic
	kindMulticyclicBridged
)

// findRingSystems partitions the molecule's perceived SSSR into connected
// components: two rings belong to the same system if they share at least
// one atom. Atoms that perception found but which turn out to be isolated
// (a ring of size 0, which PerceiveSSSR never returns) are never produced,
// so every returned system has at least one ring.
func findRingSystems(m *chem.Molecule) []ringSystem {
	rings := chem.PerceiveSSSR(m)
	if len(rings) == 0 {
		return nil
	}

	parent := make([]int, len(rings))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	atomOwner := make(map[int][]int, len(rings)*4)
	for ri, r := range rings {
		for _, a := range r.Atoms {
			atomOwner[a] = append(atomOwner[a], ri)
		}
	}
	for _, owners := range atomOwner {
		for i := 1; i < len(owners); i++ {
			union(owners[0], owners[i])
		}
	}

	groups := make(map[int][]int)
	for ri := range rings {
		root := find(ri)
		groups[root] = append(groups[root], ri)
	}

	out := make([]ringSystem, 0, len(groups))
	for _, ringIdxs := range groups {
		rs := ringSystem{}
		seen := make(map[int]bool)
		for _, ri := range ringIdxs {
			rs.rings = append(rs.rings, rings[ri])
			for _, a := range rings[ri].Atoms {
				if !seen[a] {
					seen[a] = true
					rs.atoms = append(rs.atoms, a)
				}
			}
		}
		out = append(out, rs)
	}
	return out
}

// shareCounts returns, per ring atom, how many of the system's subrings
// contain it — the "ring-share count" used to score fusion sites.
func (rs *ringSystem) shareCounts() map[int]int {
	counts := make(map[int]int, len(rs.atoms))
	for _, r := range rs.rings {
		for _, a := range r.Atoms {
			counts[a]++
		}
	}
	return counts
}

// classify sorts a ring system into one of three cases: a single ring, a
// cata-fused chain of rings (no atom shared by 3+ rings), or a
// multicyclic/bridged system requiring PathFinderIIIb's backtracking.
func (rs *ringSystem) classify() ringSystemKind {
	if len(rs.rings) == 1 {
		return kindMonocyclic
	}
	counts := rs.shareCounts()
	for _, c := range counts {
		if c >= 3 {
			return kindMulticyclicBridged
		}
	}
	return kindPolycyclic
}

// ringNeighborSet builds a lookup of atom -> neighbors restricted to the
// ring system, used by both path finders to walk only along ring bonds.
func ringNeighborSet(m *chem.Molecule, rs *ringSystem) map[int][]int {
	inSystem := make(map[int]bool, len(rs.atoms))
	for _, a := range rs.atoms {
		inSystem[a] = true
	}
	out := make(map[int][]int, len(rs.atoms))
	for _, a := range rs.atoms {
		for _, nb := range m.Neighbors(a) {
			if inSystem[nb] {
				out[a] = append(out[a], nb)
			}
		}
	}
	return out
}

// pathResult is a candidate locant-order walk over one ring system, plus
// any atoms that had to be popped off-path because no complete path
// covered them.
type pathResult struct {
	order   []int // atom indices, in assigned-locant order (locant i+1)
	offPath []int // atoms not on the main path, each hung off its nearest path neighbor
}

// fusionSum scores a candidate order: the sum, over every subring, of the
// lowest locant (1-based position in order) that subring touches. Used
// as the tie-breaking metric for both path finders.
func fusionSum(order []int, rings []chem.Ring) int {
	pos := make(map[int]int, len(order))
	for i, a := range order {
		pos[a] = i + 1
	}
	sum := 0
	for _, r := range rings {
		min := -1
		for _, a := range r.Atoms {
			if p, ok := pos[a]; ok && (min == -1 || p < min) {
				min = p
			}
		}
		if min >= 0 {
			sum += min
		}
	}
	return sum
}

// walkPath performs one deterministic DFS attempt at a Hamiltonian path
// over the ring atoms reachable from start, preferring to step onto the
// neighbor with the highest ring-share count first, backtracking
// on dead ends. Used by both PathFinderIIIa (single-pass, no backtrack
// needed on cata-fused systems) and PathFinderIIIb (with off-path
// popping layered on top).
func walkPath(neighbors map[int][]int, shareCount map[int]int, targetAtoms map[int]bool, start int, targetLen int) ([]int, bool) {
	visited := make(map[int]bool, targetLen)
	order := make([]int, 0, targetLen)

	var dfs func(cur int) bool
	dfs = func(cur int) bool {
		visited[cur] = true
		order = append(order, cur)
		if len(order) == targetLen {
			return true
		}
		cands := append([]int(nil), neighbors[cur]...)
		sortByPreference(cands, shareCount)
		for _, nb := range cands {
			if !targetAtoms[nb] || visited[nb] {
				continue
			}
			if dfs(nb) {
				return true
			}
		}
		visited[cur] = false
		order = order[:len(order)-1]
		return false
	}

	if dfs(start) {
		return order, true
	}
	return nil, false
}

// sortByPreference orders candidate neighbors by descending ring-share
// count (fusion atoms first), then by ascending atom index for
// determinism.
func sortByPreference(cands []int, shareCount map[int]int) {
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0; j-- {
			a, b := cands[j-1], cands[j]
			if shareCount[a] < shareCount[b] || (shareCount[a] == shareCount[b] && a > b) {
				cands[j-1], cands[j] = cands[j], cands[j-1]
			} else {
				break
			}
		}
	}
}

// pathFinderIIIa is the polycyclic path finder: try a walk from every
// non-junction atom (ring-degree exactly 2, i.e. not itself a fusion
// point), keep the one with the lowest fusion sum.
func pathFinderIIIa(m *chem.Molecule, rs *ringSystem) (*pathResult, bool) {
	neighbors := ringNeighborSet(m, rs)
	shareCount := rs.shareCounts()
	targetAtoms := make(map[int]bool, len(rs.atoms))
	for _, a := range rs.atoms {
		targetAtoms[a] = true
	}

	var starts []int
	for _, a := range rs.atoms {
		if len(neighbors[a]) == 2 {
			starts = append(starts, a)
		}
	}
	if len(starts) == 0 {
		starts = append([]int(nil), rs.atoms...)
	}

	var best []int
	bestScore := -1
	for _, s := range starts {
		order, ok := walkPath(neighbors, shareCount, targetAtoms, s, len(rs.atoms))
		if !ok {
			continue
		}
		score := fusionSum(order, rs.rings)
		if best == nil || score < bestScore {
			best, bestScore = order, score
		}
	}
	if best == nil {
		return nil, false
	}
	return &pathResult{order: best}, true
}

// pathFinderIIIb is the multicyclic/bridged path finder: try every ring
// atom as a start; when no path covers every atom,
// pop the worst-placed atom (the one with highest ring-share, most likely
// a true bridgehead) to an off-path list and retry with one fewer target
// atom, repeating until a complete path is found or every atom has been
// exhausted as a candidate to pop.
func pathFinderIIIb(m *chem.Molecule, rs *ringSystem) (*pathResult, bool) {
	neighbors := ringNeighborSet(m, rs)
	shareCount := rs.shareCounts()

	remaining := append([]int(nil), rs.atoms...)
	var offPath []int

	for len(remaining) > 0 {
		targetAtoms := make(map[int]bool, len(remaining))
		for _, a := range remaining {
			targetAtoms[a] = true
		}

		var best []int
		bestScore := -1
		for _, s := range remaining {
			order, ok := walkPath(neighbors, shareCount, targetAtoms, s, len(remaining))
			if !ok {
				continue
			}
			score := fusionSum(order, rs.rings)
			if best == nil || score < bestScore {
				best, bestScore = order, score
			}
		}
		if best != nil {
			return &pathResult{order: best, offPath: offPath}, true
		}

		// No complete path: pop the atom with the highest ring-share
		// count (the most likely true bridgehead) and retry.
		worst, worstIdx := -1, -1
		for i, a := range remaining {
			if worst == -1 || shareCount[a] > shareCount[remaining[worst]] {
				worst, worstIdx = i, i
			}
		}
		if worst == -1 {
			break
		}
		offPath = append(offPath, remaining[worstIdx])
		remaining = append(remaining[:worstIdx], remaining[worstIdx+1:]...)
	}
	return nil, false
}

// solveRingSystem dispatches a ring system to the path finder its
// classification calls for.
func solveRingSystem(m *chem.Molecule, rs *ringSystem) (*pathResult, bool) {
	switch rs.classify() {
	case kindMonocyclic:
		neighbors := ringNeighborSet(m, rs)
		shareCount := rs.shareCounts()
		targetAtoms := make(map[int]bool, len(rs.atoms))
		for _, a := range rs.atoms {
			targetAtoms[a] = true
		}
		if len(rs.atoms) == 0 {
			return nil, false
		}
		order, ok := walkPath(neighbors, shareCount, targetAtoms, rs.atoms[0], len(rs.atoms))
		if !ok {
			return nil, false
		}
		return &pathResult{order: order}, true
	case kindPolycyclic:
		return pathFinderIIIa(m, rs)
	default:
		return pathFinderIIIb(m, rs)
	}
}
