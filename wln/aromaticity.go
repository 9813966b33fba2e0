package wln

import "github.com/cx-luo/wlnchem/chem"

// AromaticityResolver converts an aromatic-tagged ring set into a
// concrete alternating single/double bond pattern: it restricts the
// graph to aromatic atoms and bonds, two-colors it to check for
// bipartiteness, and finds a maximum matching (Kuhn's augmenting-path
// algorithm on the bipartite case, Edmonds' blossom algorithm when an
// odd cycle makes the graph non-bipartite). Every matched pair becomes
// a double bond and every other aromatic bond settles to single. This
// is a generalization of src/molecule/aromatizer.go and
// src/molecule/dearomatizer.go's loaders, which only handled a naive
// "all-carbon 6-ring with an existing alternating pattern" case.
type AromaticityResolver struct{}

// Kekulize promotes exactly one bond per matched pair to a double bond,
// leaving every other aromatic-tagged bond single. It reports
// KekulizationFailure (non-fatal: the aromatic tag is left in place) if
// no matching covers every aromatic atom.
func (AromaticityResolver) Kekulize(m *chem.Molecule) error {
	atoms := aromaticAtomsWithCapacity(m)
	if len(atoms) == 0 {
		return nil
	}
	index := make(map[int]int, len(atoms))
	for i, a := range atoms {
		index[a] = i
	}

	adj := buildAromaticAdjacency(m, atoms, index)

	var matched []int
	if isBipartite(adj) {
		matched = bipartiteMaxMatching(adj)
	} else {
		matched = generalMaxMatching(adj)
	}

	// Promote matched pairs, then settle every remaining aromatic bond to
	// single order.
	promoted := make(map[[2]int]bool)
	for i, j := range matched {
		if j < 0 || j < i {
			continue
		}
		promoted[[2]int{atoms[i], atoms[j]}] = true
	}

	allCovered := true
	for i := range atoms {
		if matched[i] < 0 {
			allCovered = false
		}
	}

	for bi := range m.Bonds {
		b := &m.Bonds[bi]
		if !b.Aromatic {
			continue
		}
		if promoted[[2]int{b.Beg, b.End}] || promoted[[2]int{b.End, b.Beg}] {
			b.Order = chem.BondDouble
		} else {
			b.Order = chem.BondSingle
		}
	}

	if !allCovered {
		return &kekulizationFailure{}
	}
	return nil
}

type kekulizationFailure struct{}

func (*kekulizationFailure) Error() string {
	return "kekulization-failed: no perfect matching covers all aromatic atoms"
}

// aromaticAtomsWithCapacity returns the indices of every aromatic atom;
// the matching adjacency is restricted to these. An atom with no spare
// valence is still included: it simply fails to be matched, which
// surfaces as a reported KekulizationFailure rather than being silently
// dropped from the ring.
func aromaticAtomsWithCapacity(m *chem.Molecule) []int {
	var out []int
	for i, a := range m.Atoms {
		if a.Aromatic {
			out = append(out, i)
		}
	}
	return out
}

// buildAromaticAdjacency restricts the bond graph to aromatic-aromatic
// bonds among the selected atom subset, expressed as local indices.
func buildAromaticAdjacency(m *chem.Molecule, atoms []int, index map[int]int) [][]int {
	adj := make([][]int, len(atoms))
	for li, atom := range atoms {
		for _, e := range m.Vertices[atom].Edges {
			b := m.Bonds[e]
			if !b.Aromatic {
				continue
			}
			other := b.Other(atom)
			if lj, ok := index[other]; ok {
				adj[li] = append(adj[li], lj)
			}
		}
	}
	return adj
}

// isBipartite two-colors the adjacency graph via BFS; disconnected
// components are each tested independently.
func isBipartite(adj [][]int) bool {
	color := make([]int, len(adj))
	for i := range color {
		color[i] = -1
	}
	for start := range adj {
		if color[start] != -1 {
			continue
		}
		color[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, to := range adj[v] {
				if color[to] == -1 {
					color[to] = 1 - color[v]
					queue = append(queue, to)
				} else if color[to] == color[v] {
					return false
				}
			}
		}
	}
	return true
}

// bipartiteMaxMatching is a simple augmenting-path (Kuhn's algorithm)
// maximum matcher, sufficient for the small ring graphs WLN produces.
func bipartiteMaxMatching(adj [][]int) []int {
	n := len(adj)
	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}

	var tryAugment func(v int, visited []bool) bool
	tryAugment = func(v int, visited []bool) bool {
		for _, to := range adj[v] {
			if visited[to] {
				continue
			}
			visited[to] = true
			if match[to] == -1 || tryAugment(match[to], visited) {
				match[to] = v
				match[v] = to
				return true
			}
		}
		return false
	}

	for v := 0; v < n; v++ {
		if match[v] != -1 {
			continue
		}
		visited := make([]bool, n)
		tryAugment(v, visited)
	}
	return match
}

// generalMaxMatching runs Edmonds' blossom algorithm for graphs that are
// not bipartite, contracting odd cycles so an augmenting path can still
// be found across them.
func generalMaxMatching(adj [][]int) []int {
	n := len(adj)
	match := make([]int, n)
	p := make([]int, n)
	base := make([]int, n)
	used := make([]bool, n)
	blossom := make([]bool, n)
	for i := range match {
		match[i] = -1
	}

	lca := func(a, b int) int {
		inPath := make([]bool, n)
		x := a
		for {
			x = base[x]
			inPath[x] = true
			if match[x] == -1 {
				break
			}
			x = p[match[x]]
		}
		y := b
		for {
			y = base[y]
			if inPath[y] {
				return y
			}
			y = p[match[y]]
		}
	}

	markPath := func(v, b, child int) {
		for base[v] != b {
			blossom[base[v]] = true
			blossom[base[match[v]]] = true
			p[v] = child
			child = match[v]
			v = p[match[v]]
		}
	}

	findAugmentingPath := func(root int) int {
		for i := range used {
			used[i] = false
			p[i] = -1
			base[i] = i
		}
		used[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, to := range adj[v] {
				if base[v] == base[to] || match[v] == to {
					continue
				}
				if to == root || (match[to] != -1 && p[match[to]] != -1) {
					b := lca(v, to)
					for i := range blossom {
						blossom[i] = false
					}
					markPath(v, b, to)
					markPath(to, b, v)
					for i := 0; i < n; i++ {
						if blossom[base[i]] {
							base[i] = b
							if !used[i] {
								used[i] = true
								queue = append(queue, i)
							}
						}
					}
				} else if p[to] == -1 {
					p[to] = v
					if match[to] == -1 {
						return to
					}
					used[match[to]] = true
					queue = append(queue, match[to])
				}
			}
		}
		return -1
	}

	for v := 0; v < n; v++ {
		if match[v] != -1 {
			continue
		}
		u := findAugmentingPath(v)
		for u != -1 {
			pv := p[u]
			ppv := match[pv]
			match[u] = pv
			match[pv] = u
			u = ppv
		}
	}
	return match
}
